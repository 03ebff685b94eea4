package router

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/merabazaar/ecommerce-api/pkg/global"
	"github.com/merabazaar/ecommerce-api/pkg/models"
	db "github.com/merabazaar/ecommerce-api/pkg/mongo"
)

type couponCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// couponCreator and couponRemover are the store operations the coupon
// handlers need; userBroadcaster is the detached all-users notification.
// They are injected so tests run without Mongo or SMTP.
type couponCreator func(ctx context.Context, coupon *models.Coupon) error

type couponRemover func(ctx context.Context, code string) (*models.Coupon, error)

type userBroadcaster func(subject, message string)

// CreateCoupon persists a new code and notifies every registered user. The
// broadcast runs detached; the create response never waits for it.
func CreateCoupon(create couponCreator, notify userBroadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Coupon code is required", nil))
			return
		}

		coupon, err := req.ToCoupon()
		if err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse(err.Error(), []global.ValidationError{
				{Field: "discountPercentage", Message: "must be between 0 and 100", Code: "out_of_range"},
			}))
			return
		}

		if err := create(c.Request.Context(), coupon); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, global.ErrorResponse("Coupon code already exists", nil))
				return
			}
			log.Printf("Error creating coupon: %v", err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error creating coupon", nil))
			return
		}

		c.JSON(http.StatusCreated, global.MessageResponse("Coupon created successfully",
			gin.H{"coupon": coupon}))

		notify("New Coupon Code Available!",
			fmt.Sprintf("Use code %s to get %v%% off on your next purchase.",
				coupon.Code, coupon.DiscountPercentage))
	}
}

// ValidateCoupon accepts any casing and requires the coupon to be active and
// unexpired.
func ValidateCoupon(c *gin.Context) {
	var req couponCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Coupon code is required", nil))
		return
	}

	coupon, err := db.FindCouponByCode(c.Request.Context(), models.NormalizeCouponCode(req.Code))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Invalid or expired coupon code", nil))
			return
		}
		log.Printf("Error validating coupon: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error validating coupon", nil))
		return
	}

	if !coupon.IsValid(time.Now()) {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Invalid or expired coupon code", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(gin.H{
		"discountPercentage": coupon.DiscountPercentage,
	}))
}

// DeleteCoupon removes a code and notifies users of the expiration. A miss
// triggers no broadcast.
func DeleteCoupon(remove couponRemover, notify userBroadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req couponCodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Coupon code is required", nil))
			return
		}

		code := models.NormalizeCouponCode(req.Code)
		if _, err := remove(c.Request.Context(), code); err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, global.ErrorResponse("Coupon not found", nil))
				return
			}
			log.Printf("Error deleting coupon: %v", err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error deleting coupon", nil))
			return
		}

		c.JSON(http.StatusOK, global.MessageResponse("Coupon deleted successfully", nil))

		notify("Coupon Expired", fmt.Sprintf("The coupon code %s is no longer valid.", code))
	}
}

func GetCoupons(c *gin.Context) {
	coupons, err := db.ListCoupons(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching coupons: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error fetching coupons", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(gin.H{"coupons": coupons}))
}

// notifyUsersDetached is the production broadcaster: the send runs through
// the mailer's detached dispatch, after the response has been written, so it
// uses its own context rather than the request's.
func notifyUsersDetached(subject, message string) {
	mail.Dispatch(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		emails, err := db.AllUserEmails(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch user emails for broadcast: %w", err)
		}
		return mail.Broadcast(emails, subject, message)
	})
}
