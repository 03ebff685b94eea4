package router

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/merabazaar/ecommerce-api/pkg/global"
	"github.com/merabazaar/ecommerce-api/pkg/models"
	db "github.com/merabazaar/ecommerce-api/pkg/mongo"
)

// orderIDAttempts bounds the regenerate-on-collision loop for the 6-digit
// order identifier.
const orderIDAttempts = 3

// PlaceOrder resolves the user and the ordered products, prices the order
// (10% off at a 500 subtotal, free delivery at a 1000 post-discount total),
// persists it and dispatches a confirmation email off the request path.
func PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid order data", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()

	user, err := db.FindUserByUserID(ctx, req.UserID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, global.ErrorResponse("User not found", nil))
			return
		}
		log.Printf("Error fetching user for order: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error placing order", nil))
		return
	}

	requestedIDs := make([]string, 0, len(req.ProductsOrdered))
	for _, line := range req.ProductsOrdered {
		requestedIDs = append(requestedIDs, line.ProductID)
	}

	products, err := db.FindProductsByIDs(ctx, requestedIDs)
	if err != nil {
		log.Printf("Error fetching products for order: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error placing order", nil))
		return
	}

	priceByID := make(map[string]float64, len(products))
	resolvedIDs := make([]string, 0, len(products))
	for _, p := range products {
		priceByID[p.ProductID] = p.Price
		resolvedIDs = append(resolvedIDs, p.ProductID)
	}

	totals := models.ComputeOrderTotals(models.OrderSubtotal(req.ProductsOrdered, priceByID))

	order := &models.Order{
		ID:              bson.NewObjectID(),
		OrderID:         models.NewOrderID(),
		TrackingID:      models.NewTrackingID(),
		UserID:          req.UserID,
		Date:            req.Date,
		Time:            req.Time,
		Address:         req.Address,
		Email:           user.Email,
		Name:            user.Name,
		ProductIDs:      resolvedIDs,
		Price:           totals.Total,
		FreeDelivery:    totals.FreeDelivery,
		DiscountApplied: totals.Discount,
		CreatedAt:       time.Now(),
	}

	for attempt := 1; ; attempt++ {
		err = db.InsertOrder(ctx, order)
		if err == nil || !mongo.IsDuplicateKeyError(err) || attempt >= orderIDAttempts {
			break
		}
		order.OrderID = models.NewOrderID()
		order.TrackingID = models.NewTrackingID()
	}
	if err != nil {
		log.Printf("Error persisting order: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error placing order", nil))
		return
	}

	confirmation := *order
	mail.Dispatch(func() error {
		return mail.SendOrderConfirmation(&confirmation)
	})

	c.JSON(http.StatusOK, global.MessageResponse("Order placed successfully", gin.H{
		"orderId":         order.OrderID,
		"trackingId":      order.TrackingID,
		"totalPrice":      order.Price,
		"freeDelivery":    order.FreeDelivery,
		"discountApplied": order.DiscountApplied,
	}))
}
