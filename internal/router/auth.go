package router

import (
	"fmt"
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

type userSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type sellerSignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

const invalidCredentials = "Invalid email or password"

func UserSignup(c *gin.Context) {
	var req userSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid signup data", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()

	if _, err := db.FindUserByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusConflict, global.ErrorResponse("User already exists", nil))
		return
	} else if err != mongo.ErrNoDocuments {
		log.Printf("Error checking for existing user: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error registering user", nil))
		return
	}

	hash, err := models.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error registering user", nil))
		return
	}

	user := &models.User{
		ID:        bson.NewObjectID(),
		UserID:    models.NewUserID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		Phone:     req.Phone,
		Role:      models.RoleUser,
		CreatedAt: time.Now(),
	}

	if err := db.CreateUser(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, global.ErrorResponse("User already exists", nil))
			return
		}
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error registering user", nil))
		return
	}

	c.JSON(http.StatusCreated, global.MessageResponse("User registered successfully",
		gin.H{"userId": user.UserID}))
}

func UserLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Email and password are required", nil))
		return
	}

	user, err := db.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil || !models.CheckPassword(user.Password, req.Password) {
		// same message whether the email or the password was wrong
		c.JSON(http.StatusUnauthorized, global.ErrorResponse(invalidCredentials, nil))
		return
	}

	if err := setSessionPrincipal(c, models.RoleUser, user.UserID); err != nil {
		log.Printf("Error saving session: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error logging in", nil))
		return
	}

	c.JSON(http.StatusOK, global.MessageResponse("Login successful", gin.H{"userId": user.UserID}))
}

func SellerSignup(c *gin.Context) {
	var req sellerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid signup data", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()

	if _, err := db.FindSellerByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusConflict, global.ErrorResponse("Seller already exists", nil))
		return
	} else if err != mongo.ErrNoDocuments {
		log.Printf("Error checking for existing seller: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error registering seller", nil))
		return
	}

	hash, err := models.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error registering seller", nil))
		return
	}

	seller := &models.Seller{
		ID:              bson.NewObjectID(),
		SellerID:        models.NewSellerID(),
		Name:            req.Name,
		Email:           req.Email,
		Password:        hash,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		Role:            models.RoleSeller,
		CreatedAt:       time.Now(),
	}

	if err := db.CreateSeller(ctx, seller); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, global.ErrorResponse("Seller already exists", nil))
			return
		}
		log.Printf("Error creating seller: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error registering seller", nil))
		return
	}

	c.JSON(http.StatusCreated, global.MessageResponse("Seller registered successfully",
		gin.H{"sellerId": seller.SellerID}))
}

func SellerLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Email and password are required", nil))
		return
	}

	seller, err := db.FindSellerByEmail(c.Request.Context(), req.Email)
	if err != nil || !models.CheckPassword(seller.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse(invalidCredentials, nil))
		return
	}

	if err := setSessionPrincipal(c, models.RoleSeller, seller.SellerID); err != nil {
		log.Printf("Error saving session: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error logging in", nil))
		return
	}

	c.JSON(http.StatusOK, global.MessageResponse("Login successful", gin.H{"sellerId": seller.SellerID}))
}

// AdminLogin authenticates a pre-provisioned admin account; there is no
// admin signup endpoint.
func AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Email and password are required", nil))
		return
	}

	admin, err := db.FindAdminByEmail(c.Request.Context(), req.Email)
	if err != nil || !models.CheckPassword(admin.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse(invalidCredentials, nil))
		return
	}

	if err := setSessionPrincipal(c, models.RoleAdmin, admin.ID.Hex()); err != nil {
		log.Printf("Error saving session: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error logging in", nil))
		return
	}

	c.JSON(http.StatusOK, global.MessageResponse("Login successful", gin.H{"adminId": admin.ID.Hex()}))
}

func AdminDashboard(c *gin.Context) {
	p := principalFromContext(c)
	c.JSON(http.StatusOK, global.MessageResponse(
		fmt.Sprintf("Welcome to the Admin Dashboard, %s", p.Name), nil))
}

func SellerDashboard(c *gin.Context) {
	p := principalFromContext(c)
	c.JSON(http.StatusOK, global.MessageResponse(
		fmt.Sprintf("Welcome to the Seller Dashboard, %s", p.Name), nil))
}
