package router

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/merabazaar/ecommerce-api/pkg/global"
	"github.com/merabazaar/ecommerce-api/pkg/models"
	db "github.com/merabazaar/ecommerce-api/pkg/mongo"
)

type addToCartRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type cartUserRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type updateQuantityRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required,min=0"`
}

type deleteItemsRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

type cartPusher func(ctx context.Context, userID string, item models.CartItem) (bool, error)

type cartCreator func(ctx context.Context, cart *models.Cart) error

// addCartItem pushes onto an existing cart, falling back to creating one on
// the first add. Two concurrent first adds can both miss the push; the one
// losing the create races hits the unique userId index and retries the push
// against the cart the winner just made.
func addCartItem(ctx context.Context, push cartPusher, createCart cartCreator, userID string, item models.CartItem) error {
	pushed, err := push(ctx, userID, item)
	if err != nil {
		return err
	}
	if pushed {
		return nil
	}

	if err := createCart(ctx, models.NewCart(userID, item)); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return err
		}
		if _, err := push(ctx, userID, item); err != nil {
			return err
		}
	}
	return nil
}

// AddToCart appends a line item to the user's cart, creating the cart on
// first use. Duplicate productIds are kept as separate lines.
func AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("userId, productId and a positive quantity are required", nil))
		return
	}

	ctx := c.Request.Context()
	item := models.CartItem{ProductID: req.ProductID, Quantity: req.Quantity}

	if err := addCartItem(ctx, db.PushCartItem, db.CreateCart, req.UserID, item); err != nil {
		log.Printf("Error adding product to cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error adding product to cart", nil))
		return
	}

	cart, err := db.FindCartByUserID(ctx, req.UserID)
	if err != nil {
		log.Printf("Error reloading cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error adding product to cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.MessageResponse("Product added to cart successfully",
		gin.H{"cart": cart}))
}

func GetCart(c *gin.Context) {
	var req cartUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("userId is required", nil))
		return
	}

	cart, err := db.FindCartByUserID(c.Request.Context(), req.UserID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Cart not found for this user", nil))
			return
		}
		log.Printf("Error fetching cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error fetching cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(gin.H{"cart": cart}))
}

// UpdateCartQuantity overwrites the quantity on every line matching the
// productId. The cart stays untouched when the product isn't in it.
func UpdateCartQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("userId, productId and a valid quantity are required", nil))
		return
	}

	ctx := c.Request.Context()

	cart, err := db.FindCartByUserID(ctx, req.UserID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Cart not found", nil))
			return
		}
		log.Printf("Error fetching cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("An error occurred while updating the quantity", nil))
		return
	}

	if !cart.SetQuantity(req.ProductID, *req.Quantity) {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found in the cart", nil))
		return
	}

	if err := db.SaveCartItems(ctx, req.UserID, cart.ProductsInCart); err != nil {
		log.Printf("Error saving cart: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("An error occurred while updating the quantity", nil))
		return
	}

	c.JSON(http.StatusOK, global.MessageResponse("Quantity updated successfully", nil))
}

// DeleteCartItems removes all line items matching the productId in a single
// mutation.
func DeleteCartItems(c *gin.Context) {
	var req deleteItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("userId and productId are required", nil))
		return
	}

	removed, err := db.PullCartItems(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		log.Printf("Error deleting cart item: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("An error occurred while deleting the item", nil))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Item not found in the cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.MessageResponse("Item deleted successfully", nil))
}
