package router

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/merabazaar/ecommerce-api/pkg/global"
	"github.com/merabazaar/ecommerce-api/pkg/models"
	db "github.com/merabazaar/ecommerce-api/pkg/mongo"
	"github.com/merabazaar/ecommerce-api/pkg/redis"
)

const maxProductImages = 5

const productIDAttempts = 3

var errTooManyImages = fmt.Errorf("at most %d images are allowed", maxProductImages)

// AddProduct creates a seller-scoped listing from a multipart form with up
// to five image uploads.
func AddProduct(c *gin.Context) {
	sellerID := c.PostForm("sellerId")
	name := c.PostForm("name")
	if sellerID == "" || name == "" {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("name and sellerId are required", nil))
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("A numeric price is required", []global.ValidationError{
			{Field: "price", Message: "must be a number", Code: "invalid_format"},
		}))
		return
	}

	inStockValue := 0
	if v := c.PostForm("inStockValue"); v != "" {
		if inStockValue, err = strconv.Atoi(v); err != nil {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("inStockValue must be an integer", nil))
			return
		}
	}

	ctx := c.Request.Context()

	if _, err := db.FindSellerBySellerID(ctx, sellerID); err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Seller not found", nil))
			return
		}
		log.Printf("Error resolving seller: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error adding product", nil))
		return
	}

	images, err := saveUploadedImages(c)
	if err != nil {
		if errors.Is(err, errTooManyImages) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse(err.Error(), nil))
			return
		}
		log.Printf("Error storing uploaded images: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error storing uploaded images", nil))
		return
	}

	product := models.NewProduct(name, price, c.PostForm("category"),
		c.PostForm("description"), inStockValue, sellerID, images)

	for attempt := 1; ; attempt++ {
		err = db.CreateProduct(ctx, product)
		if err == nil || !mongo.IsDuplicateKeyError(err) || attempt >= productIDAttempts {
			break
		}
		product.ProductID = models.NewProductID()
	}
	if err != nil {
		log.Printf("Error creating product: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error adding product", nil))
		return
	}

	if cacheErr := redis.InvalidateSellerCatalog(ctx, sellerID); cacheErr != nil {
		log.Printf("Warning: Failed to invalidate seller catalog cache: %v", cacheErr)
	}

	c.JSON(http.StatusCreated, global.MessageResponse("Product added successfully",
		gin.H{"product": product}))
}

func RemoveProduct(c *gin.Context) {
	productID := c.Param("productId")

	product, err := db.DeleteProductByProductID(c.Request.Context(), productID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", nil))
			return
		}
		log.Printf("Error removing product: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error removing product", nil))
		return
	}

	if cacheErr := redis.InvalidateSellerCatalog(c.Request.Context(), product.SellerID); cacheErr != nil {
		log.Printf("Warning: Failed to invalidate seller catalog cache: %v", cacheErr)
	}

	c.JSON(http.StatusOK, global.MessageResponse("Product removed successfully", nil))
}

// SellerCatalog lists a seller's products through the Redis cache-aside
// layer, with X-Cache reporting hits and misses.
func SellerCatalog(c *gin.Context) {
	sellerID := c.Param("sellerId")
	ctx := c.Request.Context()

	if products, err := redis.GetSellerCatalogFromCache(ctx, sellerID); err == nil && len(products) > 0 {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(gin.H{"products": products}))
		return
	}

	products, err := db.FindProductsBySeller(ctx, sellerID)
	if err != nil {
		log.Printf("Error fetching products for seller: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Error fetching products", nil))
		return
	}
	if len(products) == 0 {
		c.JSON(http.StatusNotFound, global.ErrorResponse("No products found for this seller", nil))
		return
	}

	if cacheErr := redis.CacheSellerCatalog(ctx, sellerID, products); cacheErr != nil {
		log.Printf("Warning: Failed to cache seller catalog: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(gin.H{"products": products}))
}

func saveUploadedImages(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// no multipart body at all; a listing without images is allowed
		return nil, nil
	}

	files := form.File["images"]
	if len(files) > maxProductImages {
		return nil, errTooManyImages
	}

	uploadDir := global.GetEnvOrDefault("UPLOAD_DIR", "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}

	images := make([]string, 0, len(files))
	for _, file := range files {
		dest := filepath.Join(uploadDir, uuid.NewString()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, dest); err != nil {
			return nil, err
		}
		images = append(images, dest)
	}
	return images, nil
}
