package router

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/merabazaar/ecommerce-api/pkg/global"
	"github.com/merabazaar/ecommerce-api/pkg/mailer"
	"github.com/merabazaar/ecommerce-api/pkg/models"
	"github.com/merabazaar/ecommerce-api/pkg/mongo"
)

var Router *gin.Engine

// mail is the notification collaborator, injected at startup.
var mail *mailer.Mailer

func HealthCheck(c *gin.Context) {
	if err := mongo.GetDatabase().Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

func InitEngine() {
	Router = gin.Default()
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	origins := strings.Split(global.GetEnvOrDefault("CORS_ORIGINS",
		"http://localhost:3000,http://localhost:5173"), ",")

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(global.GetEnvOrDefault("SESSION_SECRET", "change-me")))
	Router.Use(sessions.Sessions("mbsession", store))
}

func InitializeRoutes(m *mailer.Mailer) {
	mail = m

	Router.GET("/health", HealthCheck)

	// auth
	Router.POST("/signup", UserSignup)
	Router.POST("/login", UserLogin)
	Router.POST("/seller/signup", SellerSignup)
	Router.POST("/seller/login", SellerLogin)
	Router.POST("/admin/login", AdminLogin)
	Router.GET("/admin/dashboard", RequireRoles(mongo.ResolvePrincipal, models.RoleAdmin), AdminDashboard)
	Router.GET("/seller/dashboard", RequireRoles(mongo.ResolvePrincipal, models.RoleSeller), SellerDashboard)

	// cart
	Router.POST("/addtocart", AddToCart)
	Router.POST("/get-cart", GetCart)
	Router.PUT("/update-quantity", UpdateCartQuantity)
	Router.POST("/delete-items", DeleteCartItems)

	// orders
	Router.POST("/place-order", PlaceOrder)

	// coupons
	Router.POST("/create-coupon", CreateCoupon(mongo.CreateCoupon, notifyUsersDetached))
	Router.POST("/validate-coupon", ValidateCoupon)
	Router.DELETE("/delete-coupon", DeleteCoupon(mongo.DeleteCouponByCode, notifyUsersDetached))
	Router.GET("/get-coupons", GetCoupons)

	// product catalog
	Router.POST("/add", AddProduct)
	Router.DELETE("/remove/:productId", RemoveProduct)
	Router.GET("/seller/:sellerId", SellerCatalog)
}
