package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/merabazaar/ecommerce-api/internal/router"
	"github.com/merabazaar/ecommerce-api/pkg/global"
	"github.com/merabazaar/ecommerce-api/pkg/mailer"
	"github.com/merabazaar/ecommerce-api/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()

	mail := mailer.New(mailer.ConfigFromEnv())

	router.InitEngine()
	router.InitializeRoutes(mail)

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
