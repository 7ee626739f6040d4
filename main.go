package main

import (
	"log"

	"github.com/Sarvesh-GanesanW/enterprises/config"
	_ "github.com/Sarvesh-GanesanW/enterprises/docs"
	"github.com/Sarvesh-GanesanW/enterprises/middleware"
	"github.com/Sarvesh-GanesanW/enterprises/models"
	"github.com/Sarvesh-GanesanW/enterprises/routes"
	"github.com/gin-gonic/gin"
)

// @title Sree Rajalakshmi Enterprises Tea Storefront API
// @version 1.0
// @description Storefront API for the tea business: catalog, cart, checkout and enquiry forms.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
