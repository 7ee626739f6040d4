package routes

import (
	"github.com/Sarvesh-GanesanW/enterprises/config"
	"github.com/Sarvesh-GanesanW/enterprises/controllers"
	"github.com/Sarvesh-GanesanW/enterprises/libs"
	"github.com/Sarvesh-GanesanW/enterprises/repositories"
	"github.com/Sarvesh-GanesanW/enterprises/services"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	backend := libs.NewBackendClient(config.AppConfig.BackendBaseURL, config.AppConfig.BackendTimeout)

	catalogRepo := repositories.NewCatalogRepository()
	cartRepo := repositories.NewCartRepository(backend)
	paymentRepo := repositories.NewPaymentRepository(backend)
	submissionRepo := repositories.NewSubmissionRepository(backend)

	// one shared cart store for the whole process; every view reads it and
	// only the mutating operations write it
	cartSvc := services.NewCartService(cartRepo)
	checkoutSvc := services.NewCheckoutService(cartSvc, paymentRepo)
	formSvc := services.NewFormService(submissionRepo)

	catalogCtrl := controllers.NewCatalogController(catalogRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	formCtrl := controllers.NewFormController(formSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/catalog", catalogCtrl.GetCatalog)
	router.GET("/catalog/:id", catalogCtrl.GetTeaByID)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart", cartCtrl.AddToCart)
	router.DELETE("/cart/:id", cartCtrl.RemoveFromCart)
	router.PUT("/cart/:id", cartCtrl.UpdateQuantity)
	router.POST("/cart/grouped/:title/increment", cartCtrl.Increment)
	router.POST("/cart/grouped/:title/decrement", cartCtrl.Decrement)

	router.POST("/checkout/initiate", checkoutCtrl.Initiate)
	router.POST("/checkout/verify", checkoutCtrl.Verify)

	router.POST("/contact", formCtrl.SubmitContact)
	router.POST("/order", formCtrl.SubmitOrder)
}
