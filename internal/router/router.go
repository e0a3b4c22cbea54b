// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webmart/admin-dashboard/internal/commerce"
	"github.com/webmart/admin-dashboard/internal/config"
	"github.com/webmart/admin-dashboard/internal/handlers"
	"github.com/webmart/admin-dashboard/internal/middleware"
	"github.com/webmart/admin-dashboard/internal/models"
	"github.com/webmart/admin-dashboard/internal/services"
	"github.com/webmart/admin-dashboard/internal/utils"
)

func Initialize(client *commerce.Client, previewStore *services.PreviewStore, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(client)
	draftService := services.NewDraftService(client, catalogService, previewStore, cfg.Drafts.TTL)
	orderService := services.NewOrderService(client)
	overviewService := services.NewOverviewService(client)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	productHandler := handlers.NewProductHandler(catalogService)
	draftHandler := handlers.NewDraftHandler(draftService, catalogService)
	previewHandler := handlers.NewPreviewHandler(previewStore)
	orderHandler := handlers.NewOrderHandler(orderService)
	overviewHandler := handlers.NewOverviewHandler(overviewService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Staged image previews; served without auth so <img> tags can load them
		v1.GET("/previews/:id", previewHandler.GetPreview)

		protected := v1.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Product routes
			products := protected.Group("/products")
			{
				products.GET("", productHandler.GetProducts)
				products.DELETE("/:id", productHandler.DeleteProduct)
				products.POST("/drafts", draftHandler.OpenCreate)
				products.POST("/:id/drafts", draftHandler.OpenEdit)
			}

			// Draft routes
			drafts := protected.Group("/drafts")
			{
				drafts.GET("/:id", draftHandler.GetDraft)
				drafts.PUT("/:id", draftHandler.UpdateFields)
				drafts.POST("/:id/images", middleware.UploadRateLimit(), draftHandler.AttachImages)
				drafts.DELETE("/:id/images/:index", draftHandler.RemoveImage)
				drafts.POST("/:id/submit", draftHandler.Submit)
				drafts.DELETE("/:id", draftHandler.Close)
			}

			// Order routes
			orders := protected.Group("/orders")
			{
				orders.GET("", orderHandler.GetOrders)
				orders.PATCH("/:id/status", orderHandler.UpdateStatus)
			}

			// Overview routes
			protected.GET("/stats", overviewHandler.GetStats)
			protected.GET("/customers", overviewHandler.GetCustomers)

			// Category routes
			protected.GET("/categories", getCategoriesHandler)
		}
	}

	return r
}

// Helper handlers for simple endpoints
func getCategoriesHandler(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": models.Categories,
	})
}
