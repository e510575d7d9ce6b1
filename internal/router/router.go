// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mythicool/vaporlax/internal/catalog"
	"github.com/Mythicool/vaporlax/internal/config"
	"github.com/Mythicool/vaporlax/internal/content"
	"github.com/Mythicool/vaporlax/internal/handlers"
	"github.com/Mythicool/vaporlax/internal/middleware"
	"github.com/Mythicool/vaporlax/internal/services"
	"github.com/Mythicool/vaporlax/internal/store"
)

func Initialize(cat *catalog.Catalog, lib *content.Library, sessions *store.Manager, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(cat, cfg)
	checkoutService := services.NewCheckoutService(cfg)
	contentService := services.NewContentService(lib, catalogService)
	engagementService := services.NewEngagementService(cfg)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService, sessions)
	cartHandler := handlers.NewCartHandler(catalogService, sessions, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, sessions)
	contentHandler := handlers.NewContentHandler(contentService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	uiHandler := handlers.NewUIHandler(sessions)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Session())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
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
		// Product catalog
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/categories", productHandler.GetCategories)
			products.PUT("/filters", productHandler.SetFilters)
			products.DELETE("/filters", productHandler.ClearFilters)
			products.GET("/:id", productHandler.GetProduct)
		}

		// Cart
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PATCH("/items/:productID", cartHandler.UpdateItem)
			cart.DELETE("/items/:productID", cartHandler.RemoveItem)
		}

		// Checkout
		checkout := v1.Group("/checkout")
		checkout.Use(middleware.CheckoutRateLimit())
		{
			checkout.POST("/session", checkoutHandler.CreateSession)
			checkout.GET("/verify", checkoutHandler.VerifySession)
		}

		// Content
		v1.GET("/blog", contentHandler.GetPosts)
		v1.GET("/blog/:slug", contentHandler.GetPost)
		v1.GET("/events", contentHandler.GetEvents)
		v1.GET("/promotions", contentHandler.GetPromotions)
		v1.GET("/testimonials", contentHandler.GetTestimonials)
		v1.GET("/faq", contentHandler.GetFAQ)

		// Engagement
		v1.POST("/newsletter/subscribe", middleware.NewsletterRateLimit(), engagementHandler.Subscribe)
		v1.POST("/contact", middleware.ContactRateLimit(), engagementHandler.SubmitContact)
		v1.POST("/verify-age", engagementHandler.VerifyAge)

		// UI state
		v1.GET("/ui", uiHandler.GetState)
		v1.PATCH("/ui", uiHandler.UpdateState)
	}

	return r
}
