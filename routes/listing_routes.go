package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/controllers/filter_controller"
	"github.com/spacemen100/house-haven-market-sub000/controllers/listing_controller"
	"github.com/spacemen100/house-haven-market-sub000/middleware"
)

// SetupListingRoutes sets up the public listing catalog routes
func SetupListingRoutes(router *gin.RouterGroup) {
	listings := router.Group("/listings")
	listings.Use(middleware.RateLimiter(120, time.Minute))
	{
		listings.GET("", listing_controller.GetListings)
		listings.GET("/filters/metadata", filter_controller.GetFilterMetadata)

		// Owner routes require auth
		listings.GET("/mine", middleware.AuthMiddleware(), listing_controller.GetMyListings)
		listings.DELETE("/:id", middleware.AuthMiddleware(), listing_controller.DeleteListing)

		// Keep the catch-all :id route last
		listings.GET("/:id", listing_controller.GetListingByID)
	}
}
