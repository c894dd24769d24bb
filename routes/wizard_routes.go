package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/controllers/wizard_controller"
	"github.com/spacemen100/house-haven-market-sub000/middleware"
)

// SetupWizardRoutes sets up the listing wizard routes
func SetupWizardRoutes(router *gin.RouterGroup) {
	wizard := router.Group("/wizard")
	{
		authed := wizard.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("", wizard_controller.StartWizard)
			authed.POST("/edit/:id", wizard_controller.StartEdit)

			authed.GET("/:token", wizard_controller.GetWizardState)
			authed.GET("/:token/geocode", middleware.RateLimiter(60, time.Minute), wizard_controller.ReverseGeocode)
			authed.DELETE("/:token", wizard_controller.CancelWizard)
			authed.POST("/:token/step", wizard_controller.AdvanceStep)
			authed.POST("/:token/back", wizard_controller.GoBack)
			authed.POST("/:token/images", wizard_controller.UploadImages)
			authed.DELETE("/:token/images/:index", wizard_controller.RemoveStagedImage)
			authed.DELETE("/:token/stored-images/:imageId", wizard_controller.RemoveStoredImage)
			authed.POST("/:token/submit", middleware.RateLimiter(10, time.Minute), wizard_controller.SubmitListing)
		}
	}
}
