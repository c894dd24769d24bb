package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/controllers/location_controller"
)

// SetupLocationRoutes sets up the cascading city/district/street routes
func SetupLocationRoutes(router *gin.RouterGroup) {
	locations := router.Group("/locations")
	{
		locations.GET("/cities", location_controller.GetCities)
		locations.GET("/districts", location_controller.GetDistricts)
		locations.GET("/streets", location_controller.GetStreets)
	}
}
