package location_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/models"
)

// GetDistricts godoc
// @Summary List districts of a city
// @Description Returns the districts of the given city. An unknown or empty city yields an empty list, never an error.
// @Tags Locations
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Router /locations/districts [get]
func GetDistricts(c *gin.Context) {
	city := c.Query("city")
	districts := Catalog.DistrictsFor(city)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Districts fetched", districts))
}
