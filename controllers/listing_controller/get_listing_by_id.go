package listing_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"gorm.io/gorm"
)

// GetListingByID godoc
// @Summary Get one listing with all detail
// @Description Retrieves a single listing with its images and every categorical feature list, and bumps the view counter.
// @Tags Listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.ApiResponse{data=models.Property}
// @Failure 400 {object} models.ApiResponse "Invalid ID"
// @Failure 404 {object} models.ApiResponse "Listing not found"
// @Router /listings/{id} [get]
func GetListingByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing ID"))
		return
	}

	var property models.Property
	if err := preloadAll(config.Gorm).
		Where("id = ?", id).
		First(&property).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Listing not found"))
		return
	}

	// Best-effort view counter; a failure never blocks the read
	config.Gorm.Model(&models.Property{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))

	property.Views++

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Listing fetched", property))
}
