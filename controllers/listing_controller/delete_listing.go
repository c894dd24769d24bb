package listing_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	filter_cache "github.com/spacemen100/house-haven-market-sub000/cache"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/middleware"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/services"
)

// Storage handles listing image deletion; main wires it at startup.
var Storage *services.CloudinaryService

// DeleteListing godoc
// @Summary Delete a listing
// @Description Deletes a listing owned by the authenticated user: every categorical row, the image index, the core record and the stored image folder.
// @Tags Listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Not the owner"
// @Failure 404 {object} models.ApiResponse "Listing not found"
// @Failure 500 {object} models.ApiResponse
// @Router /listings/{id} [delete]
func DeleteListing(c *gin.Context) {
	userID, ok := middleware.GetUserUUIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing ID"))
		return
	}

	var property models.Property
	if err := config.Gorm.Where("id = ?", id).First(&property).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Listing not found"))
		return
	}
	if property.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You do not own this listing"))
		return
	}

	// Categorical rows first, then the image index, then the core row
	for _, table := range models.CategoryTable {
		if err := config.Gorm.Table(table).Where("property_id = ?", id).Delete(nil).Error; err != nil {
			log.Printf("⚠️  Failed to clear %s for listing %s: %v", table, id, err)
		}
	}
	if err := config.Gorm.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
		log.Printf("⚠️  Failed to clear image index for listing %s: %v", id, err)
	}
	if err := config.Gorm.Delete(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete listing"))
		return
	}

	// Stored images go last; an orphaned folder is recoverable, a dangling
	// DB row is not
	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := Storage.DeleteListingFolder(ctx, id.String()); err != nil {
		log.Printf("⚠️  Failed to delete image folder for listing %s: %v", id, err)
	}

	filter_cache.Invalidate()

	log.Printf("✅ Listing %s deleted", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Listing deleted", nil))
}
