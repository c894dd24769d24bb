package wizard_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// RemoveStagedImage godoc
// @Summary Remove a staged image
// @Description Drops one not-yet-uploaded image from the draft by its index.
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Param token path string true "Draft session token"
// @Param index path int true "Staged image index"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Draft or image not found"
// @Router /wizard/{token}/images/{index} [delete]
func RemoveStagedImage(c *gin.Context) {
	withOwnedSession(c, func(s *wizard.Session) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil || !s.Wizard.RemoveStagedImage(index) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Staged image not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Image removed", gin.H{
			"image_count": s.Wizard.ImageCount(),
		}))
	})
}

// RemoveStoredImage godoc
// @Summary Mark a stored image for removal
// @Description In edit mode, marks an already-uploaded image for deletion. The actual storage and index deletion happen at final submission.
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Param token path string true "Draft session token"
// @Param imageId path string true "Stored image ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid image ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Draft or image not found"
// @Router /wizard/{token}/stored-images/{imageId} [delete]
func RemoveStoredImage(c *gin.Context) {
	withOwnedSession(c, func(s *wizard.Session) {
		imageID, err := uuid.Parse(c.Param("imageId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid image ID"))
			return
		}
		if !s.Wizard.RemoveStoredImage(imageID) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Stored image not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Image marked for removal", gin.H{
			"image_count": s.Wizard.ImageCount(),
		}))
	})
}
