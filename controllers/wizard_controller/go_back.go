package wizard_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// GoBack godoc
// @Summary Move one step back
// @Description Returns to the immediate predecessor step. Nothing already entered is discarded, including the reference number.
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Param token path string true "Draft session token"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Draft not found or expired"
// @Failure 409 {object} models.ApiResponse "At the first step or already submitted"
// @Router /wizard/{token}/back [post]
func GoBack(c *gin.Context) {
	withOwnedSession(c, func(s *wizard.Session) {
		if err := s.Wizard.Back(); err != nil {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Moved back", viewOf(s, c.Param("token"))))
	})
}
