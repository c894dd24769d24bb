package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/utils"
	"golang.org/x/crypto/bcrypt"
)

// Login godoc
// @Summary Login with email and password
// @Description Verifies credentials, issues a JWT cookie and returns the user profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login payload"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid login payload"))
		return
	}

	var user models.User
	if err := config.Gorm.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	// OAuth-only accounts have no password hash
	if user.PasswordHash == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "This account uses GitHub sign-in"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if user.Status != "active" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is not active"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}
	setAuthCookie(c, token)

	log.Printf("✅ Login successful: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Authenticated", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
