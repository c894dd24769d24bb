package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register godoc
// @Summary Register with email and password
// @Description Creates a new account, hashes the password, issues a JWT cookie and returns the user profile.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration payload"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid registration payload"))
		return
	}

	// Reject duplicate emails up front for a clean 409
	var existing models.User
	err := config.Gorm.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to check existing account"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to hash password"))
		return
	}
	hashStr := string(hash)

	user := models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &hashStr,
		Provider:     "email",
		Status:       "active",
	}
	if err := config.Gorm.Create(&user).Error; err != nil {
		log.Printf("❌ Failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate token"))
		return
	}
	setAuthCookie(c, token)

	log.Printf("✅ Registered new user: %s", user.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
