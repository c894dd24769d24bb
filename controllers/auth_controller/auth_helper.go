package auth_controller

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"gorm.io/gorm"
)

func createOrUpdateUser(githubUser *models.GithubUserInfo) (*models.User, error) {
	githubID := strconv.FormatInt(githubUser.ID, 10)

	var user models.User

	// Try to find existing user by email
	result := config.Gorm.
		Where("email = ?", githubUser.Email).
		First(&user)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			// First-time GitHub login, create user
			user = models.User{
				Email:         githubUser.Email,
				Name:          githubUser.Name,
				GithubID:      &githubID,
				Provider:      "github",
				EmailVerified: true,
				Avatar:        &githubUser.AvatarURL,
				Status:        "active",
			}

			if err := config.Gorm.Create(&user).Error; err != nil {
				return nil, err
			}

			return &user, nil
		}

		return nil, result.Error
	}

	// Existing user: update safe fields only
	updates := map[string]interface{}{
		"avatar":         githubUser.AvatarURL,
		"email_verified": true,
	}

	// Only set name if user never had one
	if user.Name == "" {
		updates["name"] = githubUser.Name
	}

	// Attach GitHub account if not already linked
	if user.GithubID == nil {
		updates["github_id"] = githubID
		updates["provider"] = "github"
	}

	if err := config.Gorm.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	// Sync struct with DB updates
	if user.Name == "" {
		user.Name = githubUser.Name
	}
	user.Avatar = &githubUser.AvatarURL
	user.EmailVerified = true

	return &user, nil
}

func setAuthCookie(c *gin.Context, token string) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		token,
		24*60*60, // 24 hours
		"/",
		"",
		isProd,
		true, // httpOnly
	)
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
