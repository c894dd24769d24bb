package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/controllers/auth_controller"
	"github.com/spacemen100/house-haven-market-sub000/middleware"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		// Email auth, rate limited against credential stuffing
		auth.POST("/register", middleware.RateLimiter(10, time.Minute), auth_controller.Register)
		auth.POST("/login", middleware.RateLimiter(10, time.Minute), auth_controller.Login)

		// GitHub OAuth routes
		auth.GET("/github/login", auth_controller.GithubLogin)
		auth.GET("/github/callback", auth_controller.GithubCallback)

		auth.POST("/logout", auth_controller.Logout)

		// Profile routes require auth
		me := auth.Group("/me")
		me.Use(middleware.AuthMiddleware())
		{
			me.GET("", auth_controller.GetMe)
			me.PATCH("", auth_controller.UpdateProfile)
		}
	}
}
