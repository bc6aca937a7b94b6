package auth

import (
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/middleware"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/token"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens *token.Service) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.1, 5), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.GET("/profile", middleware.AuthMiddleware(tokens), middleware.ExtractUserID(), middleware.RateLimitByUser(2, 5), handler.Profile)
	}
}
