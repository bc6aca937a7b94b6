package interview

import (
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/middleware"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens *token.Service, rdb *redis.Client) {
	interviews := r.Group("/interviews", middleware.AuthMiddleware(tokens), middleware.ExtractUserID())
	{
		interviews.GET("", handler.List)
		interviews.POST("", middleware.Idempotency(rdb), handler.Create)
		interviews.GET("/:id", handler.GetById)
		interviews.PUT("/:id", handler.Update)
		interviews.DELETE("/:id", handler.Delete)
	}
}
