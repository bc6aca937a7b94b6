package company

import (
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/middleware"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens *token.Service, rdb *redis.Client) {
	companies := r.Group("/companies", middleware.AuthMiddleware(tokens), middleware.ExtractUserID())
	{
		companies.GET("", handler.List)
		companies.GET("/summary", handler.Summary)
		companies.POST("", middleware.Idempotency(rdb), handler.Create)
		companies.GET("/:id", handler.GetById)
		companies.PATCH("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
	}
}
