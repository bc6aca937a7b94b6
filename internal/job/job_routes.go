package job

import (
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/middleware"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens *token.Service, rdb *redis.Client) {
	jobs := r.Group("/jobs", middleware.AuthMiddleware(tokens), middleware.ExtractUserID())
	{
		jobs.GET("", handler.List)
		jobs.POST("", middleware.Idempotency(rdb), handler.Create)
		jobs.GET("/:id", handler.GetById)
		jobs.PATCH("/:id", handler.Update)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}

	// The per-company application listing lives under /companies but is a
	// job read, so it is registered here.
	r.GET("/companies/:id/applications",
		middleware.AuthMiddleware(tokens), middleware.ExtractUserID(), handler.ListByCompany)
}
