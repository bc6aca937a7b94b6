package app

import (
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/auth"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/company"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/interview"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/job"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	tokens *token.Service,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	interviewRepo := interview.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo, tokens)
	companyService := company.NewService(companyRepo)
	jobService := job.NewService(jobRepo, companyRepo)
	interviewService := interview.NewService(interviewRepo, jobRepo, companyRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	jobHandler := job.NewHandler(jobService)
	interviewHandler := interview.NewHandler(interviewService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, tokens)
		company.RegisterRoutes(api, companyHandler, tokens, rdb)
		job.RegisterRoutes(api, jobHandler, tokens, rdb)
		interview.RegisterRoutes(api, interviewHandler, tokens, rdb)
	}

	return nil
}
