package app

import (
	"os"

	"github.com/Hemajnamburu/Job-Tracker-BE/internal/auth"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/company"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/interview"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/job"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/middleware"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/shared/connection"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := db.AutoMigrate(
		&auth.User{},
		&company.Company{},
		&job.Job{},
		&interview.Interview{},
	); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	tokens := token.NewService(os.Getenv("JWT_SECRET"))

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// Register Modules & Routes
	return registerModules(router, db, redisClient, tokens)
}
