package main

import (
	"context"
	"log"
	"net/http"

	"github.com/dhu2022-dev/mental-health-checkin/config"
	"github.com/dhu2022-dev/mental-health-checkin/jobs"
	"github.com/dhu2022-dev/mental-health-checkin/models"
	"github.com/dhu2022-dev/mental-health-checkin/routes"
	"github.com/dhu2022-dev/mental-health-checkin/services"
	"github.com/dhu2022-dev/mental-health-checkin/services/logger"

	"github.com/gin-gonic/gin"
)

// @title        Mood Check-in API
// @version      1.0
// @description  Personal mood journaling backend: shortcut ingestion, dashboard stats and AI period summaries.
// @BasePath     /api/v1
func main() {
	config.LoadEnv()
	cfg := config.Load()

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.CheckIn{}, &models.Insight{}, &models.AppSetting{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	redisCli, err := config.ConnectRedis(context.Background())
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	cld, err := config.ConnectCloudinary()
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	statsService := services.NewStatsService(services.StatsServiceOptions{
		DB:       db,
		Redis:    redisCli,
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Timezone: cfg.Timezone,
	})
	jobs.SetStatsWarmer(statsService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, db, redisCli, cld, m, cfg)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
