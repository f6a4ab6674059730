package routes

import (
	"github.com/dhu2022-dev/mental-health-checkin/config"
	"github.com/dhu2022-dev/mental-health-checkin/controllers"
	_ "github.com/dhu2022-dev/mental-health-checkin/docs"
	middlewares "github.com/dhu2022-dev/mental-health-checkin/middleware"
	"github.com/dhu2022-dev/mental-health-checkin/services"
	"github.com/dhu2022-dev/mental-health-checkin/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes wires services and controllers onto the router. Clients are
// passed in from main; nothing here reaches for package globals.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody, cfg config.AppConfig) {
	l := logger.NewDefaultLogger(logger.InfoLevel)

	checkInService := services.NewCheckInService(services.CheckInServiceOptions{
		DB:     db,
		Redis:  redisCli,
		WS:     m,
		Logger: l,
	})
	statsService := services.NewStatsService(services.StatsServiceOptions{
		DB:       db,
		Redis:    redisCli,
		Logger:   l,
		Timezone: cfg.Timezone,
	})
	insightService := services.NewInsightService(services.InsightServiceOptions{
		DB:     db,
		Logger: l,
		APIKey: cfg.OpenAIKey,
	})

	checkInController := controllers.NewCheckInController(checkInService, cfg.Timezone)
	statsController := controllers.NewStatsController(statsService)
	insightController := controllers.NewInsightController(insightService)
	exportController := controllers.NewExportController(checkInService, cfg.Timezone)

	v1 := router.Group("/api/v1")

	v1.POST("/checkin", middlewares.APIKeyMiddleware(cfg.CheckInKey), checkInController.Create)
	v1.GET("/checkins", checkInController.List)
	v1.GET("/checkins/search", checkInController.Search)
	v1.GET("/export", exportController.Export)

	v1.GET("/stats/daily", statsController.Daily)

	v1.GET("/insights", insightController.List)
	v1.POST("/insights", insightController.Generate)

	if cld != nil {
		backgroundService := services.NewBackgroundService(services.BackgroundServiceOptions{
			DB:         db,
			Cloudinary: cld,
			Logger:     l,
		})
		backgroundController := controllers.NewBackgroundController(backgroundService)
		v1.GET("/background", backgroundController.Get)
		v1.POST("/background", backgroundController.Upload)
		v1.DELETE("/background", backgroundController.Delete)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
