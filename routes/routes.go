package routes

import (
	"github.com/MehulKanani556/Dance-Fitme/controllers"
	"github.com/MehulKanani556/Dance-Fitme/middlewares"
	"github.com/MehulKanani556/Dance-Fitme/services"
	"github.com/MehulKanani556/Dance-Fitme/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, clock services.Clock) *gin.Engine {
	statsSvc := services.NewDanceStatsService(services.NewGormStatsStore(db), clock)
	goalSvc := services.NewDanceGoalService(db, clock)
	weightSvc := services.NewWeightService(db, clock)

	statsCtl := controllers.NewDanceStatsController(statsSvc)
	goalCtl := controllers.NewDanceGoalController(goalSvc)
	weightCtl := controllers.NewWeightController(weightSvc)

	r := gin.New()
	r.Use(gin.Recovery(), utils.RequestLogger())

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(db))

	stats := api.Group("/stats")
	{
		stats.POST("/session", statsCtl.RecordSession)
		stats.GET("/daily", statsCtl.GetDailyStats)
		stats.GET("/weekly", statsCtl.GetWeeklyStats)
		stats.GET("/monthly", statsCtl.GetMonthlyStats)
		stats.GET("/total", statsCtl.GetTotalStats)
	}

	goal := api.Group("/goal")
	{
		goal.POST("", goalCtl.Create)
		goal.GET("", goalCtl.Get)
		goal.GET("/progress", goalCtl.GetProgress)
		goal.PUT("/:id", goalCtl.Update)
		goal.DELETE("/:id", goalCtl.Delete)
	}

	weight := api.Group("/weight")
	{
		weight.POST("", weightCtl.Create)
		weight.GET("", weightCtl.Get)
		weight.PUT("/:id", weightCtl.Update)
		weight.DELETE("/:id", weightCtl.Delete)
		weight.POST("/:id/record", weightCtl.AddRecord)
	}

	return r
}
