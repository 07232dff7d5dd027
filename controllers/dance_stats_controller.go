package controllers

import (
	"net/http"
	"strconv"

	"github.com/MehulKanani556/Dance-Fitme/services"

	"github.com/gin-gonic/gin"
)

type DanceStatsController struct {
	svc *services.DanceStatsService
}

func NewDanceStatsController(svc *services.DanceStatsService) *DanceStatsController {
	return &DanceStatsController{svc: svc}
}

// RecordSession adds today's dance activity and returns the updated daily
// record together with the lifetime rollup.
func (ctl *DanceStatsController) RecordSession(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		DanceTimeInMin int `json:"danceTimeInMin"`
		CaloriesBurned int `json:"caloriesBurned"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, rollup, err := ctl.svc.RecordSession(c.Request.Context(), userID, body.DanceTimeInMin, body.CaloriesBurned)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Dance session recorded successfully",
		"dailyStat":  sess,
		"totalStats": rollup,
	})
}

func (ctl *DanceStatsController) GetDailyStats(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	sess, err := ctl.svc.DailyStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": sess})
}

func (ctl *DanceStatsController) GetWeeklyStats(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	summary, err := ctl.svc.WeeklyStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ctl *DanceStatsController) GetMonthlyStats(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	month, err := intQuery(c, "month")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be a number"})
		return
	}
	year, err := intQuery(c, "year")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
		return
	}

	summary, err := ctl.svc.MonthlyStats(c.Request.Context(), userID, month, year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ctl *DanceStatsController) GetTotalStats(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	summary, err := ctl.svc.TotalStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": summary})
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
