package controllers

import (
	"net/http"
	"strconv"

	"github.com/MehulKanani556/Dance-Fitme/services"

	"github.com/gin-gonic/gin"
)

type DanceGoalController struct {
	svc *services.DanceGoalService
}

func NewDanceGoalController(svc *services.DanceGoalService) *DanceGoalController {
	return &DanceGoalController{svc: svc}
}

func (ctl *DanceGoalController) Create(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		Energy  float64 `json:"energy"`
		Workout float64 `json:"workout"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.svc.Create(c.Request.Context(), userID, body.Energy, body.Workout)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dance goal created successfully", "result": goal})
}

func (ctl *DanceGoalController) Get(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goal, err := ctl.svc.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": goal})
}

func (ctl *DanceGoalController) GetProgress(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	goal, progress, err := ctl.svc.Progress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal, "progress": progress})
}

func (ctl *DanceGoalController) Update(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	goalID, err := idParam(c)
	if err != nil {
		return
	}

	var body struct {
		Energy  *float64 `json:"energy"`
		Workout *float64 `json:"workout"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := ctl.svc.Update(c.Request.Context(), goalID, userID, body.Energy, body.Workout)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dance goal updated successfully", "result": goal})
}

func (ctl *DanceGoalController) Delete(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	goalID, err := idParam(c)
	if err != nil {
		return
	}

	if err := ctl.svc.Delete(c.Request.Context(), goalID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "dance goal deleted successfully"})
}

// idParam parses the :id path segment, writing a 400 itself on failure.
func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, err
	}
	return uint(id), nil
}
