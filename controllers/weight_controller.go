package controllers

import (
	"net/http"

	"github.com/MehulKanani556/Dance-Fitme/services"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	svc *services.WeightService
}

func NewWeightController(svc *services.WeightService) *WeightController {
	return &WeightController{svc: svc}
}

func (ctl *WeightController) Create(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var body struct {
		Starting float64 `json:"starting"`
		Target   float64 `json:"target"`
		Unit     string  `json:"unit"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weight, err := ctl.svc.Create(c.Request.Context(), userID, body.Starting, body.Target, body.Unit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "weight created successfully", "result": weight})
}

func (ctl *WeightController) Get(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	weight, err := ctl.svc.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": weight})
}

func (ctl *WeightController) Update(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	weightID, err := idParam(c)
	if err != nil {
		return
	}

	var body struct {
		Starting *float64 `json:"starting"`
		Target   *float64 `json:"target"`
		Unit     *string  `json:"unit"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weight, err := ctl.svc.Update(c.Request.Context(), weightID, userID, body.Starting, body.Target, body.Unit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "weight updated successfully", "result": weight})
}

func (ctl *WeightController) Delete(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	weightID, err := idParam(c)
	if err != nil {
		return
	}

	if err := ctl.svc.Delete(c.Request.Context(), weightID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "weight deleted successfully"})
}

func (ctl *WeightController) AddRecord(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	weightID, err := idParam(c)
	if err != nil {
		return
	}

	var body struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weight, err := ctl.svc.AddRecord(c.Request.Context(), weightID, userID, body.Value, body.Unit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record added to history", "result": weight})
}
