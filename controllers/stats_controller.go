package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

// GET /stats?period=weekly|monthly
func GetStats(c *gin.Context) {
	period := c.DefaultQuery("period", services.PeriodWeekly)
	points, err := d.Stats.Series(period)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build series"})
		return
	}
	c.JSON(http.StatusOK, points)
}
