package controllers

import (
	"net/http"

	"backend/models"

	"github.com/gin-gonic/gin"
)

type ServingInput struct {
	Name         string  `json:"name" binding:"required"`
	TotalPlates  float64 `json:"totalPlates" binding:"required"`
	CostPerPlate float64 `json:"costPerPlate"`
	TotalEarning float64 `json:"totalEarning"`
	RestaurantID string  `json:"restaurantId"`
}

func AddServing(c *gin.Context) {
	var input ServingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := d.Servings.Add(models.ServingRecord{
		Name:         input.Name,
		TotalPlates:  input.TotalPlates,
		CostPerPlate: input.CostPerPlate,
		TotalEarning: input.TotalEarning,
		RestaurantID: input.RestaurantID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save serving"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func GetTodaysServings(c *gin.Context) {
	c.JSON(http.StatusOK, d.Servings.Today())
}

func DeleteServing(c *gin.Context) {
	if !d.Servings.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "serving not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ArchiveServings is the on-demand fold of today's servings into the dated
// history. Responds as soon as the archive write lands; no training here.
func ArchiveServings(c *gin.Context) {
	entry, err := d.Archive.ArchiveToday()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive servings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": entry.Date, "archived": len(entry.Items)})
}

func ResetServings(c *gin.Context) {
	if err := d.Archive.ResetToday(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset servings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "today's servings cleared"})
}
