package controllers

import (
	"errors"
	"net/http"

	"backend/models"
	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

// Recalibrate runs a full training pass and waits for it, so the caller
// gets either the freshly stamped summary or the trainer's diagnostic.
func Recalibrate(c *gin.Context) {
	summary, err := d.Trainer.Recalibrate()
	if err != nil {
		var te *services.TrainError
		if errors.As(err, &te) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "training failed", "detail": te.Excerpt})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update model summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func GetPredicted(c *gin.Context) {
	c.JSON(http.StatusOK, storage.Read(d.Store, storage.KeyPredicted, models.ModelSummary{}))
}

func GetPredictedWeekly(c *gin.Context) {
	c.JSON(http.StatusOK, storage.Read(d.Store, storage.KeyPredictedWeekly, models.ModelSummary{}))
}
