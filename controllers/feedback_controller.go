package controllers

import (
	"fmt"
	"net/http"
	"time"

	"backend/models"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FeedbackInput struct {
	Rating  int    `json:"rating" binding:"min=0,max=5"`
	Message string `json:"message" binding:"required"`
}

func AddFeedback(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.Feedback{
		ID:        uuid.NewString(),
		UserID:    fmt.Sprintf("%d", c.GetUint("userID")),
		Rating:    input.Rating,
		Message:   input.Message,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	all := storage.Read(d.Store, storage.KeyFeedback, []models.Feedback{})
	all = append(all, entry)
	if err := d.Store.WriteMirrored(storage.KeyFeedback, all); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save feedback"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func GetFeedback(c *gin.Context) {
	c.JSON(http.StatusOK, storage.Read(d.Store, storage.KeyFeedback, []models.Feedback{}))
}
