package controllers

import (
	"fmt"
	"net/http"

	"backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventInput struct {
	Title    string `json:"title" binding:"required"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Location string `json:"location"`
	Details  string `json:"details"`
}

func AddEvent(c *gin.Context) {
	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev := models.Event{
		ID:       uuid.NewString(),
		Title:    input.Title,
		Date:     input.Date,
		Location: input.Location,
		Details:  input.Details,
		NgoID:    fmt.Sprintf("%d", c.GetUint("userID")),
	}
	if err := d.Events.Add(ev); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save event"})
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func GetUpcomingEvents(c *gin.Context) {
	c.JSON(http.StatusOK, d.Events.Upcoming())
}

// CompactEvents garbage-collects past events; the job GETs used to do
// implicitly now lives behind an explicit call.
func CompactEvents(c *gin.Context) {
	dropped, err := d.Events.Compact()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compact events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dropped": dropped})
}

func DeleteEvent(c *gin.Context) {
	if !d.Events.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
