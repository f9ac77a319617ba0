package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RegisterDeviceInput struct {
	Platform string `json:"platform" binding:"required,oneof=android ios web"`
	Token    string `json:"token" binding:"required"`
}

func RegisterDevice(c *gin.Context) {
	var input RegisterDeviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if d.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push not configured"})
		return
	}

	dev, err := d.Push.RegisterDevice(c.GetUint("userID"), input.Platform, input.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dev)
}
