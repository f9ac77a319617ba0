package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type PartnershipInput struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Message      string `json:"message"`
}

func CreatePartnership(c *gin.Context) {
	var input PartnershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := services.CreatePartnership(c.GetUint("userID"), input.RestaurantID, input.Message)
	if err != nil {
		if errors.Is(err, services.ErrPartnershipExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partnership request"})
		return
	}
	c.JSON(http.StatusCreated, req)
}

func GetPartnerships(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	out, err := services.PartnershipsForUser(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list partnerships"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type PartnershipDecisionInput struct {
	Accept bool `json:"accept"`
}

func DecidePartnership(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var input PartnershipDecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := services.DecidePartnership(uint(id), c.GetUint("userID"), input.Accept)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}
