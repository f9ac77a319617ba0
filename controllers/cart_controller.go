package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartInput struct {
	Items []struct {
		FoodID   string  `json:"foodId"`
		Name     string  `json:"name" binding:"required"`
		Quantity float64 `json:"quantity" binding:"required"`
	} `json:"items" binding:"required"`
}

// SaveCart persists the basket and books one request per line.
func SaveCart(c *gin.Context) {
	var input CartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ngoID := fmt.Sprintf("%d", c.GetUint("userID"))
	items := make([]models.CartItem, 0, len(input.Items))
	for _, in := range input.Items {
		items = append(items, models.CartItem{
			ID:       uuid.NewString(),
			FoodID:   in.FoodID,
			Name:     in.Name,
			Quantity: in.Quantity,
			NgoID:    ngoID,
		})
	}

	requests, err := d.Cart.SaveCart(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cart": items, "requests": requests})
}

func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, d.Cart.Cart())
}

func ClearCart(c *gin.Context) {
	if err := d.Cart.ClearCart(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.Status(http.StatusNoContent)
}

func GetRequests(c *gin.Context) {
	c.JSON(http.StatusOK, d.Cart.Requests())
}

type RequestStatusInput struct {
	Status string `json:"status" binding:"required,oneof=booked pending accepted rejected"`
}

func UpdateRequestStatus(c *gin.Context) {
	var input RequestStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := d.Cart.UpdateRequestStatus(c.Param("id"), input.Status)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}
	c.JSON(http.StatusOK, req)
}
