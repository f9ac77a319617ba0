package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FoodInput struct {
	Name        string  `json:"name" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Unit        string  `json:"unit"`
	ImageBase64 string  `json:"image_base64"`
}

// AddFoodItem publishes a donation listing. An attached photo is moderated
// and uploaded to S3 before the listing is persisted.
func AddFoodItem(c *gin.Context) {
	var input FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	item := models.FoodItem{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
		Status:       models.FoodAvailable,
		Date:         now.Format("2006-01-02"),
		CreatedAt:    now.Format(time.RFC3339),
		RestaurantID: fmt.Sprintf("%d", c.GetUint("userID")),
	}

	if input.ImageBase64 != "" {
		imageBytes, _, err := utils.DecodeBase64Image(input.ImageBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image"})
			return
		}
		labels, err := utils.ModerateImage(imageBytes)
		if err != nil {
			// Moderation unavailable: publish unmoderated rather than block.
			log.Printf("moderation skipped: %v", err)
		} else if len(labels) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image rejected by moderation", "labels": labels})
			return
		}
		url, err := utils.UploadBase64ImageToS3(input.ImageBase64, item.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}
		item.ImageURL = url
	}

	if err := d.Food.Add(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save food item"})
		return
	}

	if d.Hub != nil {
		d.Hub.BroadcastToRole(models.RoleNGO, gin.H{"kind": "food.listed", "item": item})
	}
	if d.Push != nil {
		go d.Push.PushToRole(models.RoleNGO, "New donation available",
			fmt.Sprintf("%s (%.0f %s)", item.Name, item.Quantity, item.Unit),
			map[string]string{"foodId": item.ID})
	}

	c.JSON(http.StatusCreated, item)
}

func GetAvailableFood(c *gin.Context) {
	c.JSON(http.StatusOK, d.Food.Available())
}

func GetAllFood(c *gin.Context) {
	c.JSON(http.StatusOK, d.Food.All())
}

// CompactFood removes expired listings. Kept separate from the GETs so a
// read never rewrites the document behind the caller's back.
func CompactFood(c *gin.Context) {
	dropped, err := d.Food.Compact()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compact listings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dropped": dropped})
}

func ReserveFood(c *gin.Context) {
	ngoID := fmt.Sprintf("%d", c.GetUint("userID"))
	snapshot, err := d.Food.Reserve(c.Param("id"), ngoID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrAlreadyReserved):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reserve"})
		}
		return
	}

	if d.Hub != nil {
		d.Hub.BroadcastToRole("", gin.H{"kind": "food.reserved", "item": snapshot})
	}
	c.JSON(http.StatusOK, snapshot)
}

func GetReservedFood(c *gin.Context) {
	c.JSON(http.StatusOK, d.Food.Reserved())
}

func DeleteFoodItem(c *gin.Context) {
	if err := d.Food.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
