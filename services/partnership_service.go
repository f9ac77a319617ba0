package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var ErrPartnershipExists = errors.New("partnership request already exists for this pair")

func CreatePartnership(ngoID, restaurantID uint, message string) (*models.PartnershipRequest, error) {
	var existing models.PartnershipRequest
	err := config.DB.Where("ngo_id = ? AND restaurant_id = ?", ngoID, restaurantID).First(&existing).Error
	if err == nil {
		return nil, ErrPartnershipExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	req := models.PartnershipRequest{
		NgoID:        ngoID,
		RestaurantID: restaurantID,
		Status:       models.PartnershipPending,
		Message:      message,
	}
	if err := config.DB.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func PartnershipsForUser(user *models.User) ([]models.PartnershipRequest, error) {
	var out []models.PartnershipRequest
	q := config.DB
	if user.Role == models.RoleNGO {
		q = q.Where("ngo_id = ?", user.ID)
	} else {
		q = q.Where("restaurant_id = ?", user.ID)
	}
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

// DecidePartnership records the restaurant's accept/reject and mails the
// requesting NGO. Mail failure is logged by the mailer, not surfaced — the
// decision itself already happened.
func DecidePartnership(id uint, restaurantID uint, accept bool) (*models.PartnershipRequest, error) {
	var req models.PartnershipRequest
	if err := config.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&req).Error; err != nil {
		return nil, errors.New("partnership request not found")
	}

	if accept {
		req.Status = models.PartnershipAccepted
	} else {
		req.Status = models.PartnershipRejected
	}
	if err := config.DB.Save(&req).Error; err != nil {
		return nil, err
	}

	var ngo models.User
	if err := config.DB.First(&ngo, req.NgoID).Error; err == nil {
		go func() { _ = utils.SendPartnershipEmail(ngo.Email, req.Status) }()
	}
	return &req, nil
}
