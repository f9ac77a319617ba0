package models

import "gorm.io/gorm"

const (
	PartnershipPending  = "pending"
	PartnershipAccepted = "accepted"
	PartnershipRejected = "rejected"
)

// PartnershipRequest links an NGO to a restaurant. One request per pair.
type PartnershipRequest struct {
	gorm.Model
	NgoID        uint   `gorm:"index;not null;uniqueIndex:idx_partner_pair"`
	RestaurantID uint   `gorm:"not null;uniqueIndex:idx_partner_pair"`
	Status       string `gorm:"size:20;default:pending"`
	Message      string `gorm:"type:text"`
}
