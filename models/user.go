package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleNGO        = "NGO"
	RoleRestaurant = "RESTAURANT"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	Role          string `gorm:"size:20;not null"` // "NGO" | "RESTAURANT"
	FullName      string
	Organization  string
	Phone         string
	Address       string
	TaxID         string // FSSAI number for restaurants, Darpan id for NGOs
	Disabled      bool
	ResetToken    string
	ResetTokenExp time.Time
}
