package models

const (
	FoodAvailable = "available"
	FoodReserved  = "reserved"
)

// FoodItem is a donation listing posted by a restaurant. Listings expire out
// of the available view two hours after creation (or at date rollover) even
// if nobody reserved them.
type FoodItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit,omitempty"`
	Status       string  `json:"status"` // "available" | "reserved"
	Date         string  `json:"date"`   // YYYY-MM-DD
	CreatedAt    string  `json:"createdAt"` // RFC 3339
	RestaurantID string  `json:"restaurantId,omitempty"`
	ImageURL     string  `json:"imageUrl,omitempty"`
}

// ReservedItem snapshots a FoodItem at reservation time. The list is
// append-only; later edits to the source item do not touch the snapshot.
type ReservedItem struct {
	FoodItem
	NgoID      string `json:"ngoId,omitempty"`
	ReservedAt string `json:"reservedAt"` // RFC 3339
}
