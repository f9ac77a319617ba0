package models

const (
	RequestBooked   = "booked"
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// CartItem is one line of an NGO's ephemeral basket.
type CartItem struct {
	ID           string  `json:"id"`
	FoodID       string  `json:"foodId,omitempty"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	NgoID        string  `json:"ngoId,omitempty"`
	RestaurantID string  `json:"restaurantId,omitempty"`
}

// RequestItem is derived 1:1 from a CartItem when the cart is saved, with
// initial status "booked". Status then mutates in place by id.
type RequestItem struct {
	CartItem
	Status      string `json:"status"`
	RequestedAt string `json:"requestedAt"` // RFC 3339
}
