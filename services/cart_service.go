package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/storage"
)

var ErrRequestNotFound = errors.New("request not found")

// CartService persists the NGO basket and derives pickup requests from it.
// Saving a cart both stores the cart document and appends one request per
// cart item with initial status "booked".
type CartService struct {
	store *storage.Store
	now   func() time.Time
}

func NewCartService(store *storage.Store) *CartService {
	return &CartService{store: store, now: time.Now}
}

func (c *CartService) Cart() []models.CartItem {
	return storage.Read(c.store, storage.KeyCart, []models.CartItem{})
}

func (c *CartService) Requests() []models.RequestItem {
	return storage.Read(c.store, storage.KeyRequests, []models.RequestItem{})
}

// SaveCart overwrites the cart document and appends the derived requests.
// The two writes are independent documents; there is no rollback if the
// second fails, the cart simply stays saved.
func (c *CartService) SaveCart(items []models.CartItem) ([]models.RequestItem, error) {
	if err := c.store.WriteMirrored(storage.KeyCart, items); err != nil {
		return nil, err
	}

	requests := c.Requests()
	stamp := c.now().Format(time.RFC3339)
	derived := make([]models.RequestItem, 0, len(items))
	for _, it := range items {
		r := models.RequestItem{
			CartItem:    it,
			Status:      models.RequestBooked,
			RequestedAt: stamp,
		}
		derived = append(derived, r)
		requests = append(requests, r)
	}
	if err := c.store.WriteMirrored(storage.KeyRequests, requests); err != nil {
		return nil, err
	}
	return derived, nil
}

// UpdateRequestStatus mutates one request in place by id.
func (c *CartService) UpdateRequestStatus(id, status string) (models.RequestItem, error) {
	requests := c.Requests()
	for i := range requests {
		if requests[i].ID == id {
			requests[i].Status = status
			if err := c.store.WriteMirrored(storage.KeyRequests, requests); err != nil {
				return models.RequestItem{}, err
			}
			return requests[i], nil
		}
	}
	return models.RequestItem{}, ErrRequestNotFound
}

func (c *CartService) ClearCart() error {
	return c.store.WriteMirrored(storage.KeyCart, []models.CartItem{})
}
