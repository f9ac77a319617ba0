package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/storage"
)

var ErrFoodNotFound = errors.New("food item not found")
var ErrAlreadyReserved = errors.New("food item already reserved")

const foodFreshFor = 2 * time.Hour

// FoodService manages donation listings. Listings drop out of the
// available view two hours after posting or at date rollover; removal of
// the stale entries is a separate compaction pass so that GETs stay pure.
type FoodService struct {
	store *storage.Store
	now   func() time.Time
}

func NewFoodService(store *storage.Store) *FoodService {
	return &FoodService{store: store, now: time.Now}
}

func (f *FoodService) All() []models.FoodItem {
	return storage.Read(f.store, storage.KeyFoodItems, []models.FoodItem{})
}

// Available returns listings an NGO can still claim: status available,
// posted today, and no older than two hours. Read-only.
func (f *FoodService) Available() []models.FoodItem {
	items := f.All()
	fresh := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		if f.isFresh(it) {
			fresh = append(fresh, it)
		}
	}
	return fresh
}

// Compact rewrites the listing document with only the fresh available
// items plus everything already reserved (reservations keep their source
// row until explicitly deleted). Returns how many entries were dropped.
func (f *FoodService) Compact() (int, error) {
	items := f.All()
	kept := make([]models.FoodItem, 0, len(items))
	for _, it := range items {
		if it.Status == models.FoodReserved || f.isFresh(it) {
			kept = append(kept, it)
		}
	}
	dropped := len(items) - len(kept)
	if dropped == 0 {
		return 0, nil
	}
	return dropped, f.store.WriteMirrored(storage.KeyFoodItems, kept)
}

func (f *FoodService) Add(item models.FoodItem) error {
	items := f.All()
	items = append(items, item)
	return f.store.WriteMirrored(storage.KeyFoodItems, items)
}

// Reserve flips the listing to reserved and appends a snapshot to the
// reserved list. The snapshot never tracks later edits to the listing.
func (f *FoodService) Reserve(foodID, ngoID string) (models.ReservedItem, error) {
	items := f.All()
	idx := -1
	for i := range items {
		if items[i].ID == foodID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.ReservedItem{}, ErrFoodNotFound
	}
	if items[idx].Status == models.FoodReserved {
		return models.ReservedItem{}, ErrAlreadyReserved
	}

	items[idx].Status = models.FoodReserved
	snapshot := models.ReservedItem{
		FoodItem:   items[idx],
		NgoID:      ngoID,
		ReservedAt: f.now().Format(time.RFC3339),
	}

	if err := f.store.WriteMirrored(storage.KeyFoodItems, items); err != nil {
		return models.ReservedItem{}, err
	}
	reserved := storage.Read(f.store, storage.KeyReserved, []models.ReservedItem{})
	reserved = append(reserved, snapshot)
	if err := f.store.WriteMirrored(storage.KeyReserved, reserved); err != nil {
		return models.ReservedItem{}, err
	}
	return snapshot, nil
}

func (f *FoodService) Reserved() []models.ReservedItem {
	return storage.Read(f.store, storage.KeyReserved, []models.ReservedItem{})
}

func (f *FoodService) Delete(foodID string) error {
	items := f.All()
	kept := items[:0]
	found := false
	for _, it := range items {
		if it.ID == foodID {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return ErrFoodNotFound
	}
	return f.store.WriteMirrored(storage.KeyFoodItems, kept)
}

func (f *FoodService) isFresh(it models.FoodItem) bool {
	if it.Status != models.FoodAvailable {
		return false
	}
	now := f.now()
	if it.Date != now.Format(dateLayout) {
		return false
	}
	created, err := time.Parse(time.RFC3339, it.CreatedAt)
	if err != nil {
		return false
	}
	return now.Sub(created) <= foodFreshFor
}
