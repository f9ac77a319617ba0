package services

import (
	"time"

	"backend/models"
	"backend/storage"

	"github.com/google/uuid"
)

// ServingService records the day's servings into the live collection that
// the nightly rollover archives and resets.
type ServingService struct {
	store *storage.Store
	now   func() time.Time
}

func NewServingService(store *storage.Store) *ServingService {
	return &ServingService{store: store, now: time.Now}
}

func (s *ServingService) Today() []models.ServingRecord {
	return storage.Read(s.store, storage.KeyTodaysServing, []models.ServingRecord{})
}

// Add stamps id and date, derives totalEarning when the caller sent only
// plates and a per-plate cost, and appends the record.
func (s *ServingService) Add(rec models.ServingRecord) (models.ServingRecord, error) {
	rec.ID = uuid.NewString()
	rec.Date = s.now().Format(dateLayout)
	if rec.TotalEarning == 0 && rec.CostPerPlate > 0 {
		rec.TotalEarning = rec.TotalPlates * rec.CostPerPlate
	}

	today := s.Today()
	today = append(today, rec)
	if err := s.store.WriteMirrored(storage.KeyTodaysServing, today); err != nil {
		return models.ServingRecord{}, err
	}
	return rec, nil
}

func (s *ServingService) Delete(id string) bool {
	today := s.Today()
	kept := today[:0]
	found := false
	for _, rec := range today {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return false
	}
	if err := s.store.WriteMirrored(storage.KeyTodaysServing, kept); err != nil {
		return false
	}
	return true
}
