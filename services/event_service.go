package services

import (
	"time"

	"backend/models"
	"backend/storage"
)

// EventService manages community events. Upcoming is a pure query; expired
// entries are garbage-collected by Compact, never by a GET.
type EventService struct {
	store *storage.Store
	now   func() time.Time
}

func NewEventService(store *storage.Store) *EventService {
	return &EventService{store: store, now: time.Now}
}

func (e *EventService) All() []models.Event {
	return storage.Read(e.store, storage.KeyEvents, []models.Event{})
}

// Upcoming returns events dated today or later.
func (e *EventService) Upcoming() []models.Event {
	today := e.now().Format(dateLayout)
	events := e.All()
	out := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if ev.Date >= today {
			out = append(out, ev)
		}
	}
	return out
}

// Compact drops events dated before today and persists the survivors.
func (e *EventService) Compact() (int, error) {
	events := e.All()
	upcoming := e.Upcoming()
	dropped := len(events) - len(upcoming)
	if dropped == 0 {
		return 0, nil
	}
	return dropped, e.store.WriteMirrored(storage.KeyEvents, upcoming)
}

func (e *EventService) Add(ev models.Event) error {
	events := e.All()
	events = append(events, ev)
	return e.store.WriteMirrored(storage.KeyEvents, events)
}

func (e *EventService) Delete(id string) bool {
	events := e.All()
	kept := events[:0]
	found := false
	for _, ev := range events {
		if ev.ID == id {
			found = true
			continue
		}
		kept = append(kept, ev)
	}
	if !found {
		return false
	}
	if err := e.store.WriteMirrored(storage.KeyEvents, kept); err != nil {
		return false
	}
	return true
}
