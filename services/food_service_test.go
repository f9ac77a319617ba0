package services

import (
	"errors"
	"testing"
	"time"

	"backend/models"
	"backend/storage"
)

func foodClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func seedFood(t *testing.T, store *storage.Store, items []models.FoodItem) {
	t.Helper()
	if err := store.WriteMirrored(storage.KeyFoodItems, items); err != nil {
		t.Fatal(err)
	}
}

func TestAvailableFiltersStaleAndReserved(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2024-05-10T12:00:00Z")
	store := newTestStore(t)
	f := NewFoodService(store)
	f.now = foodClock(now)

	seedFood(t, store, []models.FoodItem{
		{ID: "fresh", Status: models.FoodAvailable, Date: "2024-05-10",
			CreatedAt: now.Add(-30 * time.Minute).Format(time.RFC3339)},
		{ID: "too-old", Status: models.FoodAvailable, Date: "2024-05-10",
			CreatedAt: now.Add(-3 * time.Hour).Format(time.RFC3339)},
		{ID: "yesterday", Status: models.FoodAvailable, Date: "2024-05-09",
			CreatedAt: now.Add(-30 * time.Minute).Format(time.RFC3339)},
		{ID: "taken", Status: models.FoodReserved, Date: "2024-05-10",
			CreatedAt: now.Add(-10 * time.Minute).Format(time.RFC3339)},
	})

	got := f.Available()
	if len(got) != 1 || got[0].ID != "fresh" {
		t.Errorf("Available = %+v, want only the fresh item", got)
	}

	// The read is pure: all four rows must still be on disk.
	if all := f.All(); len(all) != 4 {
		t.Errorf("read mutated storage, %d rows left", len(all))
	}
}

func TestCompactDropsOnlyStaleAvailable(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2024-05-10T12:00:00Z")
	store := newTestStore(t)
	f := NewFoodService(store)
	f.now = foodClock(now)

	seedFood(t, store, []models.FoodItem{
		{ID: "fresh", Status: models.FoodAvailable, Date: "2024-05-10",
			CreatedAt: now.Add(-time.Hour).Format(time.RFC3339)},
		{ID: "stale", Status: models.FoodAvailable, Date: "2024-05-09",
			CreatedAt: now.Add(-26 * time.Hour).Format(time.RFC3339)},
		{ID: "taken", Status: models.FoodReserved, Date: "2024-05-08",
			CreatedAt: now.Add(-50 * time.Hour).Format(time.RFC3339)},
	})

	dropped, err := f.Compact()
	if err != nil {
		t.Fatalf("Compact: %v", err)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}

	left := f.All()
	if len(left) != 2 {
		t.Fatalf("kept %d rows, want 2", len(left))
	}
	for _, it := range left {
		if it.ID == "stale" {
			t.Error("stale listing survived compaction")
		}
	}
}

func TestReserveSnapshotsAndFlipsStatus(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2024-05-10T12:00:00Z")
	store := newTestStore(t)
	f := NewFoodService(store)
	f.now = foodClock(now)

	seedFood(t, store, []models.FoodItem{
		{ID: "f1", Name: "biryani", Status: models.FoodAvailable, Date: "2024-05-10",
			CreatedAt: now.Format(time.RFC3339)},
	})

	snap, err := f.Reserve("f1", "ngo-7")
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if snap.Status != models.FoodReserved || snap.NgoID != "ngo-7" {
		t.Errorf("snapshot = %+v", snap)
	}

	// Reserved and gone from the available view, present in reserved list.
	if avail := f.Available(); len(avail) != 0 {
		t.Errorf("reserved item still available: %+v", avail)
	}
	reserved := f.Reserved()
	if len(reserved) != 1 || reserved[0].ID != "f1" {
		t.Errorf("reserved list = %+v", reserved)
	}

	// Snapshot is append-only: mutating the listing later leaves it alone.
	items := f.All()
	items[0].Name = "renamed"
	if err := store.WriteMirrored(storage.KeyFoodItems, items); err != nil {
		t.Fatal(err)
	}
	if got := f.Reserved()[0].Name; got != "biryani" {
		t.Errorf("snapshot tracked source mutation: %q", got)
	}
}

func TestReserveErrors(t *testing.T) {
	now, _ := time.Parse(time.RFC3339, "2024-05-10T12:00:00Z")
	store := newTestStore(t)
	f := NewFoodService(store)
	f.now = foodClock(now)

	seedFood(t, store, []models.FoodItem{
		{ID: "f1", Status: models.FoodReserved, Date: "2024-05-10", CreatedAt: now.Format(time.RFC3339)},
	})

	if _, err := f.Reserve("missing", "ngo-1"); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("err = %v, want ErrFoodNotFound", err)
	}
	if _, err := f.Reserve("f1", "ngo-1"); !errors.Is(err, ErrAlreadyReserved) {
		t.Errorf("err = %v, want ErrAlreadyReserved", err)
	}
}

func TestDeleteFood(t *testing.T) {
	store := newTestStore(t)
	f := NewFoodService(store)
	seedFood(t, store, []models.FoodItem{{ID: "f1"}, {ID: "f2"}})

	if err := f.Delete("f1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if all := f.All(); len(all) != 1 || all[0].ID != "f2" {
		t.Errorf("All = %+v", all)
	}
	if err := f.Delete("f1"); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("second delete err = %v, want ErrFoodNotFound", err)
	}
}
