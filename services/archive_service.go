package services

import (
	"sort"
	"time"

	"backend/models"
	"backend/storage"
)

const dateLayout = "2006-01-02"

// ArchiveService folds the live todaysserving collection into the per-date
// history at dataformodel.json. Re-archiving the same date fully overwrites
// that date's items, so the operation is safe to retry.
type ArchiveService struct {
	store *storage.Store
	now   func() time.Time
}

func NewArchiveService(store *storage.Store) *ArchiveService {
	return &ArchiveService{store: store, now: time.Now}
}

// ArchiveToday upserts today's servings into the archive and returns the
// entry it wrote. An empty day is archived as an entry with no items —
// a day with zero servings is still a data point for the model.
func (a *ArchiveService) ArchiveToday() (models.ArchiveEntry, error) {
	today := storage.Read(a.store, storage.KeyTodaysServing, []models.ServingRecord{})
	dateKey := a.now().Format(dateLayout)

	archive := storage.Read(a.store, storage.KeyModelData, []models.ArchiveEntry{})

	entry := models.ArchiveEntry{Date: dateKey, Items: today}
	replaced := false
	for i := range archive {
		if archive[i].Date == dateKey {
			archive[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		archive = append(archive, entry)
	}

	// Out-of-order inserts happen when the clock moves or an old backup is
	// restored; keep the sequence sorted regardless.
	sort.Slice(archive, func(i, j int) bool { return archive[i].Date < archive[j].Date })

	if err := a.store.WriteMirrored(storage.KeyModelData, archive); err != nil {
		return models.ArchiveEntry{}, err
	}
	return entry, nil
}

// ResetToday clears the live collection in both sinks. Runs after
// ArchiveToday on the nightly job; if the process dies in between, the next
// archive run overwrites the same date and nothing is lost.
func (a *ArchiveService) ResetToday() error {
	return a.store.WriteMirrored(storage.KeyTodaysServing, []models.ServingRecord{})
}
