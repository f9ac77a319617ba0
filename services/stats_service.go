package services

import (
	"errors"
	"math"
	"sort"

	"backend/models"
	"backend/storage"
)

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

var ErrInvalidPeriod = errors.New("period must be weekly or monthly")

// StatsService projects the dated archive into a fixed recent window:
// the last 7 entries for weekly, the last 30 for monthly.
type StatsService struct {
	store *storage.Store
}

func NewStatsService(store *storage.Store) *StatsService {
	return &StatsService{store: store}
}

// Series returns one point per archived date in the window, oldest first.
// Shorter history yields fewer points; there is no zero padding.
func (s *StatsService) Series(period string) ([]models.SeriesPoint, error) {
	var window int
	switch period {
	case PeriodWeekly:
		window = 7
	case PeriodMonthly:
		window = 30
	default:
		return nil, ErrInvalidPeriod
	}

	archive := storage.Read(s.store, storage.KeyModelData, []models.ArchiveEntry{})
	sort.Slice(archive, func(i, j int) bool { return archive[i].Date < archive[j].Date })
	if len(archive) > window {
		archive = archive[len(archive)-window:]
	}

	points := make([]models.SeriesPoint, 0, len(archive))
	for _, entry := range archive {
		var plates, earning float64
		for _, item := range entry.Items {
			plates += item.TotalPlates
			earning += item.TotalEarning
		}
		points = append(points, models.SeriesPoint{
			Date:          entry.Date,
			Actual:        plates,
			ActualEarning: round2(earning),
		})
	}
	return points, nil
}

// RefreshMetrics recomputes both series and persists them for the
// dashboard (metrics_weekly.json / metrics_monthly.json).
func (s *StatsService) RefreshMetrics() error {
	weekly, err := s.Series(PeriodWeekly)
	if err != nil {
		return err
	}
	if err := s.store.WriteMirrored(storage.KeyMetricsWeekly, weekly); err != nil {
		return err
	}
	monthly, err := s.Series(PeriodMonthly)
	if err != nil {
		return err
	}
	return s.store.WriteMirrored(storage.KeyMetricsMonthly, monthly)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
