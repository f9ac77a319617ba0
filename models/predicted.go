package models

// ModelSummary is the trainer's output document. The server treats it as
// opaque apart from stamping lastCalibrated after a successful run.
type ModelSummary map[string]any

// SeriesPoint is one date of the weekly/monthly donation series.
type SeriesPoint struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	Actual        float64 `json:"actual"`
	ActualEarning float64 `json:"actualEarning"`
}
