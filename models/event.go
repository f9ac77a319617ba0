package models

// Event is a community drive or collection event. Reads surface only
// upcoming events (date >= today); expired entries are removed by an
// explicit compaction pass, not by the read itself.
type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"` // YYYY-MM-DD
	Location string `json:"location,omitempty"`
	Details  string `json:"details,omitempty"`
	NgoID    string `json:"ngoId,omitempty"`
}
