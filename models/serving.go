package models

// ServingRecord is one unit of food served today. The collection grows all
// day and is folded into an ArchiveEntry at rollover.
type ServingRecord struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"` // YYYY-MM-DD
	Name         string  `json:"name"`
	RestaurantID string  `json:"restaurantId,omitempty"`
	TotalPlates  float64 `json:"totalPlates"`
	CostPerPlate float64 `json:"costPerPlate,omitempty"`
	TotalEarning float64 `json:"totalEarning"`
}

// ArchiveEntry is one calendar date's rolled-up servings. The archive holds
// at most one entry per date, kept sorted by date ascending.
type ArchiveEntry struct {
	Date  string          `json:"date"` // YYYY-MM-DD, unique key
	Items []ServingRecord `json:"items"`
}
