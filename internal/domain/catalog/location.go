package catalog

import "github.com/google/uuid"

// Location is a named place usable as a trip origin/destination or excursion
// anchor. Values are copied out of the directory once selected; downstream
// components keep the ID, not the search text.
type Location struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"nombre"`
	Province string    `json:"provincia"`
}
