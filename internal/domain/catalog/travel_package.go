package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// TravelPackage is a read-only catalog entry for a multi-day tour package.
type TravelPackage struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"nombre_es"`
	Description    string    `json:"descripcion_es,omitempty"`
	Destinations   string    `json:"destinos_es,omitempty"`
	Includes       string    `json:"incluye_es,omitempty"`
	Price          float64   `json:"precio"`
	DurationDays   int       `json:"duracion_dias"`
	DurationNights int       `json:"duracion_noches"`
	Region         string    `json:"region"`
}

// IncludedItems splits the newline-delimited Includes field into trimmed,
// non-empty lines. A package without included items yields an empty slice.
func (p TravelPackage) IncludedItems() []string {
	if p.Includes == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(p.Includes, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
