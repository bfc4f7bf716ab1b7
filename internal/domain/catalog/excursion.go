package catalog

import "github.com/google/uuid"

// Excursion is a read-only catalog entry for a guided excursion, anchored to
// a named spot (the location it departs from).
type Excursion struct {
	ID            uuid.UUID `json:"id"`
	Spot          string    `json:"ubicacion"`
	Title         string    `json:"titulo_es"`
	Description   string    `json:"descripcion_es,omitempty"`
	Duration      string    `json:"duracion,omitempty"`
	DepartureTime string    `json:"hr_salida,omitempty"`
	Price         float64   `json:"precio"`
	ImageURL      string    `json:"imagen_url,omitempty"`
}
