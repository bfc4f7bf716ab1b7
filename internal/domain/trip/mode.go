package trip

import "fmt"

// ServiceMode is the taxi service tier. Shared (colectivo) seats are sold
// per person within a half-day window; Private (privado) hires the whole
// vehicle for an exact departure time.
type ServiceMode string

const (
	ModeShared  ServiceMode = "colectivo"
	ModePrivate ServiceMode = "privado"
)

// IsValid returns true if the mode is a recognized service mode.
func (m ServiceMode) IsValid() bool {
	return m == ModeShared || m == ModePrivate
}

// Label returns the customer-facing Spanish label for the mode.
func (m ServiceMode) Label() string {
	switch m {
	case ModeShared:
		return "Taxi Colectivo"
	case ModePrivate:
		return "Taxi Privado"
	default:
		return string(m)
	}
}

// ParseServiceMode converts a string to a ServiceMode, returning an error if invalid.
func ParseServiceMode(s string) (ServiceMode, error) {
	mode := ServiceMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid service mode: %s", s)
	}
	return mode, nil
}

// HalfDayWindow is the departure window for shared taxis.
type HalfDayWindow string

const (
	WindowMorning   HalfDayWindow = "mañana"
	WindowAfternoon HalfDayWindow = "tarde"
)

// IsValid returns true if the window is a recognized half-day window.
func (w HalfDayWindow) IsValid() bool {
	return w == WindowMorning || w == WindowAfternoon
}

// Label returns the customer-facing description of the window.
func (w HalfDayWindow) Label() string {
	switch w {
	case WindowMorning:
		return "Mañana (6:00 AM - 12:00 PM)"
	case WindowAfternoon:
		return "Tarde (12:00 PM - 6:00 PM)"
	default:
		return string(w)
	}
}
