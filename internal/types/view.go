package types

import "strings"

// ViewMode selects which card fields are visible.
type ViewMode string

const (
	ModePassenger ViewMode = "passenger"
	ModeDriver    ViewMode = "driver"
)

// ParseViewMode maps a query value to a ViewMode. Anything other than
// "driver" is the passenger view.
func ParseViewMode(s string) ViewMode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeDriver)) {
		return ModeDriver
	}
	return ModePassenger
}

func (m ViewMode) IsDriver() bool { return m == ModeDriver }

// Toggled returns the opposite mode.
func (m ViewMode) Toggled() ViewMode {
	if m.IsDriver() {
		return ModePassenger
	}
	return ModeDriver
}

// DriverBlock holds the navigation-only fields of a card.
type DriverBlock struct {
	Mapcode       string `json:"mapcode"`
	NavigationURL string `json:"navigation_url,omitempty"`
}

// Card is the rendered form of one Location within a day.
type Card struct {
	LocationID int          `json:"location_id"`
	Order      int          `json:"order"` // position within the day, 1-based
	Name       string       `json:"name"`
	Type       string       `json:"type,omitempty"`
	Budget     string       `json:"budget"`
	Tips       Tips         `json:"tips"`
	Pictures   []string     `json:"pictures"`
	Driver     *DriverBlock `json:"driver,omitempty"`
	Connector  string       `json:"connector,omitempty"`
}

// DayView is the card list of one day.
type DayView struct {
	Day   int      `json:"day"`
	Mode  ViewMode `json:"mode"`
	Cards []Card   `json:"cards"`
}

// MapMode selects between the whole itinerary and a single day.
type MapMode struct {
	All bool
	Day int
}

// TileLayer is the base layer the map client should use.
type TileLayer struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}
