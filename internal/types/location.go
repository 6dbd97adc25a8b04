package types

// Tips holds the narrative fields shown on a card. Every field is optional.
type Tips struct {
	Intro string `json:"intro,omitempty" yaml:"intro" toml:"intro"`
	Do    string `json:"do,omitempty" yaml:"do" toml:"do"`
	Eat   string `json:"eat,omitempty" yaml:"eat" toml:"eat"`
	See   string `json:"see,omitempty" yaml:"see" toml:"see"`
	Photo string `json:"photo,omitempty" yaml:"photo" toml:"photo"`
}

// Location is one stop of the itinerary, scoped to a single day.
type Location struct {
	ID        int      `json:"id" yaml:"-" toml:"-"` // 1-based position in the source file
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Day       int      `json:"day" yaml:"day" toml:"day"`
	Lat       *float64 `json:"lat,omitempty" yaml:"lat" toml:"lat"`
	Lng       *float64 `json:"lng,omitempty" yaml:"lng" toml:"lng"`
	Tips      Tips     `json:"tips" yaml:"tips" toml:"tips"`
	Budget    string   `json:"budget,omitempty" yaml:"budget" toml:"budget"`
	Type      string   `json:"type,omitempty" yaml:"type" toml:"type"`
	Images    []string `json:"images,omitempty" yaml:"images" toml:"images"`
	ImageURL  string   `json:"image_url,omitempty" yaml:"image_url" toml:"image_url"`
	Mapcode   string   `json:"mapcode,omitempty" yaml:"mapcode" toml:"mapcode"`
	NextDrive string   `json:"next_drive,omitempty" yaml:"next_drive" toml:"next_drive"`
	DriveTime string   `json:"drive_time,omitempty" yaml:"drive_time" toml:"drive_time"`
}

// HasCoordinates reports whether both lat and lng were present in the file.
func (l Location) HasCoordinates() bool {
	return l.Lat != nil && l.Lng != nil
}

// Pictures merges images and image_url, keeping order and dropping duplicates.
func (l Location) Pictures() []string {
	out := make([]string, 0, len(l.Images)+1)
	seen := make(map[string]struct{}, len(l.Images)+1)
	add := func(u string) {
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	for _, u := range l.Images {
		add(u)
	}
	add(l.ImageURL)
	return out
}

// Connector returns the travel note towards the next stop.
func (l Location) Connector() string {
	if l.NextDrive != "" {
		return l.NextDrive
	}
	return l.DriveTime
}

// Coordinates is a lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is the south-west / north-east box around a set of coordinates.
type Bounds struct {
	SouthWest Coordinates `json:"south_west"`
	NorthEast Coordinates `json:"north_east"`
}

// ItinerarySummary describes the loaded collection as a whole. Centre and
// Bounds are nil when no record carries coordinates.
type ItinerarySummary struct {
	Title     string       `json:"title"`
	Subtitle  string       `json:"subtitle,omitempty"`
	Stops     int          `json:"stops"`
	Days      []int        `json:"days"`
	FirstDay  int          `json:"first_day"`
	LastDay   int          `json:"last_day"`
	Centre    *Coordinates `json:"centre,omitempty"`
	Bounds    *Bounds      `json:"bounds,omitempty"`
	Unplotted int          `json:"unplotted"`
}

// ItineraryResponse is the payload of GET /itinerary.
type ItineraryResponse struct {
	Summary   ItinerarySummary `json:"summary"`
	Locations []Location       `json:"locations"`
}
