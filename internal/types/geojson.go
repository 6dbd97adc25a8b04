package types

// FeatureCollection is a GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a GeoJSON feature with free-form properties.
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

// Geometry holds either a Point ([lng, lat]) or a LineString ([][lng, lat]).
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// MapView is the payload consumed by the map client.
type MapView struct {
	Mode     string            `json:"mode"` // "all" or "day"
	Day      int               `json:"day,omitempty"`
	Centre   *Coordinates      `json:"centre,omitempty"`
	Bounds   *Bounds           `json:"bounds,omitempty"`
	Tiles    TileLayer         `json:"tiles"`
	Features FeatureCollection `json:"geojson"`
	Skipped  []int             `json:"skipped,omitempty"` // location IDs without coordinates
}
