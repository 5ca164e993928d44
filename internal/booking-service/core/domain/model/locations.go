package model

// Location is an immutable point picked from a place search result.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
	Subtitle  string  `json:"subtitle,omitempty"`
}
