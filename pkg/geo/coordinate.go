package geo

import "time"

// Coordinate is a single GPS fix as delivered by the location feed.
// Altitude is nil when the device cannot resolve it.
type Coordinate struct {
	Latitude  float64
	Longitude float64
	Altitude  *float64
	Accuracy  float64
	Timestamp time.Time
}

// Anchored is anything pinned to a fixed coordinate (folders, objectives).
type Anchored interface {
	Anchor() Coordinate
}
