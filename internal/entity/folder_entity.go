package entity

import (
	"time"

	"geotagger-be/pkg/geo"

	"github.com/google/uuid"
)

// Folder groups the notes taken around one anchor coordinate. The anchor is
// fixed at creation and never recomputed from member notes, so folders do
// not drift as notes accumulate.
type Folder struct {
	Id            uuid.UUID
	Name          string
	Latitude      float64
	Longitude     float64
	Notes         []*Note
	SatelliteData *SatelliteSummary
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Anchor exposes the folder's fixed coordinate for proximity resolution.
func (f *Folder) Anchor() geo.Coordinate {
	return geo.Coordinate{Latitude: f.Latitude, Longitude: f.Longitude}
}

// SatelliteSummary is the scalar environmental snapshot attached to a
// folder, distinct from the full raster grid which is never persisted.
type SatelliteSummary struct {
	Ndvi               float64   `json:"ndvi"`
	SoilMoisture       float64   `json:"soil_moisture"`
	TemperatureCelsius float64   `json:"temperature_celsius"`
	FetchedAt          time.Time `json:"fetched_at"`
}
