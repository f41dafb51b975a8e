package dto

import (
	"time"

	"github.com/google/uuid"
)

type ResolveFolderRequest struct {
	Latitude  float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64  `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

// ResolveFolderResponse reports which folder a coordinate landed in and
// whether it had to be created.
type ResolveFolderResponse struct {
	Id      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Created bool      `json:"created"`
}

type SatelliteSummaryResponse struct {
	Ndvi               float64   `json:"ndvi"`
	SoilMoisture       float64   `json:"soil_moisture"`
	TemperatureCelsius float64   `json:"temperature_celsius"`
	FetchedAt          time.Time `json:"fetched_at"`
}

type FolderResponse struct {
	Id            uuid.UUID                 `json:"id"`
	Name          string                    `json:"name"`
	Latitude      float64                   `json:"latitude"`
	Longitude     float64                   `json:"longitude"`
	Notes         []NoteResponse            `json:"notes"`
	SatelliteData *SatelliteSummaryResponse `json:"satellite_data,omitempty"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     *time.Time                `json:"updated_at"`
}

type RenameFolderRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required"`
}

type NearbyFoldersRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Radius    float64 `json:"radius" validate:"gte=0"`
}

type NearbyFolderResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
}
