package dto

import (
	"time"

	"github.com/google/uuid"
)

type ObjectiveResponse struct {
	Id             uuid.UUID `json:"id"`
	Description    string    `json:"description"`
	TargetLat      *float64  `json:"target_lat,omitempty"`
	TargetLon      *float64  `json:"target_lon,omitempty"`
	RequiredMeters float64   `json:"required_meters"`
	Completed      bool      `json:"completed"`
}

type MissionResponse struct {
	Id          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Reward      int                 `json:"reward"`
	Objectives  []ObjectiveResponse `json:"objectives"`
	Completed   bool                `json:"completed"`
	Progress    float64             `json:"progress"`
	CreatedAt   time.Time           `json:"created_at"`
}

type ProgressRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type CompletionResponse struct {
	ObjectiveId    uuid.UUID `json:"objective_id"`
	Description    string    `json:"description"`
	DistanceMeters float64   `json:"distance_meters"`
	At             time.Time `json:"at"`
}

type ProgressResponse struct {
	Completions      []CompletionResponse `json:"completions"`
	Progress         float64              `json:"progress"`
	MissionCompleted bool                 `json:"mission_completed"`
}
