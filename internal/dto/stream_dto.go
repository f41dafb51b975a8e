package dto

import "time"

// Websocket frame types. Clients stream location updates up; the hub pushes
// alerts, completions and stream errors down.
const (
	FrameLocationUpdate     = "location.update"
	FrameStreamError        = "stream.error"
	FrameProximityAlert     = "proximity.alert"
	FrameObjectiveCompleted = "objective.completed"
	FrameMissionCompleted   = "mission.completed"
	FrameFolderCreated      = "folder.created"
)

// Stream error kinds mirror the failure modes a location provider reports.
const (
	StreamErrUnsupported      = "unsupported"
	StreamErrPermissionDenied = "permission-denied"
	StreamErrUnavailable      = "unavailable"
	StreamErrTimeout          = "timeout"
)

type LocationUpdateFrame struct {
	Type      string    `json:"type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Altitude  *float64  `json:"altitude,omitempty"`
	Error     string    `json:"error,omitempty"` // one of the stream error kinds
	Timestamp time.Time `json:"timestamp"`
}

type ProximityAlertFrame struct {
	Type           string  `json:"type"`
	FolderId       string  `json:"folder_id"`
	FolderName     string  `json:"folder_name"`
	DistanceMeters float64 `json:"distance_meters"`
}

type StreamErrorFrame struct {
	Type    string `json:"type"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
