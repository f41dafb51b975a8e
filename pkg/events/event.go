package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "FOLDER_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Topic names carried on the in-process bus and mirrored to NATS.
const (
	TopicFolderCreated      = "folder.created"
	TopicObjectiveCompleted = "objective.completed"
	TopicMissionCompleted   = "mission.completed"
)

// BaseEvent is the generic implementation the typed constructors below build.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewFolderCreated marks a brand-new location folder minted by the resolver.
func NewFolderCreated(folderId uuid.UUID, name string, lat, lon float64) BaseEvent {
	return BaseEvent{
		Type: "FOLDER_CREATED",
		Data: map[string]interface{}{
			"folder_id": folderId.String(),
			"name":      name,
			"latitude":  lat,
			"longitude": lon,
		},
		OccurredAt: time.Now(),
	}
}

// NewObjectiveCompleted marks a mission objective transitioning to done.
func NewObjectiveCompleted(missionId, objectiveId uuid.UUID, description string, distance float64) BaseEvent {
	return BaseEvent{
		Type: "OBJECTIVE_COMPLETED",
		Data: map[string]interface{}{
			"mission_id":   missionId.String(),
			"objective_id": objectiveId.String(),
			"description":  description,
			"distance_m":   distance,
		},
		OccurredAt: time.Now(),
	}
}

// NewMissionCompleted marks every objective of a mission being done.
func NewMissionCompleted(missionId uuid.UUID, title string) BaseEvent {
	return BaseEvent{
		Type: "MISSION_COMPLETED",
		Data: map[string]interface{}{
			"mission_id": missionId.String(),
			"title":      title,
		},
		OccurredAt: time.Now(),
	}
}
