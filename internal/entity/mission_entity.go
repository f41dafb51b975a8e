package entity

import (
	"time"

	"geotagger-be/pkg/geo"

	"github.com/google/uuid"
)

// Mission is a set of visit objectives seeded from the user's folders.
// Only one mission is active at a time.
type Mission struct {
	Id          uuid.UUID
	Title       string
	Description string
	Reward      int
	Objectives  []*Objective
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Objective completion is monotonic; see pkg/mission for the transition
// rules.
type Objective struct {
	Id             uuid.UUID
	MissionId      uuid.UUID
	Description    string
	TargetLat      *float64
	TargetLon      *float64
	RequiredMeters float64
	Completed      bool
}

// Target returns the objective's coordinate, or nil for objectives without
// a location (e.g. free-form tasks).
func (o *Objective) Target() *geo.Coordinate {
	if o.TargetLat == nil || o.TargetLon == nil {
		return nil
	}
	return &geo.Coordinate{Latitude: *o.TargetLat, Longitude: *o.TargetLon}
}
