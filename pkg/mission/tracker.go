package mission

import (
	"time"

	"geotagger-be/pkg/geo"

	"github.com/google/uuid"
)

// Objective is a single visit target. Completion is monotonic: once true it
// never reverts, no matter how many coordinates are observed afterwards.
type Objective struct {
	Id             uuid.UUID
	Description    string
	Target         *geo.Coordinate
	RequiredMeters float64
	Completed      bool
}

// Completion is emitted exactly once per objective, at the observation that
// satisfied it.
type Completion struct {
	ObjectiveId uuid.UUID
	Description string
	Distance    float64
	At          time.Time
}

// Tracker evaluates a coordinate stream against a mission's objectives. It
// holds no mutable state besides the per-objective completion flags.
type Tracker struct {
	objectives []*Objective
}

// NewTracker wraps the given objectives. The slice is retained; callers read
// back completion state through Objectives().
func NewTracker(objectives []*Objective) *Tracker {
	return &Tracker{objectives: objectives}
}

// Observe checks every pending objective against the coordinate and returns
// a Completion for each one that transitioned. Re-observing a completed
// objective is a no-op. The distance boundary is inclusive.
func (t *Tracker) Observe(coord geo.Coordinate) []Completion {
	completions := make([]Completion, 0)
	for _, obj := range t.objectives {
		if obj.Completed || obj.Target == nil {
			continue
		}

		required := obj.RequiredMeters
		if required <= 0 {
			required = geo.ProximityThresholdMeters
		}

		d := geo.Distance(coord, *obj.Target)
		if d <= required {
			obj.Completed = true
			completions = append(completions, Completion{
				ObjectiveId: obj.Id,
				Description: obj.Description,
				Distance:    d,
				At:          coord.Timestamp,
			})
		}
	}
	return completions
}

// Objectives exposes the tracked objectives, completion flags included.
func (t *Tracker) Objectives() []*Objective {
	return t.objectives
}

// Progress is the mission completion percentage in [0, 100].
func (t *Tracker) Progress() float64 {
	if len(t.objectives) == 0 {
		return 0
	}
	completed := 0
	for _, obj := range t.objectives {
		if obj.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(t.objectives)) * 100
}

// Done reports whether every objective has completed.
func (t *Tracker) Done() bool {
	if len(t.objectives) == 0 {
		return false
	}
	for _, obj := range t.objectives {
		if !obj.Completed {
			return false
		}
	}
	return true
}
