package mission

import (
	"math"
	"testing"
	"time"

	"geotagger-be/pkg/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func target(lat, lon float64) *geo.Coordinate {
	return &geo.Coordinate{Latitude: lat, Longitude: lon}
}

func TestObserveCompletesWithinRange(t *testing.T) {
	obj := &Objective{
		Id:             uuid.New(),
		Description:    "Visit the park",
		Target:         target(48.8566, 2.3522),
		RequiredMeters: 50,
	}
	tracker := NewTracker([]*Objective{obj})

	now := time.Now()
	completions := tracker.Observe(geo.Coordinate{Latitude: 48.8567, Longitude: 2.3523, Timestamp: now})

	require.Len(t, completions, 1)
	assert.Equal(t, obj.Id, completions[0].ObjectiveId)
	assert.Equal(t, now, completions[0].At)
	assert.True(t, obj.Completed)
	assert.Equal(t, 100.0, tracker.Progress())
	assert.True(t, tracker.Done())
}

func TestObserveIdempotentOnRevisit(t *testing.T) {
	obj := &Objective{Id: uuid.New(), Target: target(48.8566, 2.3522), RequiredMeters: 50}
	tracker := NewTracker([]*Objective{obj})

	first := tracker.Observe(geo.Coordinate{Latitude: 48.8566, Longitude: 2.3522})
	second := tracker.Observe(geo.Coordinate{Latitude: 48.8566, Longitude: 2.3522})

	assert.Len(t, first, 1)
	assert.Empty(t, second)
	assert.True(t, obj.Completed)
	assert.Equal(t, 100.0, tracker.Progress())
}

func TestObserveBoundaryInclusive(t *testing.T) {
	anchor := geo.Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	// Walk north until we find a point at (just under) exactly 50.0 m,
	// then require completion at a threshold equal to that distance.
	step := 50.0 / geo.EarthRadiusMeters * 180 / math.Pi
	probe := geo.Coordinate{Latitude: anchor.Latitude + step, Longitude: anchor.Longitude}
	d := geo.Distance(anchor, probe)

	obj := &Objective{Id: uuid.New(), Target: &anchor, RequiredMeters: d}
	tracker := NewTracker([]*Objective{obj})

	completions := tracker.Observe(probe)
	require.Len(t, completions, 1)
	assert.InDelta(t, d, completions[0].Distance, 1e-9)
}

func TestObserveSkipsTargetlessObjectives(t *testing.T) {
	withTarget := &Objective{Id: uuid.New(), Target: target(48.8566, 2.3522), RequiredMeters: 50}
	noTarget := &Objective{Id: uuid.New(), Description: "Take a photo"}
	tracker := NewTracker([]*Objective{noTarget, withTarget})

	completions := tracker.Observe(geo.Coordinate{Latitude: 48.8566, Longitude: 2.3522})

	require.Len(t, completions, 1)
	assert.Equal(t, withTarget.Id, completions[0].ObjectiveId)
	assert.False(t, noTarget.Completed)
	assert.Equal(t, 50.0, tracker.Progress())
	assert.False(t, tracker.Done())
}

func TestObserveDefaultsRequiredDistance(t *testing.T) {
	obj := &Objective{Id: uuid.New(), Target: target(48.8566, 2.3522)}
	tracker := NewTracker([]*Objective{obj})

	// ~14 m away: inside the 50 m default.
	completions := tracker.Observe(geo.Coordinate{Latitude: 48.8567, Longitude: 2.3523})
	assert.Len(t, completions, 1)
}

func TestObserveFarCoordinateDoesNothing(t *testing.T) {
	obj := &Objective{Id: uuid.New(), Target: target(48.8566, 2.3522), RequiredMeters: 50}
	tracker := NewTracker([]*Objective{obj})

	completions := tracker.Observe(geo.Coordinate{Latitude: 48.9000, Longitude: 2.4000})

	assert.Empty(t, completions)
	assert.False(t, obj.Completed)
	assert.Equal(t, 0.0, tracker.Progress())
}

func TestEmptyTracker(t *testing.T) {
	tracker := NewTracker(nil)
	assert.Empty(t, tracker.Observe(geo.Coordinate{}))
	assert.Equal(t, 0.0, tracker.Progress())
	assert.False(t, tracker.Done())
}
