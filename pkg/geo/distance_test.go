package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func coord(lat, lon float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lon}
}

func TestDistanceSymmetry(t *testing.T) {
	a := coord(48.8566, 2.3522)
	b := coord(48.9000, 2.4000)

	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Equal(t, 0.0, Distance(a, a))
}

func TestDistanceParisNeighbors(t *testing.T) {
	// Two fixes about one block apart in central Paris.
	a := coord(48.8566, 2.3522)
	b := coord(48.8567, 2.3523)

	d := Distance(a, b)
	assert.Greater(t, d, 10.0)
	assert.Less(t, d, 20.0)
}

func TestDistanceParisSuburb(t *testing.T) {
	a := coord(48.8566, 2.3522)
	b := coord(48.9000, 2.4000)

	d := Distance(a, b)
	assert.Greater(t, d, 5000.0)
	assert.Less(t, d, 8000.0)
}

func TestIsWithinMatchesDistance(t *testing.T) {
	a := coord(48.8566, 2.3522)
	b := coord(48.8567, 2.3523)

	d := Distance(a, b)
	assert.True(t, IsWithin(a, b, d))       // inclusive boundary
	assert.True(t, IsWithin(a, b, d+0.001))
	assert.False(t, IsWithin(a, b, d-0.001))
}

func TestIsWithinAltitudeIgnored(t *testing.T) {
	alt := 320.5
	a := Coordinate{Latitude: 48.8566, Longitude: 2.3522, Altitude: &alt}
	b := Coordinate{Latitude: 48.8566, Longitude: 2.3522}

	assert.Equal(t, 0.0, Distance(a, b))
}
