package satellite

import (
	"testing"

	"geotagger-be/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paris = geo.Coordinate{Latitude: 48.8566, Longitude: 2.3522}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(paris, Vegetation, DefaultGridSize)
	b := Generate(paris, Vegetation, DefaultGridSize)

	assert.Equal(t, a.Values, b.Values)
	assert.Equal(t, a.Bounds, b.Bounds)
}

func TestGenerateDiffersAcrossAnchors(t *testing.T) {
	other := geo.Coordinate{Latitude: 48.9000, Longitude: 2.4000}

	a := Generate(paris, Vegetation, DefaultGridSize)
	b := Generate(other, Vegetation, DefaultGridSize)

	assert.NotEqual(t, a.Values, b.Values)
}

func TestGenerateShapeAndClamping(t *testing.T) {
	grid := Generate(paris, Vegetation, 20)

	require.Len(t, grid.Values, 20)
	for _, row := range grid.Values {
		require.Len(t, row, 20)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestGenerateBoundsCenteredOnAnchor(t *testing.T) {
	grid := Generate(paris, SoilMoisture, DefaultGridSize)

	assert.InDelta(t, paris.Latitude+0.005, grid.Bounds.North, 1e-9)
	assert.InDelta(t, paris.Latitude-0.005, grid.Bounds.South, 1e-9)
	assert.InDelta(t, paris.Longitude+0.005, grid.Bounds.East, 1e-9)
	assert.InDelta(t, paris.Longitude-0.005, grid.Bounds.West, 1e-9)

	// The window is fixed regardless of grid resolution.
	fine := Generate(paris, SoilMoisture, 40)
	assert.Equal(t, grid.Bounds, fine.Bounds)
}

func TestGenerateDefaultsGridSize(t *testing.T) {
	grid := Generate(paris, Temperature, 0)
	assert.Len(t, grid.Values, DefaultGridSize)
}

func TestGridMinMaxAndMean(t *testing.T) {
	grid := &DataGrid{Values: [][]float64{{1, 2}, {3, 4}}}

	min, max := grid.MinMax()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 4.0, max)
	assert.Equal(t, 2.5, grid.Mean())
}

func TestGenerateValuesTrackDistribution(t *testing.T) {
	grid := Generate(paris, Temperature, DefaultGridSize)

	// With 400 samples the mean should land near the preset mean.
	assert.InDelta(t, Temperature.Mean, grid.Mean(), 1.0)
}
