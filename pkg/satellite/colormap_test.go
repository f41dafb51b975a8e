package satellite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorForDeterministic(t *testing.T) {
	a := ColorFor(0.42, 0, 1, SchemeVegetation)
	b := ColorFor(0.42, 0, 1, SchemeVegetation)
	assert.Equal(t, a, b)
}

func TestVegetationRedChannelMonotone(t *testing.T) {
	// Higher vegetation never renders redder than lower vegetation.
	prev := ColorFor(0.0, 0, 1, SchemeVegetation)
	for v := 0.01; v <= 1.0; v += 0.01 {
		next := ColorFor(v, 0, 1, SchemeVegetation)
		assert.LessOrEqual(t, next.R, prev.R, "red rose between %f and %f", v-0.01, v)
		prev = next
	}
}

func TestVegetationEndpoints(t *testing.T) {
	low := ColorFor(0, 0, 1, SchemeVegetation)
	high := ColorFor(1, 0, 1, SchemeVegetation)

	assert.Greater(t, low.R, low.G)  // poor vegetation is red
	assert.Greater(t, high.G, high.R) // healthy vegetation is green
}

func TestMoistureBlueGradient(t *testing.T) {
	dry := ColorFor(0, 0, 100, SchemeMoisture)
	wet := ColorFor(100, 0, 100, SchemeMoisture)

	assert.Equal(t, uint8(255), dry.B)
	assert.Equal(t, uint8(255), wet.B)
	assert.Greater(t, dry.R, wet.R) // dry is whiter, moist is bluer
	assert.Greater(t, dry.G, wet.G)
}

func TestTemperatureInflectsAtMidpoint(t *testing.T) {
	cold := ColorFor(-10, -10, 40, SchemeTemperature)
	mid := ColorFor(15, -10, 40, SchemeTemperature)
	hot := ColorFor(40, -10, 40, SchemeTemperature)

	assert.Equal(t, uint8(255), cold.B)
	assert.Equal(t, uint8(255), hot.R)
	assert.Greater(t, mid.R, cold.R)
	assert.Greater(t, hot.R, cold.R)
	assert.Less(t, hot.B, cold.B)
}

func TestParamsFor(t *testing.T) {
	assert.Equal(t, Vegetation, ParamsFor(SchemeVegetation))
	assert.Equal(t, SoilMoisture, ParamsFor(SchemeMoisture))
	assert.Equal(t, Temperature, ParamsFor(SchemeTemperature))
	assert.Equal(t, Vegetation, ParamsFor(Scheme("unknown")))
}
