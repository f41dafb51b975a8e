package satellite

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"

	"geotagger-be/pkg/geo"
)

// DefaultGridSize is the per-axis cell count of a generated grid.
const DefaultGridSize = 20

// boundsWindowDegrees is the fixed geographic window (~1 km) a grid covers,
// independent of how many cells it is sliced into.
const boundsWindowDegrees = 0.01

// Params describes the normal distribution a synthetic layer is drawn from.
type Params struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Canonical presets matching real-world plausibility ranges.
var (
	Vegetation   = Params{Mean: 0.65, StdDev: 0.12, Min: 0, Max: 1}
	SoilMoisture = Params{Mean: 35, StdDev: 8, Min: 0, Max: 100}
	Temperature  = Params{Mean: 18, StdDev: 3, Min: -10, Max: 40}
)

// Bounds is the geographic box a grid covers.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// DataGrid is a square array of synthetic scalar samples centered on an
// anchor coordinate. Grids are transient: regenerated per request, never
// persisted.
type DataGrid struct {
	Anchor geo.Coordinate
	Values [][]float64
	Bounds Bounds
}

// seedFor derives a deterministic seed from the anchor alone. The anchor is
// rounded to 6 decimal places (~0.1 m) so re-sampled GPS fixes of the same
// spot reuse the same sequence.
func seedFor(anchor geo.Coordinate) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%.6f,%.6f", anchor.Latitude, anchor.Longitude)
	return int64(h.Sum64())
}

// Generate produces a gridSize x gridSize grid of values drawn from the
// distribution in p, clamped to [p.Min, p.Max]. The same anchor and params
// always yield a bit-identical grid.
func Generate(anchor geo.Coordinate, p Params, gridSize int) *DataGrid {
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}

	rng := rand.New(rand.NewSource(seedFor(anchor)))

	values := make([][]float64, gridSize)
	for i := 0; i < gridSize; i++ {
		row := make([]float64, gridSize)
		for j := 0; j < gridSize; j++ {
			// Box-Muller transform for a standard-normal sample.
			// 1-Float64() keeps u1 in (0,1] so the log stays finite.
			u1 := 1 - rng.Float64()
			u2 := rng.Float64()
			z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)

			value := p.Mean + z*p.StdDev
			row[j] = math.Max(p.Min, math.Min(p.Max, value))
		}
		values[i] = row
	}

	half := boundsWindowDegrees / 2
	return &DataGrid{
		Anchor: anchor,
		Values: values,
		Bounds: Bounds{
			North: anchor.Latitude + half,
			South: anchor.Latitude - half,
			East:  anchor.Longitude + half,
			West:  anchor.Longitude - half,
		},
	}
}

// MinMax returns the smallest and largest values in the grid.
func (g *DataGrid) MinMax() (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, row := range g.Values {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// Mean returns the arithmetic mean of all grid values.
func (g *DataGrid) Mean() float64 {
	var sum float64
	var n int
	for _, row := range g.Values {
		for _, v := range row {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
