package satellite

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeDimensions(t *testing.T) {
	grid := Generate(paris, Vegetation, 20)
	heatmap := Rasterize(grid, SchemeVegetation)

	bounds := heatmap.Image.Bounds()
	assert.Equal(t, 20*DefaultCellScale, bounds.Dx())
	assert.Equal(t, 20*DefaultCellScale, bounds.Dy())
}

func TestRasterizeCellBlocksAreSolid(t *testing.T) {
	grid := Generate(paris, Vegetation, 4)
	heatmap := Rasterize(grid, SchemeVegetation, WithCellScale(5))

	// Every pixel of a cell's block carries that cell's color.
	min, max := grid.MinMax()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := ColorFor(grid.Values[i][j], min, max, SchemeVegetation)
			for y := i * 5; y < (i+1)*5; y++ {
				for x := j * 5; x < (j+1)*5; x++ {
					assert.Equal(t, want, heatmap.Image.RGBAAt(x, y))
				}
			}
		}
	}
}

func TestRasterizeValueRangeOverride(t *testing.T) {
	grid := Generate(paris, Vegetation, 4)

	own := Rasterize(grid, SchemeVegetation)
	pinned := Rasterize(grid, SchemeVegetation, WithValueRange(0, 1))

	assert.Equal(t, own.Bounds, pinned.Bounds)
	assert.NotEqual(t, own.Image.Pix, pinned.Image.Pix)
}

func TestRasterizeFlatGridDoesNotNaN(t *testing.T) {
	grid := &DataGrid{
		Values: [][]float64{{5, 5}, {5, 5}},
		Bounds: Bounds{North: 1, South: 0, East: 1, West: 0},
	}

	heatmap := Rasterize(grid, SchemeMoisture)
	c := heatmap.Image.RGBAAt(0, 0)
	assert.Equal(t, uint8(255), c.A)
}

func TestQuadCornersOrder(t *testing.T) {
	grid := Generate(paris, Vegetation, 4)
	heatmap := Rasterize(grid, SchemeVegetation)

	corners := heatmap.QuadCorners()
	b := grid.Bounds

	assert.Equal(t, [2]float64{b.West, b.North}, corners[0])
	assert.Equal(t, [2]float64{b.East, b.North}, corners[1])
	assert.Equal(t, [2]float64{b.East, b.South}, corners[2])
	assert.Equal(t, [2]float64{b.West, b.South}, corners[3])
	assert.Equal(t, 4326, heatmap.Quad.SRID())
}

func TestEncodePNGRoundTrip(t *testing.T) {
	grid := Generate(paris, Temperature, 8)
	heatmap := Rasterize(grid, SchemeTemperature)

	data, err := heatmap.EncodePNG()
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, heatmap.Image.Bounds(), img.Bounds())
}
