package satellite

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"github.com/twpayne/go-geom"
)

// DefaultCellScale is the square pixel block each grid cell is rendered as.
const DefaultCellScale = 10

// Heatmap is a color raster of a DataGrid plus the geographic quad it drapes
// onto. The quad corners run north-west, north-east, south-east, south-west
// in (longitude, latitude) order.
type Heatmap struct {
	Image  *image.RGBA
	Bounds Bounds
	Quad   *geom.Polygon
}

type rasterConfig struct {
	scale    int
	min, max *float64
}

// RasterOption tweaks rasterization.
type RasterOption func(*rasterConfig)

// WithCellScale overrides the pixels-per-cell factor.
func WithCellScale(scale int) RasterOption {
	return func(c *rasterConfig) { c.scale = scale }
}

// WithValueRange pins the color scale to a fixed range instead of the grid's
// own min/max, so heatmaps of different folders are comparable.
func WithValueRange(min, max float64) RasterOption {
	return func(c *rasterConfig) { c.min, c.max = &min, &max }
}

// Rasterize renders the grid as a solid-color block raster. The output is
// exactly gridSize*scale pixels on each axis and every cell maps to a
// non-overlapping axis-aligned block.
func Rasterize(grid *DataGrid, scheme Scheme, opts ...RasterOption) *Heatmap {
	cfg := rasterConfig{scale: DefaultCellScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	min, max := grid.MinMax()
	if cfg.min != nil {
		min = *cfg.min
	}
	if cfg.max != nil {
		max = *cfg.max
	}
	if max <= min {
		// Degenerate range: flat grid or bad override. Widen so the
		// normalization below stays finite instead of producing NaN.
		max = min + 1
	}

	size := len(grid.Values)
	img := image.NewRGBA(image.Rect(0, 0, size*cfg.scale, size*cfg.scale))

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			c := ColorFor(grid.Values[i][j], min, max, scheme)
			block := image.Rect(j*cfg.scale, i*cfg.scale, (j+1)*cfg.scale, (i+1)*cfg.scale)
			draw.Draw(img, block, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}

	return &Heatmap{
		Image:  img,
		Bounds: grid.Bounds,
		Quad:   boundsQuad(grid.Bounds),
	}
}

// boundsQuad builds the closed NW-NE-SE-SW overlay ring in lon/lat order.
func boundsQuad(b Bounds) *geom.Polygon {
	ring := []float64{
		b.West, b.North,
		b.East, b.North,
		b.East, b.South,
		b.West, b.South,
		b.West, b.North,
	}
	return geom.NewPolygonFlat(geom.XY, ring, []int{len(ring)}).SetSRID(4326)
}

// QuadCorners flattens the overlay quad into its four (lon, lat) corners in
// NW, NE, SE, SW order for transport.
func (h *Heatmap) QuadCorners() [4][2]float64 {
	coords := h.Quad.FlatCoords()
	var corners [4][2]float64
	for i := 0; i < 4; i++ {
		corners[i] = [2]float64{coords[i*2], coords[i*2+1]}
	}
	return corners
}

// EncodePNG serializes the heatmap raster for transport or overlay caching.
func (h *Heatmap) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, h.Image); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
