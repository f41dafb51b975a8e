package dto

type BoundsResponse struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

type HeatmapRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Scheme    string  `json:"scheme" validate:"required,oneof=vegetation moisture temperature"`
	GridSize  int     `json:"grid_size" validate:"gte=0,lte=256"`
	CellScale int     `json:"cell_scale" validate:"gte=0,lte=64"`
}

// HeatmapResponse carries the rendered raster as base64 PNG plus the
// geographic quad the client drapes it over.
type HeatmapResponse struct {
	ImageBase64 string         `json:"image_base64"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Bounds      BoundsResponse `json:"bounds"`
	Quad        [4][2]float64  `json:"quad"` // lon/lat pairs, NW NE SE SW
}

type GridRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Scheme    string  `json:"scheme" validate:"required,oneof=vegetation moisture temperature"`
	GridSize  int     `json:"grid_size" validate:"gte=0,lte=256"`
}

type GridResponse struct {
	Values [][]float64    `json:"values"`
	Bounds BoundsResponse `json:"bounds"`
	Min    float64        `json:"min"`
	Max    float64        `json:"max"`
	Mean   float64        `json:"mean"`
}
