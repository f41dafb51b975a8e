package satellite

import "image/color"

// Scheme selects the piecewise gradient a layer is rendered with.
type Scheme string

const (
	SchemeVegetation  Scheme = "vegetation"
	SchemeMoisture    Scheme = "moisture"
	SchemeTemperature Scheme = "temperature"
)

// ParamsFor maps a scheme to its canonical distribution preset.
func ParamsFor(scheme Scheme) Params {
	switch scheme {
	case SchemeMoisture:
		return SoilMoisture
	case SchemeTemperature:
		return Temperature
	default:
		return Vegetation
	}
}

// ColorFor maps a scalar onto the scheme's gradient. The value is normalized
// via (value-min)/(max-min); callers must guarantee max > min, otherwise the
// result is undefined (NaN normalization).
func ColorFor(value, min, max float64, scheme Scheme) color.RGBA {
	normalized := (value - min) / (max - min)

	switch scheme {
	case SchemeMoisture:
		// White to blue: dry to moist.
		return color.RGBA{
			R: clampByte(255 - normalized*200),
			G: clampByte(255 - normalized*100),
			B: 255,
			A: 255,
		}
	case SchemeTemperature:
		// Blue to red, inflecting at the midpoint.
		if normalized < 0.5 {
			return color.RGBA{
				R: clampByte(100 + normalized*310),
				G: clampByte(100 + normalized*200),
				B: 255,
				A: 255,
			}
		}
		return color.RGBA{
			R: 255,
			G: clampByte(255 - (normalized-0.5)*400),
			B: clampByte(255 - (normalized-0.5)*510),
			A: 255,
		}
	default:
		// Vegetation: red to yellow to green, poor to excellent.
		if normalized < 0.3 {
			return color.RGBA{
				R: clampByte(220 - normalized*200),
				G: clampByte(50 + normalized*150),
				B: 50,
				A: 255,
			}
		}
		if normalized < 0.6 {
			return color.RGBA{
				R: clampByte(160 - (normalized-0.3)*300),
				G: 200,
				B: 50,
				A: 255,
			}
		}
		return color.RGBA{
			R: 50,
			G: clampByte(200 - (normalized-0.6)*100),
			B: clampByte(50 + (normalized-0.6)*150),
			A: 255,
		}
	}
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
