package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used for great-circle math.
const EarthRadiusMeters = 6371000.0

// ProximityThresholdMeters is the default radius for two coordinates to be
// considered the same logical place.
const ProximityThresholdMeters = 50.0

// Distance returns the haversine great-circle distance between a and b in
// meters. Only latitude/longitude participate; altitude is ignored.
func Distance(a, b Coordinate) float64 {
	phi1 := a.Latitude * math.Pi / 180
	phi2 := b.Latitude * math.Pi / 180
	dPhi := (b.Latitude - a.Latitude) * math.Pi / 180
	dLambda := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// IsWithin reports whether a and b are at most thresholdMeters apart.
// The boundary is inclusive.
func IsWithin(a, b Coordinate, thresholdMeters float64) bool {
	return Distance(a, b) <= thresholdMeters
}
