package geo

// FirstWithin scans items in slice order and returns the first one whose
// anchor lies within thresholdMeters of coord. The scan order is the caller's
// insertion order, which keeps repeated resolutions stable. The zero value
// and false are returned when nothing is near.
func FirstWithin[T Anchored](coord Coordinate, items []T, thresholdMeters float64) (T, bool) {
	for _, item := range items {
		if IsWithin(coord, item.Anchor(), thresholdMeters) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Nearby returns every item whose anchor lies within thresholdMeters of
// coord, preserving the input order. An empty result is not an error.
func Nearby[T Anchored](coord Coordinate, items []T, thresholdMeters float64) []T {
	result := make([]T, 0)
	for _, item := range items {
		if IsWithin(coord, item.Anchor(), thresholdMeters) {
			result = append(result, item)
		}
	}
	return result
}

// BucketKey quantizes a coordinate to a grid cell roughly the size of the
// proximity threshold. Two fixes of the same spot map to the same key, which
// lets callers serialize folder creation per location (e.g. a Redis SETNX
// lock) instead of per collection.
func BucketKey(coord Coordinate, thresholdMeters float64) (int64, int64) {
	// 1 degree of latitude ~= 111,320 m; longitude shrinks with cos(lat),
	// but a flat bucket is fine here: the bucket only has to be coarse
	// enough that racing writers for one spot collide on the same key.
	cell := thresholdMeters / 111320.0
	latBucket := int64(coord.Latitude / cell)
	lonBucket := int64(coord.Longitude / cell)
	return latBucket, lonBucket
}
