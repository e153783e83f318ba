package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Coordinate is a point on the globe in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// String renders the coordinate as "(lat, lon)" with four decimals.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lon)
}

// DistanceFunc measures the distance between two coordinates in kilometers.
// Implementations must be symmetric and return 0 for identical inputs.
type DistanceFunc func(a, b Coordinate) float64

// Haversine returns the great-circle distance between a and b in kilometers.
//
// The two per-axis terms are computed from signed deltas, so swapping a and b
// only flips signs inside sin(), which is odd, and squares them away.
func Haversine(a, b Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	sLat := math.Sin(dLat / 2)
	sLon := math.Sin(dLon / 2)

	h := sLat*sLat + math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*sLon*sLon
	// rounding can push h just past 1 near antipodes, and 1-h must stay non-negative
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// PathLength sums dist over consecutive pairs of coords.
// A nil dist falls back to Haversine. Fewer than two coordinates yield 0.
func PathLength(coords []Coordinate, dist DistanceFunc) float64 {
	if dist == nil {
		dist = Haversine
	}
	var total float64
	for i := 1; i < len(coords); i++ {
		total += dist(coords[i-1], coords[i])
	}

	return total
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
