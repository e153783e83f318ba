// Package geo provides the great-circle distance used as the heuristic by the
// informed search strategies and as the length measure of a finished route.
//
// What
//
//   - Coordinate: a (latitude, longitude) pair in decimal degrees.
//   - Haversine: great-circle distance in kilometers on a sphere of radius
//     EarthRadiusKm (6371.0).
//   - DistanceFunc: the pluggable heuristic signature consumed by search.
//   - PathLength: sum of Haversine over consecutive coordinates.
//
// Guarantees
//
//   - Haversine(a, b) == Haversine(b, a) bit for bit.
//   - Haversine(a, a) == 0.
//   - Pure functions: no state, no failure modes (inputs are assumed to be
//     valid numeric coordinates).
//
// Complexity
//
//   - Haversine: O(1).
//   - PathLength: O(n) for n coordinates.
//
// Usage
//
//	a := geo.Coordinate{Lat: 0, Lon: 0}
//	b := geo.Coordinate{Lat: 1, Lon: 0}
//	km := geo.Haversine(a, b) // ≈ 111.19
package geo
