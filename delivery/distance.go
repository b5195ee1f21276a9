// Package delivery computes delivery distances and resolves them to
// catalog-priced fee tiers.
package delivery

import "math"

const earthRadiusMiles = 3959

// Distance returns the great-circle distance in miles between two
// coordinates, haversine formula, rounded to one decimal place.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusMiles*c*10) / 10
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
