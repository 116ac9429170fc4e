package geo

import (
	"math"

	"github.com/mhollis/serene/internal/constants"
	"github.com/mhollis/serene/internal/models"
)

// DistanceKm returns the great-circle distance between two points in
// kilometers, using the haversine formula with an Earth radius of 6371 km.
func DistanceKm(a, b models.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return constants.EarthRadiusKm * c
}
