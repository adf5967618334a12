package utils

import (
	"math"

	"github.com/ecotravel-admin/internal/domain"
)

const earthRadiusKm = 6371.0

// maxRadiusKm - половина длины экватора, больший радиус покрывает весь шар
const maxRadiusKm = 20037.5

// HaversineKm вычисляет расстояние между двумя точками в километрах
func HaversineKm(a, b domain.Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0

	lat1Rad := a.Lat * math.Pi / 180.0
	lat2Rad := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(p domain.Point) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// ValidateRadius проверяет радиус поиска локаций
func ValidateRadius(radiusKm float64) bool {
	return radiusKm > 0 && radiusKm <= maxRadiusKm
}
