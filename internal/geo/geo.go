// Package geo - расстояния между географическими точками.
package geo

import "math"

// earthRadiusM - радиус Земли в метрах.
const earthRadiusM = 6371000.0

// Distance возвращает расстояние по дуге большого круга между двумя
// точками (широта/долгота в градусах) в метрах, формула гаверсинуса.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}
