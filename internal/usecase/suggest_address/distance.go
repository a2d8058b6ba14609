package suggest_address

import "math"

const earthRadiusKm = 6371

// distanceKm расстояние по дуге большого круга (формула гаверсинусов)
func distanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// roundTenth округление до 0.1 км
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
