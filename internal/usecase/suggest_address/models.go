package suggest_address

// minQueryLength короче этого запрос к геокодеру не отправляется
const minQueryLength = 3

// ServiceArea центр и радиус зоны выезда
type ServiceArea struct {
	CenterLat   float64
	CenterLon   float64
	MaxRadiusKm float64
}

// Request модель запроса подсказок
type Request struct {
	Query string
}

// Suggestion подсказка адреса с расстоянием до центра зоны
type Suggestion struct {
	ID         string
	Label      string
	Lat        float64
	Lon        float64
	DistanceKm float64
	InZone     bool
}

// Response модель ответа
type Response struct {
	Suggestions []Suggestion
}
