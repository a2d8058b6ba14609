package nominatim

// Place найденный адрес
type Place struct {
	ID    string
	Label string
	Lat   float64
	Lon   float64
}

// searchItem элемент ответа /search?format=jsonv2
type searchItem struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}
