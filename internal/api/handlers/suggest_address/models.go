package suggest_address

import suggestAddress "github.com/m04kA/SMC-DetailingBooking/internal/usecase/suggest_address"

// SuggestionsResponse HTTP response model
type SuggestionsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// SuggestionResponse подсказка адреса
type SuggestionResponse struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKm float64 `json:"distanceKm"`
	InZone     bool    `json:"inZone"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestAddress.Response) *SuggestionsResponse {
	suggestions := make([]SuggestionResponse, 0, len(resp.Suggestions))
	for _, s := range resp.Suggestions {
		suggestions = append(suggestions, SuggestionResponse{
			ID:         s.ID,
			Label:      s.Label,
			Lat:        s.Lat,
			Lon:        s.Lon,
			DistanceKm: s.DistanceKm,
			InZone:     s.InZone,
		})
	}
	return &SuggestionsResponse{Suggestions: suggestions}
}
