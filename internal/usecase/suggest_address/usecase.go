package suggest_address

import (
	"context"
	"strings"
	"unicode/utf8"
)

// UseCase use case подсказок адреса в зоне выезда
type UseCase struct {
	geocoder Geocoder
	area     ServiceArea
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(geocoder Geocoder, area ServiceArea, logger Logger) *UseCase {
	return &UseCase{
		geocoder: geocoder,
		area:     area,
		logger:   logger,
	}
}

// Execute возвращает подсказки. Сбой геокодера дает пустой список: форма остается рабочей.
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	query := strings.TrimSpace(req.Query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return &Response{Suggestions: []Suggestion{}}
	}

	places, err := uc.geocoder.Search(ctx, query)
	if err != nil {
		uc.logger.Warn("SuggestAddress: geocoder failed for query length=%d: %v", len(query), err)
		return &Response{Suggestions: []Suggestion{}}
	}

	suggestions := make([]Suggestion, 0, len(places))
	for _, p := range places {
		dist := roundTenth(distanceKm(uc.area.CenterLat, uc.area.CenterLon, p.Lat, p.Lon))
		suggestions = append(suggestions, Suggestion{
			ID:         p.ID,
			Label:      p.Label,
			Lat:        p.Lat,
			Lon:        p.Lon,
			DistanceKm: dist,
			InZone:     dist <= uc.area.MaxRadiusKm,
		})
	}

	return &Response{Suggestions: suggestions}
}
