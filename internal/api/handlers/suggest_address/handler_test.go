package suggest_address

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	suggestAddress "github.com/m04kA/SMC-DetailingBooking/internal/usecase/suggest_address"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *suggestAddress.Request) *suggestAddress.Response {
	return m.Called(ctx, req).Get(0).(*suggestAddress.Response)
}

func TestHandle(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &suggestAddress.Request{Query: "rue du pont"}).Return(&suggestAddress.Response{
		Suggestions: []suggestAddress.Suggestion{
			{ID: "101", Label: "Rue du Pont, Huy", Lat: 50.519, Lon: 5.241, DistanceKm: 0.1, InZone: true},
		},
	}).Once()

	r := httptest.NewRequest(http.MethodGet, "/api/v1/address-suggestions?q=rue+du+pont", nil)
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"suggestions":[{"id":"101","label":"Rue du Pont, Huy","lat":50.519,"lon":5.241,"distanceKm":0.1,"inZone":true}]}`, w.Body.String())
}

func TestHandle_EmptyIsArray(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&suggestAddress.Response{}).Once()

	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/address-suggestions?q=ru", nil))

	assert.JSONEq(t, `{"suggestions":[]}`, w.Body.String())
}
