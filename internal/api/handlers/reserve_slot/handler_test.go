package reserve_slot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	reserveSlot "github.com/m04kA/SMC-DetailingBooking/internal/usecase/reserve_slot"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *reserveSlot.Request) (*reserveSlot.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*reserveSlot.Response)
	return resp, args.Error(1)
}

const validBody = `{
	"pack": "Pack Confort",
	"vehicleModel": "Golf 7",
	"phone": "0470 00 00 00",
	"address": "Rue du Pont",
	"houseNumber": "12",
	"date": "2026-10-20",
	"timeSlot": "2026-10-20T08:00:00.000Z",
	"timeSlotLabel": "10:00 - 12:30"
}`

func doRequest(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *reserveSlot.Request) bool {
		return req.Pack == "Pack Confort" && req.Start.Equal(start) && req.Contact.HouseNumber == "12"
	})).Return(&reserveSlot.Response{
		EventID:   "evt-1",
		Reference: "ref-1",
		Start:     start,
		End:       start.Add(150 * time.Minute),
	}, nil).Once()

	w := doRequest(uc, validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	var body ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "ref-1", body.Reference)
	assert.Equal(t, "2026-10-20T10:30:00Z", body.End)
}

func TestHandle_Conflict(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("%w: taken", reserveSlot.ErrSlotConflict)).Once()

	w := doRequest(uc, validBody)

	require.Equal(t, http.StatusConflict, w.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Conflict)
	assert.Equal(t, msgSlotConflict, body.Error)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "incomplete form", err: reserveSlot.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "pack not bookable", err: reserveSlot.ErrPackNotBookable, status: http.StatusBadRequest},
		{name: "past slot", err: reserveSlot.ErrInvalidSlot, status: http.StatusBadRequest},
		{name: "not configured", err: reserveSlot.ErrNotConfigured, status: http.StatusServiceUnavailable},
		{name: "calendar down", err: reserveSlot.ErrUpstream, status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := doRequest(uc, validBody)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"pack":`},
		{name: "bad time slot", body: `{"pack":"Pack Confort","timeSlot":"demain"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := doRequest(uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}
