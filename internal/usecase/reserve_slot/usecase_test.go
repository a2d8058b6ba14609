package reserve_slot

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/reservation"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
)

type mockGuard struct {
	mock.Mock
}

func (m *mockGuard) Reserve(ctx context.Context, req *domain.ReservationRequest) (*domain.Reservation, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*domain.Reservation)
	return res, args.Error(1)
}

var slotStart = time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		Pack:  domain.PackPremium,
		Start: slotStart,
		Contact: domain.ContactDetails{
			VehicleModel: " Tesla Model 3 ",
			Phone:        "0470 00 00 00",
			Address:      "Rue du Pont",
			HouseNumber:  "12",
		},
	}
}

func TestExecute_Success(t *testing.T) {
	guard := &mockGuard{}
	guard.On("Reserve", mock.Anything, mock.MatchedBy(func(req *domain.ReservationRequest) bool {
		return req.Pack == domain.PackPremium &&
			req.Duration == 240*time.Minute &&
			req.Start.Equal(slotStart) &&
			req.Contact.VehicleModel == "Tesla Model 3"
	})).Return(&domain.Reservation{
		EventID:   "evt-1",
		Reference: "ref-1",
		Start:     slotStart,
		End:       slotStart.Add(240 * time.Minute),
	}, nil).Once()

	resp, err := NewUseCase(guard, logger.NewNop()).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "evt-1", resp.EventID)
	assert.Equal(t, "ref-1", resp.Reference)
	guard.AssertExpectations(t)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *Request)
		expected error
	}{
		{name: "missing pack", mutate: func(r *Request) { r.Pack = " " }, expected: ErrInvalidInput},
		{name: "missing slot", mutate: func(r *Request) { r.Start = time.Time{} }, expected: ErrInvalidInput},
		{name: "missing phone", mutate: func(r *Request) { r.Contact.Phone = "" }, expected: ErrInvalidInput},
		{name: "unknown pack", mutate: func(r *Request) { r.Pack = "Pack Céramique" }, expected: ErrPackNotBookable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := &mockGuard{}
			req := validRequest()
			tt.mutate(req)

			_, err := NewUseCase(guard, logger.NewNop()).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.expected)
			guard.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_GuardErrors(t *testing.T) {
	tests := []struct {
		name     string
		guardErr error
		expected error
	}{
		{name: "conflict", guardErr: reservation.ErrSlotConflict, expected: ErrSlotConflict},
		{name: "past slot", guardErr: fmt.Errorf("%w: past", reservation.ErrInvalidSlot), expected: ErrInvalidSlot},
		{name: "upstream", guardErr: fmt.Errorf("%w: timeout", reservation.ErrUpstream), expected: ErrUpstream},
		{name: "not configured", guardErr: fmt.Errorf("%w: no calendar", reservation.ErrNotConfigured), expected: ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := &mockGuard{}
			guard.On("Reserve", mock.Anything, mock.Anything).Return(nil, tt.guardErr).Once()

			_, err := NewUseCase(guard, logger.NewNop()).Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
