package reserve_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/reservation"
)

// UseCase use case для бронирования слота без предоплаты
type UseCase struct {
	guard  ReservationGuard
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(guard ReservationGuard, logger Logger) *UseCase {
	return &UseCase{
		guard:  guard,
		logger: logger,
	}
}

// Execute выполняет use case бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: pack=%s, start=%s", req.Pack, req.Start.UTC().Format(time.RFC3339))

	// 1. Валидация формы
	pack := strings.TrimSpace(req.Pack)
	contact := req.Contact.Normalize()
	if pack == "" || req.Start.IsZero() {
		uc.logger.Warn("ReserveSlot: validation failed: pack and timeSlot are required")
		return nil, fmt.Errorf("%w: pack and timeSlot are required", ErrInvalidInput)
	}
	if err := contact.Validate(); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Пакет определяет длительность
	packConfig, ok := domain.LookupPack(pack)
	if !ok {
		uc.logger.Warn("ReserveSlot: pack %q is not bookable", pack)
		return nil, fmt.Errorf("%w: %q", ErrPackNotBookable, pack)
	}

	// 3. Проверка и создание события
	result, err := uc.guard.Reserve(ctx, &domain.ReservationRequest{
		Pack:     pack,
		Start:    req.Start,
		Duration: packConfig.Duration(),
		Contact:  contact,
	})
	if err != nil {
		return nil, mapGuardError(err)
	}

	uc.logger.Info("ReserveSlot: reserved event id=%s, reference=%s", result.EventID, result.Reference)

	return &Response{
		EventID:   result.EventID,
		Reference: result.Reference,
		Start:     result.Start,
		End:       result.End,
	}, nil
}

func mapGuardError(err error) error {
	switch {
	case errors.Is(err, reservation.ErrInvalidSlot):
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	case errors.Is(err, reservation.ErrSlotConflict):
		return fmt.Errorf("%w: %v", ErrSlotConflict, err)
	case errors.Is(err, reservation.ErrNotConfigured):
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
