package create_checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/stripecheckout"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/reservation"
)

// UseCase use case для создания сессии оплаты аванса
type UseCase struct {
	slots    SlotChecker
	checkout CheckoutProvider
	clock    Clock
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slots SlotChecker, checkout CheckoutProvider, clock Clock, logger Logger) *UseCase {
	return &UseCase{
		slots:    slots,
		checkout: checkout,
		clock:    clock,
		logger:   logger,
	}
}

// Execute проверяет слот и создает сессию оплаты. Событие в календаре создается только после оплаты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateCheckout: pack=%s, start=%s", req.Pack, req.Start.UTC().Format(time.RFC3339))

	// 1. Валидация формы
	pack := strings.TrimSpace(req.Pack)
	contact := req.Contact.Normalize()
	if pack == "" || req.Start.IsZero() {
		uc.logger.Warn("CreateCheckout: validation failed: pack and timeSlot are required")
		return nil, fmt.Errorf("%w: pack and timeSlot are required", ErrInvalidInput)
	}
	if err := contact.Validate(); err != nil {
		uc.logger.Warn("CreateCheckout: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	packConfig, ok := domain.LookupPack(pack)
	if !ok {
		uc.logger.Warn("CreateCheckout: pack %q is not bookable", pack)
		return nil, fmt.Errorf("%w: %q", ErrPackNotBookable, pack)
	}

	// 2. Слот должен быть свободен до оплаты
	if err := uc.slots.EnsureFree(ctx, req.Start, packConfig.Duration()); err != nil {
		return nil, mapSlotError(err)
	}

	// 3. Сессия оплаты с данными бронирования в metadata
	end := req.Start.Add(packConfig.Duration())
	deposit := &stripecheckout.DepositSession{
		Pack:            pack,
		VehicleModel:    contact.VehicleModel,
		Phone:           contact.Phone,
		Address:         contact.Address,
		HouseNumber:     contact.HouseNumber,
		Date:            uc.clock.DateKey(req.Start),
		TimeSlot:        req.Start.UTC().Format(time.RFC3339),
		TimeSlotLabel:   uc.clock.RangeLabel(req.Start, end),
		Notes:           contact.Notes,
		DurationMinutes: packConfig.DurationMinutes,
		DepositCents:    packConfig.DepositCents(),
	}

	session, err := uc.checkout.CreateDepositSession(ctx, deposit)
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to create session: %v", err)
		if errors.Is(err, stripecheckout.ErrNotConfigured) {
			return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	uc.logger.Info("CreateCheckout: session id=%s created, deposit=%d", session.ID, deposit.DepositCents)

	return &Response{
		CheckoutURL:  session.URL,
		SessionID:    session.ID,
		DepositCents: deposit.DepositCents,
	}, nil
}

func mapSlotError(err error) error {
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
