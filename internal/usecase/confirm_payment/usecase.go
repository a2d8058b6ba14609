package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/stripecheckout"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/reservation"
)

// UseCase use case подтверждения оплаты: создание события в календаре по завершенной сессии
type UseCase struct {
	guard   ReservationGuard
	journal Journal
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(guard ReservationGuard, journal Journal, logger Logger) *UseCase {
	return &UseCase{
		guard:   guard,
		journal: journal,
		logger:  logger,
	}
}

// Execute обрабатывает проверенное событие оплаты.
// Ошибка возвращается только тогда, когда повторная доставка может помочь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	event := req.Event

	// 1. Интересуют только оплаченные checkout-сессии
	if event.Type != stripecheckout.EventCheckoutCompleted || event.Checkout == nil {
		uc.logger.Info("ConfirmPayment: event id=%s, type=%s ignored", event.ID, event.Type)
		return &Response{Outcome: OutcomeIgnored}, nil
	}

	checkout := event.Checkout
	if !checkout.Paid {
		uc.logger.Info("ConfirmPayment: session id=%s is not paid, ignored", checkout.SessionID)
		return &Response{Outcome: OutcomeIgnored, SessionID: checkout.SessionID}, nil
	}

	uc.logger.Info("ConfirmPayment: session id=%s, event id=%s", checkout.SessionID, event.ID)

	// 2. Данные бронирования из metadata
	reservationReq, err := parseMetadata(checkout)
	if err != nil {
		uc.logger.Error("ConfirmPayment: paid session id=%s has invalid metadata: %v", checkout.SessionID, err)
		uc.record(ctx, &domain.ReconciliationEntry{
			TransactionID: checkout.SessionID,
			Kind:          domain.ReconcileInvalidMetadata,
			Reason:        err.Error(),
			Pack:          checkout.Metadata[stripecheckout.MetaPack],
			Details:       checkout.Metadata,
		})
		return &Response{Outcome: OutcomeJournaled, SessionID: checkout.SessionID}, nil
	}

	// 3. Идемпотентное создание события
	result, err := uc.guard.ReserveForTransaction(ctx, checkout.SessionID, reservationReq)
	if err != nil {
		return uc.handleReserveError(ctx, checkout, reservationReq, err)
	}

	outcome := OutcomeReserved
	if result.Existing {
		outcome = OutcomeExisting
	}
	uc.logger.Info("ConfirmPayment: session id=%s -> event id=%s (%s)", checkout.SessionID, result.EventID, outcome)

	return &Response{
		Outcome:   outcome,
		EventID:   result.EventID,
		SessionID: checkout.SessionID,
	}, nil
}

func (uc *UseCase) handleReserveError(
	ctx context.Context,
	checkout *stripecheckout.CheckoutCompleted,
	req *domain.ReservationRequest,
	err error,
) (*Response, error) {
	entry := &domain.ReconciliationEntry{
		TransactionID: checkout.SessionID,
		Reason:        err.Error(),
		Pack:          req.Pack,
		SlotStart:     &req.Start,
		Details:       checkout.Metadata,
	}

	switch {
	case errors.Is(err, reservation.ErrSlotConflict), errors.Is(err, reservation.ErrInvalidSlot):
		// клиент уже заплатил, повтор доставки слот не освободит
		uc.logger.Error("ConfirmPayment: paid session id=%s cannot be placed: %v", checkout.SessionID, err)
		entry.Kind = domain.ReconcilePaidConflict
		uc.record(ctx, entry)
		return &Response{Outcome: OutcomeJournaled, SessionID: checkout.SessionID}, nil
	case errors.Is(err, reservation.ErrNotConfigured):
		uc.logger.Error("ConfirmPayment: calendar is not configured, session id=%s: %v", checkout.SessionID, err)
		entry.Kind = domain.ReconcileUpstream
		uc.record(ctx, entry)
		return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	default:
		uc.logger.Error("ConfirmPayment: calendar failed for session id=%s: %v", checkout.SessionID, err)
		entry.Kind = domain.ReconcileUpstream
		uc.record(ctx, entry)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}

// record ошибка журнала не меняет ответ провайдеру оплаты
func (uc *UseCase) record(ctx context.Context, entry *domain.ReconciliationEntry) {
	if err := uc.journal.Record(ctx, entry); err != nil {
		uc.logger.Error("ConfirmPayment: failed to journal session id=%s: %v", entry.TransactionID, err)
	}
}
