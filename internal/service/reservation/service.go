package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/googlecalendar"
)

// Пути резервирования для метрик
const (
	PathDirect  = "direct"
	PathPayment = "payment"
)

// Исходы резервирования для метрик
const (
	OutcomeCommitted     = "committed"
	OutcomeExisting      = "existing"
	OutcomeConflict      = "conflict"
	OutcomeInvalid       = "invalid"
	OutcomeUpstream      = "upstream_error"
	OutcomeNotConfigured = "not_configured"
)

// existingLookupMargin окно поиска уже созданного события вокруг слота
const existingLookupMargin = 24 * time.Hour

// Guard повторно проверяет занятость слота непосредственно перед созданием события.
//
// Между проверкой и созданием остается окно гонки: календарь не дает транзакционного API,
// и второй клиент может создать событие в этом окне. Пересечения выявляет cmd/reconcile.
type Guard struct {
	calendar     Calendar
	calendarID   string
	policy       domain.SchedulePolicy
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewGuard создает новый экземпляр сервиса резервирования
func NewGuard(
	calendar Calendar,
	calendarID string,
	policy domain.SchedulePolicy,
	metrics Metrics,
	logger Logger,
) *Guard {
	return &Guard{
		calendar:     calendar,
		calendarID:   calendarID,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Reserve резервирует слот без предоплаты: проверка свободы и создание события
func (g *Guard) Reserve(ctx context.Context, req *domain.ReservationRequest) (*domain.Reservation, error) {
	g.logger.Info("Reserve: pack=%s, start=%s, duration=%s", req.Pack, req.Start.UTC().Format(time.RFC3339), req.Duration)

	if err := g.validateFuture(req.Start, req.Duration); err != nil {
		g.logger.Warn("Reserve: validation failed: %v", err)
		g.metrics.ObserveReservation(PathDirect, OutcomeInvalid)
		return nil, err
	}

	if err := g.ensureFree(ctx, req.Start, req.End()); err != nil {
		g.observeFailure(PathDirect, err)
		return nil, err
	}

	reference := uuid.NewString()
	eventID, err := g.calendar.CreateEvent(ctx, g.calendarID, buildDirectEvent(req, reference, g.policy.TimeZone))
	if err != nil {
		err = mapCalendarError("create event", err)
		g.logger.Error("Reserve: failed to create event for start=%s: %v", req.Start.UTC().Format(time.RFC3339), err)
		g.observeFailure(PathDirect, err)
		return nil, err
	}

	g.logger.Info("Reserve: committed event id=%s, reference=%s", eventID, reference)
	g.metrics.ObserveReservation(PathDirect, OutcomeCommitted)

	return &domain.Reservation{
		EventID:   eventID,
		Reference: reference,
		Start:     req.Start,
		End:       req.End(),
	}, nil
}

// ReserveForTransaction идемпотентное резервирование по идентификатору транзакции оплаты.
// Повторный вызов с тем же transactionID возвращает уже созданное событие (Existing=true).
// Слот в прошлом не отклоняется: уведомление об оплате может прийти с опозданием.
func (g *Guard) ReserveForTransaction(ctx context.Context, transactionID string, req *domain.ReservationRequest) (*domain.Reservation, error) {
	g.logger.Info("ReserveForTransaction: transaction=%s, pack=%s, start=%s", transactionID, req.Pack, req.Start.UTC().Format(time.RFC3339))

	if err := validateTransaction(transactionID, req.Start, req.Duration); err != nil {
		g.logger.Warn("ReserveForTransaction: validation failed: %v", err)
		g.metrics.ObserveReservation(PathPayment, OutcomeInvalid)
		return nil, err
	}

	end := req.End()

	existingID, err := g.calendar.FindEventByTag(ctx, g.calendarID, domain.TagStripeSessionID, transactionID,
		req.Start.Add(-existingLookupMargin), end.Add(existingLookupMargin))
	switch {
	case err == nil:
		g.logger.Info("ReserveForTransaction: event id=%s already exists for transaction=%s", existingID, transactionID)
		g.metrics.ObserveReservation(PathPayment, OutcomeExisting)
		return &domain.Reservation{
			EventID:   existingID,
			Reference: transactionID,
			Start:     req.Start,
			End:       end,
			Existing:  true,
		}, nil
	case errors.Is(err, googlecalendar.ErrEventNotFound):
		// события еще нет, продолжаем
	default:
		// без ответа на поиск создание может породить дубль
		err = mapCalendarError("find existing event", err)
		g.logger.Error("ReserveForTransaction: lookup failed for transaction=%s: %v", transactionID, err)
		g.observeFailure(PathPayment, err)
		return nil, err
	}

	if err := g.ensureFree(ctx, req.Start, end); err != nil {
		if errors.Is(err, ErrSlotConflict) {
			g.logger.Error("ReserveForTransaction: paid slot is taken, transaction=%s, start=%s", transactionID, req.Start.UTC().Format(time.RFC3339))
		}
		g.observeFailure(PathPayment, err)
		return nil, err
	}

	eventID, err := g.calendar.CreateEvent(ctx, g.calendarID, buildPaidEvent(req, transactionID, g.policy.TimeZone))
	if err != nil {
		err = mapCalendarError("create event", err)
		g.logger.Error("ReserveForTransaction: failed to create event for transaction=%s: %v", transactionID, err)
		g.observeFailure(PathPayment, err)
		return nil, err
	}

	g.logger.Info("ReserveForTransaction: committed event id=%s for transaction=%s", eventID, transactionID)
	g.metrics.ObserveReservation(PathPayment, OutcomeCommitted)

	return &domain.Reservation{
		EventID:   eventID,
		Reference: transactionID,
		Start:     req.Start,
		End:       end,
	}, nil
}

// EnsureFree проверяет, что будущий слот [start, start+duration) свободен, ничего не создавая.
// Используется перед оплатой, чтобы не брать аванс за уже занятый слот.
func (g *Guard) EnsureFree(ctx context.Context, start time.Time, duration time.Duration) error {
	if err := g.validateFuture(start, duration); err != nil {
		return err
	}
	return g.ensureFree(ctx, start, start.Add(duration))
}

// ensureFree свежее чтение календаря и тот же тест пересечения с буфером, что и при расчете доступности.
// Окно чтения расширено на буфер в обе стороны: событие, закончившееся до start, блокирует слот,
// если его буфер заходит на start.
func (g *Guard) ensureFree(ctx context.Context, start, end time.Time) error {
	buffer := g.policy.TransitBuffer()

	busy, err := g.calendar.GetBusyRanges(ctx, g.calendarID, start.Add(-buffer), end.Add(buffer))
	if err != nil {
		err = mapCalendarError("fetch busy ranges", err)
		g.logger.Error("EnsureFree: failed to fetch busy ranges: %v", err)
		return err
	}

	if domain.OverlapsAny(start, end, domain.WithTransitBuffer(busy, buffer)) {
		g.logger.Warn("EnsureFree: slot %s - %s overlaps a busy range", start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
		return ErrSlotConflict
	}

	return nil
}

func (g *Guard) validateFuture(start time.Time, duration time.Duration) error {
	if err := validateInterval(start, duration); err != nil {
		return err
	}
	if !start.After(g.timeProvider.Now()) {
		return fmt.Errorf("%w: start %s is not in the future", ErrInvalidSlot, start.UTC().Format(time.RFC3339))
	}
	return nil
}

func (g *Guard) observeFailure(path string, err error) {
	switch {
	case errors.Is(err, ErrSlotConflict):
		g.metrics.ObserveReservation(path, OutcomeConflict)
	case errors.Is(err, ErrNotConfigured):
		g.metrics.ObserveReservation(path, OutcomeNotConfigured)
	case errors.Is(err, ErrInvalidSlot):
		g.metrics.ObserveReservation(path, OutcomeInvalid)
	default:
		g.metrics.ObserveReservation(path, OutcomeUpstream)
	}
}

func validateInterval(start time.Time, duration time.Duration) error {
	if start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidSlot)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidSlot)
	}
	return nil
}

func validateTransaction(transactionID string, start time.Time, duration time.Duration) error {
	if strings.TrimSpace(transactionID) == "" {
		return fmt.Errorf("%w: transaction id is required", ErrInvalidSlot)
	}
	return validateInterval(start, duration)
}

// mapCalendarError сводит ошибки календаря к ErrNotConfigured или ErrUpstream
func mapCalendarError(action string, err error) error {
	if errors.Is(err, googlecalendar.ErrNotConfigured) {
		return fmt.Errorf("%w: %s: %v", ErrNotConfigured, action, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrUpstream, action, err)
}
