package reconcile_calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	reconciliationRepo "github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/reconciliation"
)

// pendingLimit сколько открытых записей журнала выводить в отчет
const pendingLimit = 100

// UseCase проход сверки: поиск пересекающихся событий в горизонте бронирования.
// Проверка перед созданием события не атомарна, поэтому редкие двойные бронирования
// выявляются здесь и попадают в журнал для ручной обработки.
type UseCase struct {
	calendar     Calendar
	calendarID   string
	journal      Journal
	policy       domain.SchedulePolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar Calendar, calendarID string, journal Journal, policy domain.SchedulePolicy, logger Logger) *UseCase {
	return &UseCase{
		calendar:     calendar,
		calendarID:   calendarID,
		journal:      journal,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute сканирует [now - 1 день, now + горизонт] и записывает найденные пересечения
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	from := now.Add(-24 * time.Hour)
	to := now.AddDate(0, 0, uc.policy.LookaheadDays+1)

	uc.logger.Info("ReconcileCalendar: scanning %s - %s", from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))

	// 1. Все события горизонта
	entries, err := uc.calendar.ListEvents(ctx, uc.calendarID, from, to)
	if err != nil {
		uc.logger.Error("ReconcileCalendar: failed to list events: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// 2. Пересечения с учетом буфера
	overlaps := findOverlaps(entries, uc.policy.TransitBuffer())

	// 3. Журнал: повторный проход увеличивает attempts у той же пары
	for _, o := range overlaps {
		uc.logger.Warn("ReconcileCalendar: overlap %s (%s) and %s (%s)",
			o.First.ID, o.First.Summary, o.Second.ID, o.Second.Summary)

		start := o.Second.Start
		entry := &domain.ReconciliationEntry{
			TransactionID: o.Key(),
			Kind:          domain.ReconcileOverlap,
			Reason:        fmt.Sprintf("%q overlaps %q", o.First.Summary, o.Second.Summary),
			SlotStart:     &start,
			Details: map[string]string{
				"firstEventId":  o.First.ID,
				"firstStart":    o.First.Start.UTC().Format(time.RFC3339),
				"firstEnd":      o.First.End.UTC().Format(time.RFC3339),
				"secondEventId": o.Second.ID,
				"secondStart":   o.Second.Start.UTC().Format(time.RFC3339),
				"secondEnd":     o.Second.End.UTC().Format(time.RFC3339),
			},
		}
		if err := uc.journal.Record(ctx, entry); err != nil {
			uc.logger.Error("ReconcileCalendar: failed to journal %s: %v", o.Key(), err)
		}
	}

	// 4. Открытые записи для отчета оператору
	pending, err := uc.journal.ListPending(ctx, pendingLimit)
	if err != nil {
		uc.logger.Error("ReconcileCalendar: failed to list pending entries: %v", err)
	}
	for _, p := range pending {
		uc.logger.Info("ReconcileCalendar: pending transaction=%s, kind=%s, attempts=%d, reason=%s",
			p.TransactionID, p.Kind, p.Attempts, p.Reason)
	}

	uc.logger.Info("ReconcileCalendar: scanned %d events, %d overlaps, %d pending entries",
		len(entries), len(overlaps), len(pending))

	return &Response{
		EventsScanned:  len(entries),
		Overlaps:       overlaps,
		PendingEntries: len(pending),
	}, nil
}

// Resolve закрывает запись журнала после ручной обработки
func (uc *UseCase) Resolve(ctx context.Context, transactionID string) error {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return fmt.Errorf("%w: empty transaction id", ErrEntryNotFound)
	}

	err := uc.journal.MarkResolved(ctx, transactionID, uc.timeProvider.Now())
	if err != nil {
		if errors.Is(err, reconciliationRepo.ErrEntryNotFound) {
			uc.logger.Warn("ReconcileCalendar: no pending entry for transaction=%s", transactionID)
			return fmt.Errorf("%w: %s", ErrEntryNotFound, transactionID)
		}
		uc.logger.Error("ReconcileCalendar: failed to resolve transaction=%s: %v", transactionID, err)
		return fmt.Errorf("%w: %v", ErrJournal, err)
	}

	uc.logger.Info("ReconcileCalendar: resolved transaction=%s", transactionID)
	return nil
}
