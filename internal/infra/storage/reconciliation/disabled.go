package reconciliation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// LogJournal журнал без базы данных: записи только попадают в лог
type LogJournal struct {
	logger Logger
}

// NewLogJournal создает журнал для запуска с [database] enabled = false
func NewLogJournal(logger Logger) *LogJournal {
	return &LogJournal{logger: logger}
}

// Record пишет запись в лог на уровне ERROR
func (j *LogJournal) Record(_ context.Context, entry *domain.ReconciliationEntry) error {
	slot := "-"
	if entry.SlotStart != nil {
		slot = entry.SlotStart.UTC().Format(time.RFC3339)
	}
	j.logger.Error("Reconciliation: transaction=%s, kind=%s, pack=%s, slot=%s, reason=%s, details=%v",
		entry.TransactionID, entry.Kind, entry.Pack, slot, entry.Reason, entry.Details)
	return nil
}

// ListPending без базы данных открытых записей нет
func (j *LogJournal) ListPending(context.Context, uint64) ([]*domain.ReconciliationEntry, error) {
	return nil, nil
}

// MarkResolved без базы данных запись не может быть найдена
func (j *LogJournal) MarkResolved(context.Context, string, time.Time) error {
	return ErrEntryNotFound
}
