package reconciliation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/psqlbuilder"
)

const tableName = "reconciliation_entries"

var entryColumns = []string{
	"id",
	"transaction_id",
	"kind",
	"reason",
	"pack",
	"slot_start",
	"details",
	"attempts",
	"resolved_at",
	"created_at",
	"updated_at",
}

// Repository журнал сверки в Postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record добавляет запись или, если запись по transaction_id уже есть, обновляет причину
// и увеличивает счетчик попыток. Разрешенная запись снова становится открытой.
func (r *Repository) Record(ctx context.Context, entry *domain.ReconciliationEntry) error {
	query, args, err := buildRecordQuery(entry)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Record - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListPending возвращает неразрешенные записи, старые первыми
func (r *Repository) ListPending(ctx context.Context, limit uint64) ([]*domain.ReconciliationEntry, error) {
	query, args, err := buildListPendingQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var entries []*domain.ReconciliationEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPending - iterate rows: %v", ErrScanRow, err)
	}

	return entries, nil
}

// MarkResolved закрывает запись после ручной обработки
func (r *Repository) MarkResolved(ctx context.Context, transactionID string, at time.Time) error {
	query, args, err := buildMarkResolvedQuery(transactionID, at)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkResolved - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkResolved - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func buildRecordQuery(entry *domain.ReconciliationEntry) (string, []interface{}, error) {
	if strings.TrimSpace(entry.TransactionID) == "" {
		return "", nil, fmt.Errorf("%w: transaction id is required", ErrInvalidEntry)
	}

	details, err := json.Marshal(entry.Details)
	if err != nil {
		return "", nil, fmt.Errorf("%w: Record - marshal details: %v", ErrBuildQuery, err)
	}

	var slotStart interface{}
	if entry.SlotStart != nil {
		slotStart = entry.SlotStart.UTC()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("transaction_id", "kind", "reason", "pack", "slot_start", "details").
		Values(entry.TransactionID, string(entry.Kind), entry.Reason, entry.Pack, slotStart, string(details)).
		Suffix("ON CONFLICT (transaction_id) DO UPDATE SET " +
			"kind = EXCLUDED.kind, " +
			"reason = EXCLUDED.reason, " +
			"details = EXCLUDED.details, " +
			"attempts = " + tableName + ".attempts + 1, " +
			"resolved_at = NULL, " +
			"updated_at = NOW()").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Record - build upsert query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

func buildListPendingQuery(limit uint64) (string, []interface{}, error) {
	builder := psqlbuilder.Select(entryColumns...).
		From(tableName).
		Where(squirrel.Eq{"resolved_at": nil}).
		OrderBy("created_at ASC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: ListPending - build select query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

func buildMarkResolvedQuery(transactionID string, at time.Time) (string, []interface{}, error) {
	query, args, err := psqlbuilder.Update(tableName).
		Set("resolved_at", at.UTC()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"transaction_id": transactionID}).
		Where(squirrel.Eq{"resolved_at": nil}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: MarkResolved - build update query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.ReconciliationEntry, error) {
	var (
		entry      domain.ReconciliationEntry
		kind       string
		slotStart  sql.NullTime
		details    []byte
		resolvedAt sql.NullTime
	)

	err := row.Scan(
		&entry.ID,
		&entry.TransactionID,
		&kind,
		&entry.Reason,
		&entry.Pack,
		&slotStart,
		&details,
		&entry.Attempts,
		&resolvedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scan entry: %v", ErrScanRow, err)
	}

	entry.Kind = domain.ReconciliationKind(kind)
	if slotStart.Valid {
		entry.SlotStart = &slotStart.Time
	}
	if resolvedAt.Valid {
		entry.ResolvedAt = &resolvedAt.Time
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &entry.Details); err != nil {
			return nil, fmt.Errorf("%w: decode details: %v", ErrScanRow, err)
		}
	}

	return &entry, nil
}
