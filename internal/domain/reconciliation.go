package domain

import "time"

// ReconciliationKind причина записи в журнал сверки
type ReconciliationKind string

const (
	// ReconcileInvalidMetadata оплата получена, но данных бронирования недостаточно
	ReconcileInvalidMetadata ReconciliationKind = "invalid_metadata"
	// ReconcilePaidConflict слот занят к моменту подтверждения оплаты
	ReconcilePaidConflict ReconciliationKind = "paid_conflict"
	// ReconcileUpstream календарь недоступен при подтверждении оплаты
	ReconcileUpstream ReconciliationKind = "upstream_error"
	// ReconcileOverlap два события календаря пересекаются с учетом буфера
	ReconcileOverlap ReconciliationKind = "calendar_overlap"
)

// ReconciliationEntry запись журнала для ручной сверки.
// TransactionID уникален: повторная запись увеличивает Attempts.
type ReconciliationEntry struct {
	ID            int64
	TransactionID string
	Kind          ReconciliationKind
	Reason        string
	Pack          string
	SlotStart     *time.Time
	Details       map[string]string
	Attempts      int
	ResolvedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
