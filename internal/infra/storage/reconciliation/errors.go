package reconciliation

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись журнала не найдена
	ErrEntryNotFound = errors.New("reconciliation.repository: entry not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reconciliation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reconciliation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reconciliation.repository: failed to scan row")

	// ErrInvalidEntry возвращается для записи без идентификатора транзакции
	ErrInvalidEntry = errors.New("reconciliation.repository: invalid entry")
)
