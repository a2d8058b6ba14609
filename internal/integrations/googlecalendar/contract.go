package googlecalendar

import "time"

// Metrics метрики внешних вызовов
type Metrics interface {
	ObserveCalendarCall(operation string, duration time.Duration, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
