package googlecalendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Calendar общий контракт рабочего клиента и заглушки
type Calendar interface {
	GetBusyRanges(ctx context.Context, calendarID string, from, to time.Time) ([]domain.BusyRange, error)
	FindEventByTag(ctx context.Context, calendarID, key, value string, from, to time.Time) (string, error)
	CreateEvent(ctx context.Context, calendarID string, event *domain.CalendarEvent) (string, error)
	ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]domain.CalendarEntry, error)
}

var (
	_ Calendar = (*Client)(nil)
	_ Calendar = (*DisabledClient)(nil)
)

// Connect создает клиент по учетным данным из src.
// Без учетных данных возвращает заглушку: сервис стартует, а вызовы календаря отвечают ErrNotConfigured.
func Connect(ctx context.Context, src CredentialsSource, timeout time.Duration, metrics Metrics, log Logger) (Calendar, string) {
	creds, err := LoadCredentials(src)
	if err != nil {
		log.Warn("Google Calendar disabled: %v", err)
		return NewDisabledClient(err.Error()), src.CalendarID
	}

	client, err := NewClient(ctx, timeout, metrics, log, creds.ClientOptions(ctx)...)
	if err != nil {
		log.Error("Google Calendar disabled: %v", err)
		return NewDisabledClient(err.Error()), creds.CalendarID
	}

	log.Info("Google Calendar client initialized (service account=%s, timeout=%s)", creds.Email, timeout)
	return client, creds.CalendarID
}
