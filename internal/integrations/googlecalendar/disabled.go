package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// DisabledClient заглушка для запуска без учетных данных Google: каждый вызов возвращает ErrNotConfigured
type DisabledClient struct {
	reason string
}

// NewDisabledClient создает заглушку; reason попадает в текст ошибки
func NewDisabledClient(reason string) *DisabledClient {
	return &DisabledClient{reason: reason}
}

func (c *DisabledClient) GetBusyRanges(context.Context, string, time.Time, time.Time) ([]domain.BusyRange, error) {
	return nil, c.err()
}

func (c *DisabledClient) FindEventByTag(context.Context, string, string, string, time.Time, time.Time) (string, error) {
	return "", c.err()
}

func (c *DisabledClient) CreateEvent(context.Context, string, *domain.CalendarEvent) (string, error) {
	return "", c.err()
}

func (c *DisabledClient) ListEvents(context.Context, string, time.Time, time.Time) ([]domain.CalendarEntry, error) {
	return nil, c.err()
}

func (c *DisabledClient) err() error {
	if c.reason == "" {
		return ErrNotConfigured
	}
	return fmt.Errorf("%w: %s", ErrNotConfigured, c.reason)
}
