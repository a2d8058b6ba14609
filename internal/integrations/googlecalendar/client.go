package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// Операции для метрик и логов
const (
	opFreeBusy    = "freebusy"
	opFindEvent   = "find_event"
	opCreateEvent = "create_event"
	opListEvents  = "list_events"
)

// Client клиент Google Calendar API
type Client struct {
	service *calendar.Service
	timeout time.Duration
	metrics Metrics
	log     Logger
}

// NewClient создает новый экземпляр клиента Google Calendar.
// Авторизация и адрес API передаются через opts (см. Credentials.ClientOptions).
func NewClient(ctx context.Context, timeout time.Duration, metrics Metrics, log Logger, opts ...option.ClientOption) (*Client, error) {
	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrNotConfigured, err)
	}

	return &Client{
		service: service,
		timeout: timeout,
		metrics: metrics,
		log:     log,
	}, nil
}

// GetBusyRanges возвращает занятые интервалы календаря в [from, to).
// Порядок и непересекаемость интервалов не гарантируются.
func (c *Client) GetBusyRanges(ctx context.Context, calendarID string, from, to time.Time) (ranges []domain.BusyRange, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	defer c.observe(opFreeBusy, time.Now(), &err)

	resp, err := c.service.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: formatInstant(from),
		TimeMax: formatInstant(to),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, classify(ctx, err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("%w: calendar %q missing from freebusy response", ErrInvalidResponse, calendarID)
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("%w: freebusy error for calendar %q: %s", ErrInvalidResponse, calendarID, cal.Errors[0].Reason)
	}

	ranges = make([]domain.BusyRange, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed busy start %q: %v", ErrInvalidResponse, period.Start, err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed busy end %q: %v", ErrInvalidResponse, period.End, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: busy range ends before it starts: %s - %s", ErrInvalidResponse, period.Start, period.End)
		}
		ranges = append(ranges, domain.BusyRange{Start: start, End: end})
	}

	return ranges, nil
}

// FindEventByTag ищет событие с private extended property key=value в [from, to).
// Возвращает ErrEventNotFound, если такого события нет.
func (c *Client) FindEventByTag(ctx context.Context, calendarID, key, value string, from, to time.Time) (eventID string, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	defer c.observe(opFindEvent, time.Now(), &err)

	events, err := c.service.Events.List(calendarID).
		PrivateExtendedProperty(key + "=" + value).
		TimeMin(formatInstant(from)).
		TimeMax(formatInstant(to)).
		SingleEvents(true).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", classify(ctx, err)
	}

	for _, item := range events.Items {
		if item.Id != "" {
			return item.Id, nil
		}
	}

	return "", ErrEventNotFound
}

// CreateEvent создает событие и возвращает его идентификатор
func (c *Client) CreateEvent(ctx context.Context, calendarID string, event *domain.CalendarEvent) (eventID string, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	defer c.observe(opCreateEvent, time.Now(), &err)

	created, err := c.service.Events.Insert(calendarID, toGoogleEvent(event)).Context(ctx).Do()
	if err != nil {
		return "", classify(ctx, err)
	}
	if created.Id == "" {
		return "", fmt.Errorf("%w: created event has no id", ErrInvalidResponse)
	}

	c.log.Info("GoogleCalendar: created event id=%s start=%s", created.Id, formatInstant(event.Start))
	return created.Id, nil
}

// ListEvents возвращает события с конкретным временем начала в [from, to), по возрастанию начала.
// События на весь день пропускаются.
func (c *Client) ListEvents(ctx context.Context, calendarID string, from, to time.Time) (entries []domain.CalendarEntry, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	defer c.observe(opListEvents, time.Now(), &err)

	call := c.service.Events.List(calendarID).
		TimeMin(formatInstant(from)).
		TimeMax(formatInstant(to)).
		SingleEvents(true).
		OrderBy("startTime")

	err = call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Start == nil || item.End == nil || item.Start.DateTime == "" || item.End.DateTime == "" {
				continue
			}
			start, err := time.Parse(time.RFC3339, item.Start.DateTime)
			if err != nil {
				return fmt.Errorf("%w: malformed event start %q: %v", ErrInvalidResponse, item.Start.DateTime, err)
			}
			end, err := time.Parse(time.RFC3339, item.End.DateTime)
			if err != nil {
				return fmt.Errorf("%w: malformed event end %q: %v", ErrInvalidResponse, item.End.DateTime, err)
			}
			entries = append(entries, domain.CalendarEntry{
				ID:      item.Id,
				Summary: item.Summary,
				Start:   start,
				End:     end,
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidResponse) {
			return nil, err
		}
		return nil, classify(ctx, err)
	}

	return entries, nil
}

func (c *Client) observe(operation string, started time.Time, err *error) {
	c.metrics.ObserveCalendarCall(operation, time.Since(started), *err)
	if *err != nil {
		c.log.Error("GoogleCalendar: %s failed: %v", operation, *err)
	}
}

// classify сводит ошибки транспорта и API к ошибкам пакета
func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code >= http.StatusInternalServerError || apiErr.Code == http.StatusTooManyRequests {
			return fmt.Errorf("%w: status %d: %s", ErrUnavailable, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, apiErr.Code, apiErr.Message)
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func toGoogleEvent(event *domain.CalendarEvent) *calendar.Event {
	googleEvent := &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Start: &calendar.EventDateTime{
			DateTime: formatInstant(event.Start),
			TimeZone: event.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: formatInstant(event.End),
			TimeZone: event.TimeZone,
		},
	}

	if len(event.Tags) > 0 {
		googleEvent.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: event.Tags,
		}
	}

	return googleEvent
}

func formatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
