package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-DetailingBooking/pkg/tzclock"
)

// UseCase use case для получения доступных слотов на ближайшие дни
type UseCase struct {
	calendar     Calendar
	calendarID   string
	policy       domain.SchedulePolicy
	clock        *tzclock.Clock
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendar Calendar,
	calendarID string,
	policy domain.SchedulePolicy,
	clock *tzclock.Clock,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:     calendar,
		calendarID:   calendarID,
		policy:       policy,
		clock:        clock,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности.
// Ошибка календаря возвращается как ошибка, а не как пустой список дней.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: pack=%s", req.Pack)

	// 1. Валидация входных данных
	pack, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем занятые интервалы на весь горизонт
	from, to := busyWindow(now, uc.clock, uc.policy)
	busy, err := uc.calendar.GetBusyRanges(ctx, uc.calendarID, from, to)
	if err != nil {
		if errors.Is(err, googlecalendar.ErrNotConfigured) {
			uc.logger.Error("GetAvailability: calendar is not configured: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		uc.logger.Error("GetAvailability: failed to get busy ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to get busy ranges: %v", ErrUpstream, err)
	}

	// 4. Строим слоты
	days := buildAvailability(now, uc.clock, uc.policy, pack.Duration(), busy)

	response := &Response{
		TimeZone: uc.policy.TimeZone,
		Days:     days,
	}
	uc.metrics.ObserveSlotsOffered(response.SlotsCount())

	uc.logger.Info("GetAvailability: pack=%s, busy=%d, days=%d, slots=%d",
		req.Pack, len(busy), len(days), response.SlotsCount())

	return response, nil
}
