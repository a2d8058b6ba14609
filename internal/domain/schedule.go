package domain

import (
	"fmt"
	"time"
)

// SchedulePolicy описывает рабочее окно и правила выдачи слотов.
// Все часы указываются в локальном времени бизнеса (TimeZone).
type SchedulePolicy struct {
	TimeZone             string
	OpenHour             int
	CloseHour            int
	SlotStepMinutes      int
	MinNoticeMinutes     int
	TransitBufferMinutes int
	LookaheadDays        int
	MaxDaysReturned      int
}

// DefaultSchedulePolicy возвращает политику со значениями по умолчанию
func DefaultSchedulePolicy() SchedulePolicy {
	return SchedulePolicy{
		TimeZone:             DefaultTimeZone,
		OpenHour:             DefaultOpenHour,
		CloseHour:            DefaultCloseHour,
		SlotStepMinutes:      DefaultSlotStepMinutes,
		MinNoticeMinutes:     DefaultMinNoticeMinutes,
		TransitBufferMinutes: DefaultTransitBufferMinutes,
		LookaheadDays:        DefaultLookaheadDays,
		MaxDaysReturned:      DefaultMaxDaysReturned,
	}
}

// Validate проверяет согласованность политики
func (p SchedulePolicy) Validate() error {
	if p.TimeZone == "" {
		return fmt.Errorf("time zone is required")
	}
	if p.OpenHour < 0 || p.OpenHour > 23 {
		return fmt.Errorf("open hour %d out of range", p.OpenHour)
	}
	if p.CloseHour < 1 || p.CloseHour > 24 {
		return fmt.Errorf("close hour %d out of range", p.CloseHour)
	}
	if p.CloseHour <= p.OpenHour {
		return fmt.Errorf("close hour %d must be after open hour %d", p.CloseHour, p.OpenHour)
	}
	if p.SlotStepMinutes < MinSlotStepMinutes || p.SlotStepMinutes > MaxSlotStepMinutes {
		return fmt.Errorf("slot step %d out of range [%d, %d]", p.SlotStepMinutes, MinSlotStepMinutes, MaxSlotStepMinutes)
	}
	if p.MinNoticeMinutes < 0 || p.MinNoticeMinutes > MaxMinNoticeMinutes {
		return fmt.Errorf("min notice %d out of range", p.MinNoticeMinutes)
	}
	if p.TransitBufferMinutes < 0 || p.TransitBufferMinutes > MaxTransitBufferMinutes {
		return fmt.Errorf("transit buffer %d out of range", p.TransitBufferMinutes)
	}
	if p.LookaheadDays < 0 || p.LookaheadDays > MaxLookaheadDays {
		return fmt.Errorf("lookahead days %d out of range", p.LookaheadDays)
	}
	if p.MaxDaysReturned < 1 {
		return fmt.Errorf("max days returned must be positive")
	}
	return nil
}

// SlotStep шаг сетки слотов
func (p SchedulePolicy) SlotStep() time.Duration {
	return time.Duration(p.SlotStepMinutes) * time.Minute
}

// MinNotice минимальное время между текущим моментом и началом слота
func (p SchedulePolicy) MinNotice() time.Duration {
	return time.Duration(p.MinNoticeMinutes) * time.Minute
}

// TransitBuffer время на дорогу после каждой работы
func (p SchedulePolicy) TransitBuffer() time.Duration {
	return time.Duration(p.TransitBufferMinutes) * time.Minute
}
