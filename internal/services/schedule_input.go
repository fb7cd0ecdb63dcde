package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/rota/internal/models"
)

const (
	ScheduleDateLayout  = "2006-01-02"
	ScheduleClockLayout = "15:04"
)

var (
	ErrScheduleFieldsRequired = errors.New("day of week, date, start time and end time are required")
	ErrInvalidDayOfWeek       = errors.New("day of week must be a number from 0 (Sunday) to 6 (Saturday)")
	ErrInvalidScheduleDate    = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidScheduleTime    = errors.New("start and end time must use the HH:MM format")
)

var clockLayouts = []string{"15:04", "15:04:05"}

type ScheduleInput struct {
	DayOfWeek string
	Date      string
	StartTime string
	EndTime   string
}

// ParseScheduleInput turns raw form values into the four mutable schedule
// fields. The date becomes a UTC midnight and both clocks become HH:MM.
// End before start is accepted.
func ParseScheduleInput(input ScheduleInput) (models.Schedule, error) {
	rawDay := strings.TrimSpace(input.DayOfWeek)
	rawDate := strings.TrimSpace(input.Date)
	rawStart := strings.TrimSpace(input.StartTime)
	rawEnd := strings.TrimSpace(input.EndTime)
	if rawDay == "" || rawDate == "" || rawStart == "" || rawEnd == "" {
		return models.Schedule{}, ErrScheduleFieldsRequired
	}

	dayOfWeek, err := strconv.Atoi(rawDay)
	if err != nil || dayOfWeek < models.MinDayOfWeek || dayOfWeek > models.MaxDayOfWeek {
		return models.Schedule{}, ErrInvalidDayOfWeek
	}

	date, err := ParseScheduleDate(rawDate)
	if err != nil {
		return models.Schedule{}, err
	}

	start, ok := parseClock(rawStart)
	if !ok {
		return models.Schedule{}, ErrInvalidScheduleTime
	}
	end, ok := parseClock(rawEnd)
	if !ok {
		return models.Schedule{}, ErrInvalidScheduleTime
	}

	return models.Schedule{
		DayOfWeek: dayOfWeek,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}, nil
}

func ParseScheduleDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(ScheduleDateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidScheduleDate
	}
	return parsed, nil
}

func parseClock(raw string) (string, bool) {
	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format(ScheduleClockLayout), true
		}
	}
	return "", false
}

// NormalizeClock renders a stored TIME value as HH:MM. Postgres returns
// "09:00:00" while SQLite keeps the stored text.
func NormalizeClock(raw string) string {
	value := strings.TrimSpace(raw)
	if clock, ok := parseClock(value); ok {
		return clock
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.Format(ScheduleClockLayout)
	}
	return value
}
