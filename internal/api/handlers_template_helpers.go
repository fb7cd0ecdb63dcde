package api

import (
	"html/template"
	"strconv"
	"time"

	"github.com/terraincognita07/rota/internal/models"
)

// displayDateLayout keeps the weekday-prefixed form schedules were
// historically shown in, e.g. "Mon Jan 08 2024".
const displayDateLayout = "Mon Jan 02 2006"

type weekdayOption struct {
	Value int
	Label string
}

func (option weekdayOption) ValueString() string {
	return strconv.Itoa(option.Value)
}

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"scheduleDate": formatScheduleDate,
		"weekdayName":  weekdayName,
		"weekdays":     weekdayOptions,
	}
}

func formatScheduleDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(displayDateLayout)
}

func weekdayName(day int) string {
	if day < models.MinDayOfWeek || day > models.MaxDayOfWeek {
		return "-"
	}
	return time.Weekday(day).String()
}

func weekdayOptions() []weekdayOption {
	options := make([]weekdayOption, 0, models.MaxDayOfWeek-models.MinDayOfWeek+1)
	for day := models.MinDayOfWeek; day <= models.MaxDayOfWeek; day++ {
		options = append(options, weekdayOption{Value: day, Label: time.Weekday(day).String()})
	}
	return options
}
