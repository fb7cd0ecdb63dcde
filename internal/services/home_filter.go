package services

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidFilterDate = errors.New("filter date must use the YYYY-MM-DD format")

// HomeFilter is the date selection submitted from the home view. Reset takes
// precedence over any date sent alongside it.
type HomeFilter struct {
	Reset   bool
	RawDate string
	Date    *time.Time
}

func ParseHomeFilter(reset bool, rawDate string) (HomeFilter, error) {
	filter := HomeFilter{Reset: reset, RawDate: strings.TrimSpace(rawDate)}
	if filter.Reset || filter.RawDate == "" {
		return filter, nil
	}

	day, err := ParseScheduleDate(filter.RawDate)
	if err != nil {
		return filter, ErrInvalidFilterDate
	}
	filter.Date = &day
	return filter, nil
}

func (filter HomeFilter) Active() bool {
	return !filter.Reset && filter.Date != nil
}
