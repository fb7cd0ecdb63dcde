package models

import "time"

const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// Schedule is a single work entry for a user on one calendar date.
// StartTime and EndTime hold "HH:MM" clock values.
type Schedule struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"column:user_id;not null"`
	User      User      `gorm:"foreignKey:UserID"`
	DayOfWeek int       `gorm:"column:day_of_week"`
	Date      time.Time `gorm:"type:date"`
	StartTime string    `gorm:"column:start_time;type:time"`
	EndTime   string    `gorm:"column:end_time;type:time"`
}

func (Schedule) TableName() string {
	return "schedules"
}
