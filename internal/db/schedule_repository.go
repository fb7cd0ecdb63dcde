package db

import (
	"time"

	"github.com/terraincognita07/rota/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const scheduleListOrder = "schedules.date ASC, schedules.start_time ASC, schedules.id ASC"

type ScheduleRepository struct {
	database *gorm.DB
}

func NewScheduleRepository(database *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{database: database}
}

// ListWithUsers returns every schedule left-joined with its owning user.
func (repo *ScheduleRepository) ListWithUsers() ([]models.Schedule, error) {
	schedules := make([]models.Schedule, 0)
	if err := repo.database.Joins("User").Order(scheduleListOrder).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// ListWithUsersByDayRange returns schedules with dayStart <= date < dayEnd.
func (repo *ScheduleRepository) ListWithUsersByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.Schedule, error) {
	schedules := make([]models.Schedule, 0)
	if err := repo.database.
		Joins("User").
		Where("schedules.date >= ? AND schedules.date < ?", dayStart, dayEnd).
		Order(scheduleListOrder).
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (repo *ScheduleRepository) FindByID(scheduleID uint) (models.Schedule, error) {
	var schedule models.Schedule
	if err := repo.database.Joins("User").First(&schedule, "schedules.id = ?", scheduleID).Error; err != nil {
		return models.Schedule{}, err
	}
	return schedule, nil
}

func (repo *ScheduleRepository) Create(schedule *models.Schedule) error {
	return repo.database.Omit(clause.Associations).Create(schedule).Error
}

// UpdateByID overwrites the four mutable fields and reports how many rows matched.
func (repo *ScheduleRepository) UpdateByID(scheduleID uint, values models.Schedule) (int64, error) {
	result := repo.database.Model(&models.Schedule{}).Where("id = ?", scheduleID).Updates(map[string]any{
		"day_of_week": values.DayOfWeek,
		"date":        values.Date,
		"start_time":  values.StartTime,
		"end_time":    values.EndTime,
	})
	return result.RowsAffected, result.Error
}

func (repo *ScheduleRepository) DeleteByID(scheduleID uint) (int64, error) {
	result := repo.database.Delete(&models.Schedule{}, scheduleID)
	return result.RowsAffected, result.Error
}
