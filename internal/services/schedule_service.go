package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/rota/internal/models"
	"gorm.io/gorm"
)

var ErrScheduleNotFound = errors.New("schedule not found")

type ScheduleRepository interface {
	ListWithUsers() ([]models.Schedule, error)
	ListWithUsersByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.Schedule, error)
	FindByID(scheduleID uint) (models.Schedule, error)
	Create(schedule *models.Schedule) error
	UpdateByID(scheduleID uint, values models.Schedule) (int64, error)
	DeleteByID(scheduleID uint) (int64, error)
}

type ScheduleUserLookup interface {
	FindByID(userID uint) (models.User, error)
}

type ScheduleService struct {
	schedules ScheduleRepository
	users     ScheduleUserLookup
}

func NewScheduleService(schedules ScheduleRepository, users ScheduleUserLookup) *ScheduleService {
	return &ScheduleService{schedules: schedules, users: users}
}

func (service *ScheduleService) ListSchedules() ([]models.Schedule, error) {
	schedules, err := service.schedules.ListWithUsers()
	if err != nil {
		return nil, err
	}
	return normalizeScheduleClocks(schedules), nil
}

// FilterSchedules returns the schedules dated on the filter day, or every
// schedule when the filter is reset or empty.
func (service *ScheduleService) FilterSchedules(filter HomeFilter) ([]models.Schedule, error) {
	if !filter.Active() {
		return service.ListSchedules()
	}

	dayStart := *filter.Date
	schedules, err := service.schedules.ListWithUsersByDayRange(dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return normalizeScheduleClocks(schedules), nil
}

func (service *ScheduleService) FindSchedule(scheduleID uint) (models.Schedule, error) {
	schedule, err := service.schedules.FindByID(scheduleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Schedule{}, ErrScheduleNotFound
	}
	if err != nil {
		return models.Schedule{}, err
	}
	return normalizeScheduleClock(schedule), nil
}

func (service *ScheduleService) CreateSchedule(userID uint, input ScheduleInput) (models.Schedule, error) {
	schedule, err := ParseScheduleInput(input)
	if err != nil {
		return models.Schedule{}, err
	}

	owner, err := service.users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Schedule{}, ErrUserNotFound
	}
	if err != nil {
		return models.Schedule{}, err
	}

	schedule.UserID = owner.ID
	if err := service.schedules.Create(&schedule); err != nil {
		return models.Schedule{}, err
	}
	schedule.User = owner
	return schedule, nil
}

// UpdateSchedule overwrites day of week, date, start and end time. It reports
// false when no schedule has the id.
func (service *ScheduleService) UpdateSchedule(scheduleID uint, input ScheduleInput) (bool, error) {
	values, err := ParseScheduleInput(input)
	if err != nil {
		return false, err
	}

	affected, err := service.schedules.UpdateByID(scheduleID, values)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (service *ScheduleService) DeleteSchedule(scheduleID uint) (bool, error) {
	affected, err := service.schedules.DeleteByID(scheduleID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func normalizeScheduleClocks(schedules []models.Schedule) []models.Schedule {
	for index := range schedules {
		schedules[index] = normalizeScheduleClock(schedules[index])
	}
	return schedules
}

func normalizeScheduleClock(schedule models.Schedule) models.Schedule {
	schedule.StartTime = NormalizeClock(schedule.StartTime)
	schedule.EndTime = NormalizeClock(schedule.EndTime)
	return schedule
}
