package api

import (
	"strconv"

	"github.com/terraincognita07/rota/internal/models"
	"github.com/terraincognita07/rota/internal/services"
)

type userForm struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Email     string `form:"email"`
	Password  string `form:"password"`
}

func (form userForm) input() services.UserInput {
	return services.UserInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	}
}

// echo refills the form after a validation error, without the password.
func (form userForm) echo() models.User {
	return models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
	}
}

type scheduleForm struct {
	DayOfWeek string `form:"dayOfWeek"`
	Date      string `form:"date"`
	StartTime string `form:"startTime"`
	EndTime   string `form:"endTime"`
}

func (form scheduleForm) input() services.ScheduleInput {
	return services.ScheduleInput{
		DayOfWeek: form.DayOfWeek,
		Date:      form.Date,
		StartTime: form.StartTime,
		EndTime:   form.EndTime,
	}
}

func scheduleFormFromModel(schedule models.Schedule) scheduleForm {
	return scheduleForm{
		DayOfWeek: strconv.Itoa(schedule.DayOfWeek),
		Date:      schedule.Date.Format(services.ScheduleDateLayout),
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
	}
}

type homeFilterForm struct {
	FilterDate string `form:"filterDate"`
}
