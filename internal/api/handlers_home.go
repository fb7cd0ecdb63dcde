package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rota/internal/models"
	"github.com/terraincognita07/rota/internal/services"
)

func (handler *Handler) ShowHome(c *fiber.Ctx) error {
	return handler.renderHome(c, services.HomeFilter{}, "")
}

func (handler *Handler) FilterHome(c *fiber.Ctx) error {
	form := homeFilterForm{}
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid form")
	}

	reset := formHasField(c, "reset")
	log.Printf("filter schedules: filter_date=%q reset=%t", form.FilterDate, reset)
	filter, err := services.ParseHomeFilter(reset, form.FilterDate)
	if errors.Is(err, services.ErrInvalidFilterDate) {
		c.Status(fiber.StatusBadRequest)
		return handler.renderHome(c, filter, "Please choose a valid date.")
	}
	if err != nil {
		return readError(c, "filter schedules", err)
	}
	return handler.renderHome(c, filter, "")
}

func (handler *Handler) renderHome(c *fiber.Ctx, filter services.HomeFilter, filterError string) error {
	users, err := handler.userService.ListUsers()
	if err != nil {
		return readError(c, "list users", err)
	}
	schedules, err := handler.scheduleService.ListSchedules()
	if err != nil {
		return readError(c, "list schedules", err)
	}

	filtered := schedules
	if filter.Active() {
		filtered, err = handler.scheduleService.FilterSchedules(filter)
		if err != nil {
			return readError(c, "filter schedules", err)
		}
	}

	filterDate := ""
	if !filter.Reset {
		filterDate = filter.RawDate
	}

	return handler.render(c, "home", fiber.Map{
		"Title":              "Rota",
		"Users":              users,
		"Schedules":          schedules,
		"FilteredSchedules":  nonNilSchedules(filtered),
		"FilterDate":         filterDate,
		"ResetButtonClicked": filter.Reset,
		"Filtered":           filter.Active(),
		"FilterError":        filterError,
	})
}

func nonNilSchedules(schedules []models.Schedule) []models.Schedule {
	if schedules == nil {
		return []models.Schedule{}
	}
	return schedules
}
