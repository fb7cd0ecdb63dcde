package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rota/internal/models"
	"github.com/terraincognita07/rota/internal/services"
)

func (handler *Handler) ShowNewSchedule(c *fiber.Ctx) error {
	user, ok, err := handler.lookupScheduleOwner(c)
	if err != nil {
		return readError(c, "find schedule owner", err)
	}
	if !ok {
		return sendNotFound(c, userNotFoundMessage)
	}

	return handler.render(c, "new_schedule", fiber.Map{
		"Title": "Rota | New schedule",
		"User":  user,
		"Form":  scheduleForm{DayOfWeek: "1"},
	})
}

func (handler *Handler) CreateSchedule(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return sendNotFound(c, userNotFoundMessage)
	}

	form := scheduleForm{}
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid form")
	}

	log.Printf("create schedule: user_id=%d input=%+v", userID, form)
	created, err := handler.scheduleService.CreateSchedule(userID, form.input())
	switch {
	case err == nil:
		log.Printf("create schedule: stored id=%d", created.ID)
		return redirectHome(c)
	case errors.Is(err, services.ErrUserNotFound):
		return sendNotFound(c, userNotFoundMessage)
	case isValidationError(err):
		user, found, lookupErr := handler.lookupScheduleOwner(c)
		if lookupErr != nil {
			return readError(c, "find schedule owner", lookupErr)
		}
		if !found {
			return sendNotFound(c, userNotFoundMessage)
		}
		c.Status(fiber.StatusBadRequest)
		return handler.render(c, "new_schedule", fiber.Map{
			"Title": "Rota | New schedule",
			"User":  user,
			"Form":  form,
			"Error": scheduleValidationMessage(err),
		})
	default:
		return mutationError(c, "create schedule", err)
	}
}

func (handler *Handler) ShowEditSchedule(c *fiber.Ctx) error {
	scheduleID, ok := parseIDParam(c, "scheduleId")
	if !ok {
		return sendNotFound(c, scheduleNotFoundMessage)
	}

	schedule, err := handler.scheduleService.FindSchedule(scheduleID)
	if errors.Is(err, services.ErrScheduleNotFound) {
		return sendNotFound(c, scheduleNotFoundMessage)
	}
	if err != nil {
		return readError(c, "find schedule", err)
	}

	return handler.renderEditSchedule(c, schedule, scheduleFormFromModel(schedule), "")
}

func (handler *Handler) UpdateSchedule(c *fiber.Ctx) error {
	scheduleID, ok := parseIDParam(c, "scheduleId")
	if !ok {
		return redirectHome(c)
	}

	form := scheduleForm{}
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid form")
	}

	log.Printf("update schedule: id=%d input=%+v", scheduleID, form)
	updated, err := handler.scheduleService.UpdateSchedule(scheduleID, form.input())
	if isValidationError(err) {
		schedule, findErr := handler.scheduleService.FindSchedule(scheduleID)
		if errors.Is(findErr, services.ErrScheduleNotFound) {
			return redirectHome(c)
		}
		if findErr != nil {
			return readError(c, "find schedule", findErr)
		}
		c.Status(fiber.StatusBadRequest)
		return handler.renderEditSchedule(c, schedule, form, scheduleValidationMessage(err))
	}
	if err != nil {
		return mutationError(c, "update schedule", err)
	}
	log.Printf("update schedule: id=%d updated=%t", scheduleID, updated)
	return redirectHome(c)
}

func (handler *Handler) DeleteSchedule(c *fiber.Ctx) error {
	scheduleID, ok := parseIDParam(c, "scheduleId")
	if !ok {
		return redirectHome(c)
	}
	deleted, err := handler.scheduleService.DeleteSchedule(scheduleID)
	if err != nil {
		return mutationError(c, "delete schedule", err)
	}
	log.Printf("delete schedule: id=%d deleted=%t", scheduleID, deleted)
	return redirectHome(c)
}

func (handler *Handler) renderEditSchedule(c *fiber.Ctx, schedule models.Schedule, form scheduleForm, message string) error {
	return handler.render(c, "edit_schedule", fiber.Map{
		"Title":    "Rota | Edit schedule",
		"Schedule": schedule,
		"Form":     form,
		"Error":    message,
	})
}

// lookupScheduleOwner resolves the :userId parameter. ok is false when the
// parameter is malformed or no user has that id.
func (handler *Handler) lookupScheduleOwner(c *fiber.Ctx) (models.User, bool, error) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return models.User{}, false, nil
	}
	user, err := handler.userService.FindUser(userID)
	if errors.Is(err, services.ErrUserNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	user.Password = ""
	return user, true, nil
}

func scheduleValidationMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidDayOfWeek):
		return "Day of week must be between 0 (Sunday) and 6 (Saturday)."
	case errors.Is(err, services.ErrInvalidScheduleDate):
		return "Date must use the YYYY-MM-DD format."
	case errors.Is(err, services.ErrInvalidScheduleTime):
		return "Start and end time must use the HH:MM format."
	default:
		return "All fields are required."
	}
}
