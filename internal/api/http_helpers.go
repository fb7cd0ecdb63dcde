package api

import (
	"errors"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rota/internal/services"
)

const (
	userNotFoundMessage     = "User not found"
	scheduleNotFoundMessage = "Schedule not found"
	internalErrorMessage    = "Internal Server Error"
)

var validationErrors = []error{
	services.ErrUserFieldsRequired,
	services.ErrUserFieldTooLong,
	services.ErrScheduleFieldsRequired,
	services.ErrInvalidDayOfWeek,
	services.ErrInvalidScheduleDate,
	services.ErrInvalidScheduleTime,
	services.ErrInvalidFilterDate,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func redirectHome(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusFound)
}

func sendNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).SendString(message)
}

// readError answers a failed lookup without exposing store details.
func readError(c *fiber.Ctx, action string, err error) error {
	log.Printf("%s: %v", action, err)
	return c.Status(fiber.StatusInternalServerError).SendString(internalErrorMessage)
}

// mutationError answers a failed write with the underlying message.
func mutationError(c *fiber.Ctx, action string, err error) error {
	log.Printf("%s: %v", action, err)
	return c.Status(fiber.StatusInternalServerError).SendString(internalErrorMessage + ": " + err.Error())
}

// parseIDParam reads a positive integer route parameter. Anything else is
// reported as not ok and handled like an unknown id.
func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 || value > math.MaxUint32 {
		return 0, false
	}
	return uint(value), true
}

// formHasField reports whether the submitted body carries the field at all,
// even with an empty value.
func formHasField(c *fiber.Ctx, name string) bool {
	if c.Request().PostArgs().Has(name) {
		return true
	}
	form, err := c.MultipartForm()
	if err != nil {
		return false
	}
	_, ok := form.Value[name]
	return ok
}

func csrfToken(c *fiber.Ctx) string {
	token, _ := c.Locals("csrf").(string)
	return token
}
