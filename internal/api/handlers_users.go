package api

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rota/internal/models"
	"github.com/terraincognita07/rota/internal/services"
)

func (handler *Handler) ShowNewUser(c *fiber.Ctx) error {
	return handler.render(c, "new_user", fiber.Map{
		"Title":      "Rota | New user",
		"User":       models.User{},
		"BackToHome": false,
	})
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	form := userForm{}
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid form")
	}

	log.Printf("create user: first_name=%q last_name=%q email=%q", form.FirstName, form.LastName, form.Email)
	user, err := handler.userService.CreateUser(form.input())
	if isValidationError(err) {
		c.Status(fiber.StatusBadRequest)
		return handler.render(c, "new_user", fiber.Map{
			"Title":      "Rota | New user",
			"User":       form.echo(),
			"BackToHome": false,
			"Error":      userValidationMessage(err),
		})
	}
	if err != nil {
		return mutationError(c, "create user", err)
	}

	log.Printf("create user: stored id=%d", user.ID)
	return c.Redirect("/new-schedule/"+strconv.FormatUint(uint64(user.ID), 10), fiber.StatusFound)
}

func (handler *Handler) ShowUser(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return sendNotFound(c, userNotFoundMessage)
	}

	user, err := handler.userService.FindUser(userID)
	if errors.Is(err, services.ErrUserNotFound) {
		return sendNotFound(c, userNotFoundMessage)
	}
	if err != nil {
		return readError(c, "find user", err)
	}

	user.Password = ""
	return handler.render(c, "new_user", fiber.Map{
		"Title":      "Rota | " + user.FullName(),
		"User":       user,
		"BackToHome": true,
	})
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return redirectHome(c)
	}
	if err := handler.userService.DeleteUser(userID); err != nil {
		return mutationError(c, "delete user", err)
	}
	log.Printf("delete user: removed id=%d with schedules", userID)
	return redirectHome(c)
}

func userValidationMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrUserFieldTooLong):
		return "First and last name must be at most 50 characters, email at most 100 and password at most 72 bytes."
	default:
		return "All fields are required."
	}
}
