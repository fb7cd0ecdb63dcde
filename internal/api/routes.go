package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowHome)
	app.Post("/", handler.FilterHome)

	app.Get("/newUser", handler.ShowNewUser)
	app.Post("/newUser", handler.CreateUser)
	app.Get("/new-user/:userId", handler.ShowUser)
	app.Post("/delete-user/:userId", handler.DeleteUser)

	app.Get("/new-schedule/:userId", handler.ShowNewSchedule)
	app.Post("/new-schedule/:userId", handler.CreateSchedule)
	app.Get("/edit-schedule/:scheduleId", handler.ShowEditSchedule)
	app.Post("/edit-schedule/:scheduleId", handler.UpdateSchedule)
	app.Post("/delete-schedule/:scheduleId", handler.DeleteSchedule)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
