package api

import (
	"errors"
	"html/template"

	"github.com/terraincognita07/rota/internal/db"
	"github.com/terraincognita07/rota/internal/services"
	"github.com/terraincognita07/rota/internal/templates"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	userService     *services.UserService
	scheduleService *services.ScheduleService
	templates       map[string]*template.Template
}

// NewHandler wires repositories and services over the given pool and parses
// the embedded page templates.
func NewHandler(database *gorm.DB) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}

	parsed, err := parsePageTemplates(templates.Files, newTemplateFuncMap(), pageTemplates)
	if err != nil {
		return nil, err
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:              database,
		userService:     services.NewUserService(repositories.Users),
		scheduleService: services.NewScheduleService(repositories.Schedules, repositories.Users),
		templates:       parsed,
	}, nil
}
