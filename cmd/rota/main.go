package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/terraincognita07/rota/internal/api"
	"github.com/terraincognita07/rota/internal/cli"
	"github.com/terraincognita07/rota/internal/config"
	"github.com/terraincognita07/rota/internal/db"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	if handled, err := runCLICommand(os.Args[1:], cfg); handled {
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	database, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Printf("database close failed: %v", err)
		}
	}()

	handler, err := api.NewHandler(database)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := newApp(handler, cfg)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Rota listening on http://0.0.0.0:%s (db: %s)", cfg.Port, cfg.Database.Driver)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("server exited: %v", err)
	}
}

func newApp(handler *api.Handler, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Rota",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: "requestid",
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.CookieSecure)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "rota_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}

// runCLICommand dispatches operational subcommands. handled is false when
// args name no subcommand and the server should start.
func runCLICommand(args []string, cfg config.Config) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	switch args[0] {
	case "init-schema":
		return true, cli.RunInitSchemaCommand(cfg.Database, os.Stdout)
	case "reset-password":
		if len(args) != 2 {
			return true, fmt.Errorf("usage: rota reset-password <user-id>")
		}
		return true, cli.RunResetPasswordCommand(cfg.Database, args[1], os.Stdout)
	default:
		return true, fmt.Errorf("unknown command %q", args[0])
	}
}
