package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/terraincognita07/rota/internal/config"
	"github.com/terraincognita07/rota/internal/db"
	"github.com/terraincognita07/rota/internal/services"
	"gorm.io/gorm"
)

// RunInitSchemaCommand connects with the configured driver and applies the
// embedded schema. Running it against an initialized store changes nothing.
func RunInitSchemaCommand(cfg config.DatabaseConfig, out io.Writer) error {
	database, err := db.Open(cfg)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	fmt.Fprintf(out, "Schema is up to date (%s)\n", cfg.Driver)
	return nil
}

func RunResetPasswordCommand(cfg config.DatabaseConfig, rawUserID string, out io.Writer) error {
	userID, err := parseUserID(rawUserID)
	if err != nil {
		return err
	}

	database, err := db.Open(cfg)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	users := services.NewUserService(db.NewUserRepository(database))
	temporaryPassword, err := users.ResetPassword(userID)
	if errors.Is(err, services.ErrUserNotFound) {
		return fmt.Errorf("user %d not found", userID)
	}
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	return nil
}

func parseUserID(raw string) (uint, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("user id is required")
	}
	value, err := strconv.ParseUint(trimmed, 10, 32)
	if err != nil || value == 0 {
		return 0, fmt.Errorf("invalid user id %q", raw)
	}
	return uint(value), nil
}

func closeDatabase(database *gorm.DB) {
	if err := db.Close(database); err != nil {
		log.Printf("database close failed: %v", err)
	}
}
