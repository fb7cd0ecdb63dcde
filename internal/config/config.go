package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port         string
	CookieSecure bool
	Database     DatabaseConfig
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectAttempts int
}

// Load reads configuration from the process environment. A .env file in the
// working directory is loaded first when present; real environment variables
// take precedence over it.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}

	cookieSecure, err := parseBoolEnv("COOKIE_SECURE", false)
	if err != nil {
		return Config{}, err
	}

	database, err := loadDatabaseConfig()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:         port,
		CookieSecure: cookieSecure,
		Database:     database,
	}, nil
}

func loadDatabaseConfig() (DatabaseConfig, error) {
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	if driver != DriverPostgres && driver != DriverSQLite {
		return DatabaseConfig{}, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	dbPort, err := parseIntEnv("DB_PORT", 5432)
	if err != nil {
		return DatabaseConfig{}, err
	}
	if dbPort < 1 || dbPort > 65535 {
		return DatabaseConfig{}, fmt.Errorf("DB_PORT must be between 1 and 65535, got %d", dbPort)
	}

	maxOpen, err := parseIntEnv("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return DatabaseConfig{}, err
	}
	maxIdle, err := parseIntEnv("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return DatabaseConfig{}, err
	}
	attempts, err := parseIntEnv("DB_CONNECT_ATTEMPTS", 5)
	if err != nil {
		return DatabaseConfig{}, err
	}
	if attempts < 1 {
		return DatabaseConfig{}, errors.New("DB_CONNECT_ATTEMPTS must be at least 1")
	}

	lifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "30m"))
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("parse DB_CONN_MAX_LIFETIME: %w", err)
	}

	return DatabaseConfig{
		Driver:          driver,
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            dbPort,
		Name:            getEnv("DB_NAME", "coffee"),
		User:            getEnv("DB_USER", "coffee"),
		Password:        getEnv("DB_PASSWORD", "coffee"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		Path:            getEnv("DB_PATH", filepath.Join("data", "rota.db")),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: lifetime,
		ConnectAttempts: attempts,
	}, nil
}

// PostgresDSN renders the key=value connection string understood by lib/pq.
// The session runs in UTC so DATE columns compare against UTC midnights.
func (cfg DatabaseConfig) PostgresDSN() string {
	parts := []string{
		"host=" + quoteDSNValue(cfg.Host),
		"port=" + strconv.Itoa(cfg.Port),
		"dbname=" + quoteDSNValue(cfg.Name),
		"user=" + quoteDSNValue(cfg.User),
		"password=" + quoteDSNValue(cfg.Password),
		"sslmode=" + quoteDSNValue(cfg.SSLMode),
		"timezone=UTC",
	}
	return strings.Join(parts, " ")
}

func quoteDSNValue(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)
	return "'" + escaped + "'"
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8000")
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}
	return strconv.Itoa(port), nil
}

func parseIntEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return value, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
