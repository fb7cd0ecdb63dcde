package config

import (
	"testing"
	"time"
)

func clearDatabaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "COOKIE_SECURE", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
		"DB_PASSWORD", "DB_SSLMODE", "DB_PATH", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONNECT_ATTEMPTS",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearDatabaseEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("expected defaults to load, got error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.CookieSecure {
		t.Fatal("expected cookie secure flag to default to false")
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Fatalf("expected default driver %q, got %q", DriverPostgres, cfg.Database.Driver)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 || cfg.Database.Name != "coffee" {
		t.Fatalf("unexpected default database target: %+v", cfg.Database)
	}
	if cfg.Database.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("expected 30m connection lifetime, got %s", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Database.ConnectAttempts != 5 {
		t.Fatalf("expected 5 connect attempts, got %d", cfg.Database.ConnectAttempts)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_PATH", "/tmp/rota-test.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("DB_CONN_MAX_LIFETIME", "90s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("expected overrides to load, got error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected cookie secure flag to be enabled")
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.Path != "/tmp/rota-test.db" {
		t.Fatalf("expected sqlite path override, got %q", cfg.Database.Path)
	}
	if cfg.Database.MaxOpenConns != 3 {
		t.Fatalf("expected 3 max open connections, got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxLifetime != 90*time.Second {
		t.Fatalf("expected 90s lifetime, got %s", cfg.Database.ConnMaxLifetime)
	}
}

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "")
	port, err := resolvePort()
	if err != nil {
		t.Fatalf("expected default port, got error: %v", err)
	}
	if port != "8000" {
		t.Fatalf("expected default port 8000, got %q", port)
	}

	t.Setenv("PORT", "0")
	if _, err := resolvePort(); err == nil {
		t.Fatal("expected invalid port 0 to fail")
	}

	t.Setenv("PORT", "70000")
	if _, err := resolvePort(); err == nil {
		t.Fatal("expected invalid high port to fail")
	}

	t.Setenv("PORT", "not-a-number")
	if _, err := resolvePort(); err == nil {
		t.Fatal("expected invalid non-numeric port to fail")
	}
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"DB_DRIVER":            "mysql",
		"DB_PORT":              "99999",
		"DB_MAX_IDLE_CONNS":    "many",
		"DB_CONN_MAX_LIFETIME": "forever",
		"DB_CONNECT_ATTEMPTS":  "0",
		"COOKIE_SECURE":        "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearDatabaseEnv(t)
			t.Setenv(key, value)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected %s=%q to fail", key, value)
			}
		})
	}
}

func TestPostgresDSNQuotesValues(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		Name:     "rota",
		User:     "app",
		Password: "it's secret",
		SSLMode:  "disable",
	}

	dsn := cfg.PostgresDSN()
	expected := `host=db port=5433 dbname=rota user=app password='it\'s secret' sslmode=disable timezone=UTC`
	if dsn != expected {
		t.Fatalf("expected dsn %q, got %q", expected, dsn)
	}
}
