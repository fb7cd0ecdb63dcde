package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"github.com/terraincognita07/rota/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const initialConnectDelay = 500 * time.Millisecond

// Open connects to the configured store, applies pool limits and makes sure
// the users and schedules tables exist.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := connectWithBackoff(cfg.ConnectAttempts, initialConnectDelay, time.Sleep, func() (*gorm.DB, error) {
		return openDialect(cfg)
	})
	if err != nil {
		return nil, err
	}

	if err := configurePool(database, cfg); err != nil {
		return nil, err
	}

	if err := EnsureSchema(database, cfg.Driver); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return database, nil
}

// OpenSQLite opens a file-backed SQLite store with its schema in place.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	database, err := openSQLite(dbPath)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(database, config.DriverSQLite); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return database, nil
}

func Ping(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openDialect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(cfg.PostgresDSN())
	case config.DriverSQLite:
		return openSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openPostgres(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.New(postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return database, nil
}

func openSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return database, nil
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	}
}

func configurePool(database *gorm.DB, cfg config.DatabaseConfig) error {
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	return nil
}

// connectWithBackoff calls connect up to attempts times, doubling the wait
// between failures.
func connectWithBackoff(attempts int, delay time.Duration, sleep func(time.Duration), connect func() (*gorm.DB, error)) (*gorm.DB, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		database, err := connect()
		if err == nil {
			return database, nil
		}
		lastErr = err
		if attempt == attempts {
			break
		}
		log.Printf("database connect attempt %d/%d failed: %v (retrying in %s)", attempt, attempts, err, delay)
		sleep(delay)
		delay *= 2
	}
	return nil, errors.Join(fmt.Errorf("database unreachable after %d attempts", attempts), lastErr)
}
