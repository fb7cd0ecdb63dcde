package db

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/rota/internal/config"
	"gorm.io/gorm"
)

func openSQLiteForTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

type pragmaTableColumn struct {
	Name string `gorm:"column:name"`
}

func tableColumns(t *testing.T, database *gorm.DB, table string) []string {
	t.Helper()

	columns := make([]pragmaTableColumn, 0)
	if err := database.Raw(`PRAGMA table_info("` + table + `")`).Scan(&columns).Error; err != nil {
		t.Fatalf("load table_info for %s: %v", table, err)
	}
	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, column.Name)
	}
	return names
}

func TestOpenSQLiteCreatesUsersAndSchedulesTables(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "rota-clean.db"))

	users := strings.Join(tableColumns(t, database, "users"), ",")
	if users != "id,first_name,last_name,email,password" {
		t.Fatalf("unexpected users columns: %s", users)
	}

	schedules := strings.Join(tableColumns(t, database, "schedules"), ",")
	if schedules != "id,user_id,day_of_week,start_time,end_time,date" {
		t.Fatalf("unexpected schedules columns: %s", schedules)
	}
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "rota-idempotent.db")

	first, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	if err := first.Exec(`INSERT INTO users (first_name, last_name, email, password) VALUES (?, ?, ?, ?)`, "Ada", "L", "ada@example.com", "hash").Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := Close(first); err != nil {
		t.Fatalf("close first sqlite: %v", err)
	}

	second := openSQLiteForTest(t, databasePath)
	if err := EnsureSchema(second, config.DriverSQLite); err != nil {
		t.Fatalf("expected repeated schema run to succeed, got %v", err)
	}

	var count int64
	if err := second.Table("users").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected seeded user to survive a second boot, got %d users", count)
	}
}

func TestLoadSchemaFilesOrdersUsersBeforeSchedules(t *testing.T) {
	for _, dialect := range []string{config.DriverPostgres, config.DriverSQLite} {
		files, err := loadSchemaFiles(dialect)
		if err != nil {
			t.Fatalf("load %s schema: %v", dialect, err)
		}
		if len(files) != 2 {
			t.Fatalf("expected 2 %s schema files, got %d", dialect, len(files))
		}
		if !strings.Contains(files[0].Statements[0], "TABLE IF NOT EXISTS users") {
			t.Fatalf("expected %s users table first, got %q", dialect, files[0].Statements[0])
		}
		if !strings.Contains(files[1].Statements[0], "TABLE IF NOT EXISTS schedules") {
			t.Fatalf("expected %s schedules table second, got %q", dialect, files[1].Statements[0])
		}
	}
}

func TestLoadSchemaFilesRejectsUnknownDialect(t *testing.T) {
	if _, err := loadSchemaFiles("oracle"); err == nil {
		t.Fatal("expected unknown dialect to fail")
	}
}

func TestSplitSQLStatementsDropsEmptyParts(t *testing.T) {
	statements := splitSQLStatements(" CREATE TABLE a (id INT);\n\n; CREATE INDEX b ON a(id);  ")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(statements), statements)
	}
	if statements[1] != "CREATE INDEX b ON a(id)" {
		t.Fatalf("unexpected second statement %q", statements[1])
	}
}

func TestConnectWithBackoffDoublesDelayUntilSuccess(t *testing.T) {
	want := &gorm.DB{}
	calls := 0
	delays := make([]time.Duration, 0)

	got, err := connectWithBackoff(4, 10*time.Millisecond, func(delay time.Duration) {
		delays = append(delays, delay)
	}, func() (*gorm.DB, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("connection refused")
		}
		return want, nil
	})
	if err != nil {
		t.Fatalf("expected third attempt to succeed, got %v", err)
	}
	if got != want {
		t.Fatal("expected database from successful attempt")
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if len(delays) != 2 || delays[0] != 10*time.Millisecond || delays[1] != 20*time.Millisecond {
		t.Fatalf("expected delays [10ms 20ms], got %v", delays)
	}
}

func TestConnectWithBackoffReturnsLastError(t *testing.T) {
	refused := errors.New("connection refused")
	calls := 0

	_, err := connectWithBackoff(2, time.Millisecond, func(time.Duration) {}, func() (*gorm.DB, error) {
		calls++
		return nil, refused
	})
	if !errors.Is(err, refused) {
		t.Fatalf("expected wrapped connection error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestOpenUsesSQLiteDriverFromConfig(t *testing.T) {
	database, err := Open(config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "nested", "rota.db"),
		MaxOpenConns:    4,
		ConnectAttempts: 1,
	})
	if err != nil {
		t.Fatalf("open from config: %v", err)
	}
	t.Cleanup(func() {
		_ = Close(database)
	})

	if err := Ping(database); err != nil {
		t.Fatalf("ping: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	if stats := sqlDB.Stats(); stats.MaxOpenConnections != 4 {
		t.Fatalf("expected pool limit 4, got %d", stats.MaxOpenConnections)
	}
}
