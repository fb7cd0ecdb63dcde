package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rota/internal/db"
	"github.com/terraincognita07/rota/internal/models"
	"gorm.io/gorm"
)

type testApp struct {
	app      *fiber.App
	database *gorm.DB
}

func newTestApp(t *testing.T) testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "rota-api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(database) })

	handler, err := NewHandler(database)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return testApp{app: app, database: database}
}

func (env testApp) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	return env.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (env testApp) postForm(t *testing.T, path string, values url.Values) (*http.Response, string) {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return env.do(t, request)
}

func (env testApp) do(t *testing.T, request *http.Request) (*http.Response, string) {
	t.Helper()
	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return response, string(body)
}

func (env testApp) seedUser(t *testing.T, firstName string) models.User {
	t.Helper()
	user := models.User{FirstName: firstName, LastName: "Tester", Email: strings.ToLower(firstName) + "@example.com", Password: "hash"}
	if err := env.database.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", firstName, err)
	}
	return user
}

func assertStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, response.StatusCode)
	}
}

func assertRedirect(t *testing.T, response *http.Response, location string) {
	t.Helper()
	assertStatus(t, response, http.StatusFound)
	if got := response.Header.Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func assertBodyContains(t *testing.T, body string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected body to contain %q, got:\n%s", fragment, body)
		}
	}
}

func scheduleValues(dayOfWeek string, date string, start string, end string) url.Values {
	return url.Values{
		"dayOfWeek": {dayOfWeek},
		"date":      {date},
		"startTime": {start},
		"endTime":   {end},
	}
}
