package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/taskaroo/taskaroo/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "taskaroo-api-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	handler := NewHandler(database, "test-secret-key", time.UTC, false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload for %s %s: %v", method, path, err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func registerTestUser(t *testing.T, app *fiber.App, name string, email string) string {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "StrongPass1",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s expected status 201, got %d", email, response.StatusCode)
	}

	payload := struct {
		Token string `json:"token"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.Token == "" {
		t.Fatalf("register %s returned empty token", email)
	}
	return payload.Token
}

func registerV1User(t *testing.T, app *fiber.App, name string, email string, role string) string {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/v1/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "StrongPass1",
		"role":     role,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("v1 register %s expected status 201, got %d", email, response.StatusCode)
	}

	payload := struct {
		Token string `json:"token"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.Token == "" {
		t.Fatalf("v1 register %s returned empty token", email)
	}
	return payload.Token
}

func createTestHabit(t *testing.T, app *fiber.App, token string, name string) uint {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/habits", token, fiber.Map{"name": name})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create habit %q expected status 201, got %d", name, response.StatusCode)
	}

	payload := struct {
		ID uint `json:"id"`
	}{}
	decodeJSONBody(t, response, &payload)
	if payload.ID == 0 {
		t.Fatalf("create habit %q returned zero id", name)
	}
	return payload.ID
}
