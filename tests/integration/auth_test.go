package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAuthFlow(t *testing.T) {
	app := setupApp(t)

	t.Run("register_login_profile", func(t *testing.T) {
		token, userID := app.registerUser(t, "flow@example.com", "password123")
		if token == "" || userID == 0 {
			t.Fatal("expected token and user ID from registration")
		}

		rec := app.request("POST", "/api/v1/auth/login", `{"email":"flow@example.com","password":"password123"}`, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
		}
		loginToken := parseJSON(t, rec)["token"].(string)

		rec = app.request("GET", "/api/v1/profile", "", loginToken)
		if rec.Code != http.StatusOK {
			t.Fatalf("profile failed: %d %s", rec.Code, rec.Body.String())
		}
		user := parseJSON(t, rec)["user"].(map[string]interface{})
		if user["email"] != "flow@example.com" {
			t.Errorf("expected flow@example.com, got %v", user["email"])
		}
	})

	t.Run("duplicate_registration_conflicts", func(t *testing.T) {
		app.registerUser(t, "dup@example.com", "password123")

		body := fmt.Sprintf(`{"email":%q,"password":"password456"}`, "dup@example.com")
		rec := app.request("POST", "/api/v1/auth/register", body, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("wrong_password_rejected", func(t *testing.T) {
		app.registerUser(t, "secure@example.com", "password123")

		rec := app.request("POST", "/api/v1/auth/login", `{"email":"secure@example.com","password":"nope12345"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("protected_route_requires_token", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/properties", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", rec.Code)
		}

		rec = app.request("GET", "/api/v1/properties", "", "not-a-token")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 with garbage token, got %d", rec.Code)
		}
	})
}
