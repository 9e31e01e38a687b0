//go:build integration

package handlers_integrated_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/khatasathi/inventory-admin/internal/http/handlers"
	rl "github.com/khatasathi/inventory-admin/internal/http/rate_limiter"
	"github.com/khatasathi/inventory-admin/internal/http/router"
)

func runWithVisitorCleanup(t *testing.T, name string, testFunc func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		rl.CleanupAllVisitors()
		testFunc(t)
	})
}

func login(r http.Handler, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handlers.CredentialsRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthFlow(t *testing.T) {
	r := router.NewRouter()

	runWithVisitorCleanup(t, "Login with valid credentials", func(t *testing.T) {
		w := login(r, "admin", "secret")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp handlers.LoginResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode token response: %v", err)
		}
		if resp.Token == "" {
			t.Error("expected token in response")
		}
	})

	runWithVisitorCleanup(t, "Login with wrong password", func(t *testing.T) {
		w := login(r, "admin", "wrong")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Protected route without token is rejected", func(t *testing.T) {
		t.Cleanup(clearAllProducts)

		b, _ := json.Marshal(newProduct("AuthBox", "AUTH-1", 1, 1))
		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(b))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Protected route with valid token succeeds", func(t *testing.T) {
		t.Cleanup(clearAllProducts)

		w := createProduct(r, newProduct("SecureProduct", "SEC-1", 2, 1))
		if w.Code != http.StatusCreated {
			t.Errorf("expected 201 Created, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Protected route with tampered token", func(t *testing.T) {
		b, _ := json.Marshal(newProduct("Tampered", "TMP-1", 1, 1))
		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(b))
		req.Header.Set("Authorization", "Bearer "+token+"x")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 Unauthorized, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Login is rate limited", func(t *testing.T) {
		var last int
		for range 10 {
			last = login(r, "admin", "wrong").Code
		}
		if last != http.StatusTooManyRequests {
			t.Errorf("expected 429 Too Many Requests, got %d", last)
		}
	})
}

func TestRegisterUser(t *testing.T) {
	r := router.NewRouter()
	t.Cleanup(clearAllUsersExceptAdmin)

	register := func(bearer string, req handlers.RegisterAsAdminRequest) int {
		body, _ := json.Marshal(req)
		httpReq := httptest.NewRequest(http.MethodPost, "/api/admin/users", bytes.NewReader(body))
		httpReq.Header.Set("Authorization", "Bearer "+bearer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httpReq)
		return w.Code
	}

	runWithVisitorCleanup(t, "Admin creates a user", func(t *testing.T) {
		code := register(token, handlers.RegisterAsAdminRequest{Username: "clerk", Password: "clerk-pass"})
		if code != http.StatusCreated {
			t.Fatalf("expected 201 Created, got %d", code)
		}
		if w := login(r, "clerk", "clerk-pass"); w.Code != http.StatusOK {
			t.Errorf("expected the new user to log in, got %d", w.Code)
		}
	})

	runWithVisitorCleanup(t, "Duplicate username", func(t *testing.T) {
		code := register(token, handlers.RegisterAsAdminRequest{Username: "clerk", Password: "other"})
		if code != http.StatusConflict {
			t.Errorf("expected 409 Conflict, got %d", code)
		}
	})

	runWithVisitorCleanup(t, "User role is forbidden", func(t *testing.T) {
		userToken, err := userRoleToken(r)
		if err != nil {
			t.Fatalf("could not create user token: %v", err)
		}
		code := register(userToken, handlers.RegisterAsAdminRequest{Username: "sneaky", Password: "pass"})
		if code != http.StatusForbidden {
			t.Errorf("expected 403 Forbidden, got %d", code)
		}
	})
}
