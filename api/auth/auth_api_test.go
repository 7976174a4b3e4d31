package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"inventorypro.GO/api"
	coreauth "inventorypro.GO/core/auth"
	"inventorypro.GO/core/cache"
	authService "inventorypro.GO/service/auth"
)

// newAuthAPI wires the auth routes behind the real session middleware,
// with a zero login delay and the in-process session backend.
func newAuthAPI() *echo.Echo {
	e := echo.New()
	svc := authService.NewService(nil, cache.NewCache(), []byte("test-secret"), 0, time.Minute)
	g := e.Group("/api", coreauth.Middleware(svc))
	RegisterAuthRoutes(g, api.Deps{Auth: svc})
	return e
}

func postLogin(t *testing.T, e *echo.Echo, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := postLogin(t, e, email, "password123")
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200", rec.Code)
	}
	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestAuthAPI_Login(t *testing.T) {
	e := newAuthAPI()
	rec := postLogin(t, e, "admin@inventorypro.com", "password123")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	user, _ := resp["user"].(map[string]interface{})
	if user["role"] != "admin" || user["email"] != "admin@inventorypro.com" {
		t.Errorf("user = %v", resp["user"])
	}
}

func TestAuthAPI_LoginUnknownUser(t *testing.T) {
	e := newAuthAPI()
	rec := postLogin(t, e, "nobody@inventorypro.com", "password123")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "User not found" {
		t.Errorf("error = %v, want User not found", resp["error"])
	}
}

func TestAuthAPI_LoginWrongPassword(t *testing.T) {
	e := newAuthAPI()
	rec := postLogin(t, e, "admin@inventorypro.com", "nope")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "Invalid password" {
		t.Errorf("error = %v, want Invalid password", resp["error"])
	}
}

func TestAuthAPI_Me(t *testing.T) {
	e := newAuthAPI()
	token := loginToken(t, e, "manager@inventorypro.com")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]interface{}
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp["email"] != "manager@inventorypro.com" || resp["role"] != "manager" {
		t.Errorf("me = %v", resp)
	}
}

func TestAuthAPI_MeBadToken(t *testing.T) {
	e := newAuthAPI()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-session")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthAPI_MeNoToken(t *testing.T) {
	e := newAuthAPI()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	// KeyAuth treats a missing header as a malformed request.
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAuthAPI_LogoutRevokesSession(t *testing.T) {
	e := newAuthAPI()
	token := loginToken(t, e, "demo@inventorypro.com")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout status = %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("me after logout status = %d, want 401", rec.Code)
	}
}
