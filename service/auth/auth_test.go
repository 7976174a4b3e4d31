package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventorypro.GO/core/cache"
	entity "inventorypro.GO/model/entity"
)

// Tests use a zero delay and the local cache backend so they run instantly
// and need no Redis.
func testService() *Service {
	return NewService(nil, cache.NewCache(), []byte("test-secret"), 0, time.Minute)
}

func TestLogin(t *testing.T) {
	svc := testService()

	user, token, err := svc.Login(context.Background(), "admin@inventorypro.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned empty token")
	}
	if user.Role != entity.RoleAdmin || user.Name != "John Admin" {
		t.Errorf("Login user = %+v", user)
	}
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	svc := testService()
	user, _, err := svc.Login(context.Background(), "Manager@InventoryPro.COM", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != entity.RoleManager {
		t.Errorf("Role = %s, want manager", user.Role)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := testService()
	_, _, err := svc.Login(context.Background(), "nobody@inventorypro.com", "password123")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := testService()
	_, _, err := svc.Login(context.Background(), "admin@inventorypro.com", "hunter2")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("err = %v, want ErrInvalidPassword", err)
	}
}

func TestLogin_DelayRespectsContext(t *testing.T) {
	svc := NewService(nil, cache.NewCache(), []byte("test-secret"), 5*time.Second, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, _, err := svc.Login(ctx, "admin@inventorypro.com", "password123")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Login did not return promptly on cancelled context")
	}
}

func TestValidate_RoundTrip(t *testing.T) {
	svc := testService()
	_, token, err := svc.Login(context.Background(), "demo@inventorypro.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	user, err := svc.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if user.Email != "demo@inventorypro.com" || user.Role != entity.RoleEmployee {
		t.Errorf("Validate user = %+v", user)
	}
}

func TestValidate_GarbageToken(t *testing.T) {
	svc := testService()
	if _, err := svc.Validate(context.Background(), "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := NewService(nil, cache.NewCache(), []byte("secret-a"), 0, time.Minute)
	_, token, err := issuer.Login(context.Background(), "admin@inventorypro.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	verifier := NewService(nil, cache.NewCache(), []byte("secret-b"), 0, time.Minute)
	if _, err := verifier.Validate(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	svc := testService()
	_, token, err := svc.Login(context.Background(), "admin@inventorypro.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	svc.Logout(context.Background(), token)
	if _, err := svc.Validate(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate after logout: err = %v, want ErrInvalidToken", err)
	}
	// Revoking again is harmless.
	svc.Logout(context.Background(), token)
}
