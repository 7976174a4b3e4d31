package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"

	"inventorypro.GO/core/cache"
	entity "inventorypro.GO/model/entity"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// Mock credential store. All demo accounts share one password; nothing
// here is real authentication.
const mockPassword = "password123"

var mockUsers = []entity.User{
	{ID: "1", Email: "admin@inventorypro.com", Name: "John Admin", Role: entity.RoleAdmin},
	{ID: "2", Email: "manager@inventorypro.com", Name: "Sarah Manager", Role: entity.RoleManager},
	{ID: "3", Email: "demo@inventorypro.com", Name: "Demo User", Role: entity.RoleEmployee},
}

// Service is the session/access gate: mock login with a simulated
// network delay, JWT session tokens, revocable sessions kept in Redis
// when configured and in the process cache otherwise.
type Service struct {
	redis  *redis.Client
	local  *cache.Cache
	secret []byte
	delay  time.Duration
	ttl    time.Duration
}

func NewService(rdb *redis.Client, local *cache.Cache, secret []byte, delay, ttl time.Duration) *Service {
	if local == nil {
		local = cache.GetInstance()
	}
	if len(secret) == 0 {
		secret = []byte("inventorypro-dev-secret")
	}
	return &Service{redis: rdb, local: local, secret: secret, delay: delay, ttl: ttl}
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Login checks the credentials after the configured simulated delay and
// returns the user plus a signed session token. The delay respects ctx
// cancellation.
func (s *Service) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, "", ctx.Err()
		}
	}

	var user *entity.User
	for i := range mockUsers {
		if strings.EqualFold(mockUsers[i].Email, email) {
			user = &mockUsers[i]
			break
		}
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}
	if password != mockPassword {
		return nil, "", ErrInvalidPassword
	}

	now := time.Now()
	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}

	if err := s.storeSession(ctx, token, *user); err != nil {
		return nil, "", err
	}
	out := *user
	return &out, token, nil
}

// Validate verifies the token signature and that the session has not
// been revoked, and returns the session's user.
func (s *Service) Validate(ctx context.Context, token string) (*entity.User, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	user, ok := s.loadSession(ctx, token)
	if !ok {
		return nil, ErrInvalidToken
	}
	if !user.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// Logout revokes the session. Revoking an unknown token is a no-op.
func (s *Service) Logout(ctx context.Context, token string) {
	if s.redis != nil {
		s.redis.Del(ctx, sessionKey(token))
		return
	}
	s.local.DeleteN("session", token)
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *Service) storeSession(ctx context.Context, token string, user entity.User) error {
	if s.redis != nil {
		payload, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}
		if err := s.redis.Set(ctx, sessionKey(token), payload, s.ttl).Err(); err != nil {
			return fmt.Errorf("store session: %w", err)
		}
		return nil
	}
	s.local.SetN([]interface{}{"session", token}, user, int64(s.ttl/time.Second), []string{"sessions"})
	return nil
}

func (s *Service) loadSession(ctx context.Context, token string) (*entity.User, bool) {
	if s.redis != nil {
		payload, err := s.redis.Get(ctx, sessionKey(token)).Bytes()
		if err != nil {
			return nil, false
		}
		var user entity.User
		if err := json.Unmarshal(payload, &user); err != nil {
			return nil, false
		}
		return &user, true
	}
	v, ok := s.local.GetN("session", token)
	if !ok {
		return nil, false
	}
	user, ok := v.(entity.User)
	if !ok {
		return nil, false
	}
	return &user, true
}
