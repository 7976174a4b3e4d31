package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"inventorypro.GO/config"
	entity "inventorypro.GO/model/entity"
	authService "inventorypro.GO/service/auth"
)

// ContextKeyUser is where the middleware stores the authenticated user.
const ContextKeyUser = "user"

// Middleware returns bearer-token auth backed by the session service.
// Public paths from config.GetAuthSkipperPaths pass through.
func Middleware(svc *authService.Service) echo.MiddlewareFunc {
	skipper := buildSkipper()
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:Authorization",
		AuthScheme: "Bearer",
		Skipper:    skipper,
		Validator: func(token string, c echo.Context) (bool, error) {
			user, err := svc.Validate(c.Request().Context(), token)
			if err != nil {
				return false, nil
			}
			c.Set(ContextKeyUser, user)
			return true, nil
		},
	})
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}

// UserFromContext returns the authenticated user, or nil on public paths.
func UserFromContext(c echo.Context) *entity.User {
	if u, ok := c.Get(ContextKeyUser).(*entity.User); ok {
		return u
	}
	return nil
}

// RequireCapability rejects requests whose user lacks the capability.
// The role/capability table lives on entity.Role.
func RequireCapability(cap entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := UserFromContext(c)
			if user == nil || !user.Role.Can(cap) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "insufficient role"})
			}
			return next(c)
		}
	}
}
