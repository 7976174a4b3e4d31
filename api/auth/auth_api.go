package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"inventorypro.GO/api"
	coreauth "inventorypro.GO/core/auth"
	authService "inventorypro.GO/service/auth"
)

func init() {
	api.RegisterModule(RegisterAuthRoutes)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func RegisterAuthRoutes(apiGroup *echo.Group, deps api.Deps) {
	g := apiGroup.Group("/auth")

	// POST /api/auth/login – public (skipper), returns session token + user
	g.POST("/login", func(c echo.Context) error {
		var body loginRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		user, token, err := deps.Auth.Login(c.Request().Context(), body.Email, body.Password)
		if err != nil {
			switch {
			case errors.Is(err, authService.ErrUserNotFound):
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "User not found"})
			case errors.Is(err, authService.ErrInvalidPassword):
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid password"})
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
	})

	// POST /api/auth/logout – revokes the presented token
	g.POST("/logout", func(c echo.Context) error {
		token := bearerToken(c)
		if token != "" {
			deps.Auth.Logout(c.Request().Context(), token)
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "logged out"})
	})

	// GET /api/auth/me – current session user
	g.GET("/me", func(c echo.Context) error {
		user := coreauth.UserFromContext(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session"})
		}
		return c.JSON(http.StatusOK, user)
	})
}

func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
