package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// ContextKey is where the gate stores the verified *Claims.
const ContextKey = "admin"

// Messages returned by the gate.
const (
	msgTokenRequired = "Access token required"
	msgTokenInvalid  = "Invalid or expired token"
)

// Middleware requires "Authorization: Bearer <token>". A missing token is
// answered with 401, a token that fails verification with 403.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtService.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, ErrInvalidToken) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": msgTokenInvalid})
			}
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": msgTokenRequired})
		},
	})
}

// ClaimsFrom returns the identity attached by Middleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok
}
