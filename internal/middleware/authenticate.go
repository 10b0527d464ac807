package middleware

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"gymhub/internal/auth"
)

// identityContextKey is where the authenticated identity's claims live on
// the echo context.
const identityContextKey = "user"

// Authenticate returns middleware that gates requests on a valid access
// token. Failure modes are deliberately distinct: a missing credential and
// an expired token both yield 401 (the client should supply or refresh a
// token), while a token that fails verification yields 403 (re-login is the
// only way out).
func Authenticate(tokens *auth.TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: identityContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := tokens.VerifyAccess(tokenString)
			if err != nil {
				return nil, err
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				return echo.NewHTTPError(http.StatusUnauthorized, "access token expired")
			case errors.Is(err, auth.ErrTokenInvalid):
				return echo.NewHTTPError(http.StatusForbidden, "invalid access token")
			default:
				// No bearer credential was extracted from the request.
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}
		},
	})
}

// CurrentUser returns the claims attached by Authenticate.
func CurrentUser(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(identityContextKey).(*auth.Claims)
	return claims, ok
}
