package middleware

import (
	"net/http"

	"notekeeper/internal/auth"
	"notekeeper/internal/utils"
	"notekeeper/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// TokenCookieName is the cookie the session token travels in. There is
// no header-based bearer path; the cookie is the only carrier.
const TokenCookieName = "token"

// NewAuthMiddleware gates protected routes. It either attaches the
// verified subject id to the request context and continues, or rejects
// with 401. The request body is never touched.
func NewAuthMiddleware(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			subject, err := tokens.Verify(cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			c.Set(utils.UserIDKey, subject)
			return next(c)
		}
	}
}
