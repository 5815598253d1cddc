package utils

import (
	"notekeeper/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// UserIDKey is the context key the auth middleware stores the
// authenticated subject under.
const UserIDKey = "userId"

// GetUserIDFromContext reads the authenticated subject id placed on the
// request by the auth middleware.
func GetUserIDFromContext(c echo.Context) (string, apierror.ErrorResponse) {
	val := c.Get(UserIDKey)
	if val == nil {
		log.Warnf("route %s attempted to read nil user id from context", c.Request().URL)
		return "", apierror.UnauthorizedError
	}

	userID, ok := val.(string)
	if !ok {
		log.Warnf("expected string at %q context key, got %v", UserIDKey, val)
		return "", apierror.InternalServerError
	}
	return userID, nil
}
