package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notekeeper/internal/auth"
	"notekeeper/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "supersecretkeysupersecretkey123456"

func runGate(t *testing.T, cookie *http.Cookie, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	gate := NewAuthMiddleware(auth.NewTokenService(testSecret))
	require.NoError(t, gate(next)(c))
	return rec
}

func TestAuthMiddlewareNoCookie(t *testing.T) {
	rec := runGate(t, nil, func(c echo.Context) error {
		t.Fatal("should not reach handler")
		return nil
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareEmptyCookie(t *testing.T) {
	rec := runGate(t, &http.Cookie{Name: TokenCookieName, Value: ""}, func(c echo.Context) error {
		t.Fatal("should not reach handler")
		return nil
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	rec := runGate(t, &http.Cookie{Name: TokenCookieName, Value: "garbage"}, func(c echo.Context) error {
		t.Fatal("should not reach handler")
		return nil
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := runGate(t, &http.Cookie{Name: TokenCookieName, Value: expired}, func(c echo.Context) error {
		t.Fatal("should not reach handler")
		return nil
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	token, err := auth.NewTokenService(testSecret).Issue("user-123")
	require.NoError(t, err)

	var gotSubject string
	rec := runGate(t, &http.Cookie{Name: TokenCookieName, Value: token}, func(c echo.Context) error {
		gotSubject, _ = c.Get(utils.UserIDKey).(string)
		return c.NoContent(http.StatusOK)
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-123", gotSubject)
}
