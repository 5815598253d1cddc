package handler

import (
	"net/http"

	"notekeeper/internal/contract"
	"notekeeper/internal/domain/entity"
	"notekeeper/internal/http/middleware"
	"notekeeper/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

// cookieMaxAgeSeconds is the client-side lifetime of the session
// cookie. It is shorter than the 1h expiry signed into the token; the
// client may drop the cookie before the signature would expire, never
// after.
const cookieMaxAgeSeconds = 900

type UserService interface {
	SignUp(req *contract.SignUpRequest) (*entity.User, apierror.ErrorResponse)
	Login(req *contract.LoginRequest) (*entity.User, string, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) SignUp(c echo.Context) error {
	var req contract.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	user, apierr := u.UserService.SignUp(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "User created successfully!", "user": user}
	return c.JSON(http.StatusCreated, &resp)
}

func (u *DefaultUserRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedJSONError)
	}

	user, token, apierr := u.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAgeSeconds,
		HttpOnly: true,
	})

	resp := echo.Map{"message": "User logged in successfully!", "user": user}
	return c.JSON(http.StatusOK, &resp)
}

// Logout clears the session cookie unconditionally. It does not verify
// an existing session and the token itself is not revoked server-side.
func (u *DefaultUserRoute) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	resp := echo.Map{"message": "User logged out successfully!"}
	return c.JSON(http.StatusOK, &resp)
}
