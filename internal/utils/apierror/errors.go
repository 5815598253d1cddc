package apierror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

var (
	MalformedJSONError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Something went wrong")

	MissingFieldsError   = NewSimple(400, "All fields are required")
	InvalidEmailError    = NewSimple(400, "Invalid email format")
	ShortPasswordError   = NewSimple(400, "Password must be at least 8 characters long")
	ExistingEmailError   = NewSimple(400, "User Already exists")
	UserNotFoundError    = NewSimple(404, "User not exist")
	InvalidPasswordError = NewSimple(400, "Invalid Password")
	UnauthorizedError    = NewSimple(401, "Unauthorized user")
	NoteNotFoundError    = NewSimple(404, "Note not found")
)

// FromValidationError maps the first failed validator tag to its wire
// message. Presence failures win over format failures, so a request
// missing fields never reports a format problem.
func FromValidationError(err error) *APIError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return InternalServerError
	}

	for _, fe := range ve {
		if fe.Tag() == "required" {
			return MissingFieldsError
		}
	}

	switch ve[0].Tag() {
	case "emailshape", "email":
		return InvalidEmailError
	case "min":
		if ve[0].Field() == "Password" {
			return ShortPasswordError
		}
		return NewSimple(400, "Value is too short, min: "+ve[0].Param())
	default:
		return NewSimple(400, "Invalid value provided")
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}
