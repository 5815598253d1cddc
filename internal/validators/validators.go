package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// emailRegex accepts the usual local@domain shape: no whitespace or
// extra @, and at least one dot in the domain.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func EmailShape(fl validator.FieldLevel) bool {
	email, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return emailRegex.MatchString(email)
}

// Register wires every custom validator into the engine.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("emailshape", EmailShape)
}
