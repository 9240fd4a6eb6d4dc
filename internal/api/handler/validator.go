package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Password complexity: 8-16 chars, at least one uppercase letter and one
// character outside alphanumerics. Registered as the `password` tag so
// signup, admin user creation, and password update all validate against the
// same rule.
var (
	passwordUpper  = regexp.MustCompile(`[A-Z]`)
	passwordSymbol = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		return len(pw) >= 8 && len(pw) <= 16 &&
			passwordUpper.MatchString(pw) &&
			passwordSymbol.MatchString(pw)
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "password":
		return "password must be 8-16 characters with at least one uppercase letter and one special character"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
