package project

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ruixen-labs/ruixen-ui/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// ValidationError describes the first invalid field of a Config.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project config: %s", e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			return theme.Exists(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks required fields and the theme name.
func Validate(cfg *Config) error {
	if cfg == nil {
		return &ValidationError{Field: "config", Message: "configuration is nil"}
	}

	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return &ValidationError{Field: "config", Message: err.Error(), Err: err}
	}

	fe := ves[0]
	field := jsonFieldName(fe)
	msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	if fe.Tag() == "theme" {
		msg = fmt.Sprintf("%s: unknown theme %q (available: %s)", field, fe.Value(), strings.Join(theme.Names(), ", "))
	}
	return &ValidationError{Field: field, Message: msg, Err: err}
}

// jsonFieldName turns "Config.Tailwind.CSS" into "tailwind.css".
func jsonFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}
