package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	allowedLogLevels  = []string{"", "debug", "info", "warn", "error", "fatal", "panic"}
	allowedLogFormats = []string{"", "console", "text", "json"}
)

var configValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("loglevel", oneOfFold(allowedLogLevels))
	_ = v.RegisterValidation("logformat", oneOfFold(allowedLogFormats))
	return v
})

// oneOfFold accepts a string field equal to one of allowed, ignoring case.
func oneOfFold(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.ToLower(fl.Field().String())
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

// ValidateConfig checks cfg against the struct tags of every section and
// reports all violations at once.
func ValidateConfig(cfg *GlobalConfig) error {
	err := configValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("configuration validation error: %w", err)
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, describeFieldError(fe))
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func describeFieldError(fe validator.FieldError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s fails rule '%s'", fe.Namespace(), fe.Tag())
	if fe.Param() != "" {
		fmt.Fprintf(&b, " (%s)", fe.Param())
	}
	if v := fe.Value(); v != nil && v != "" {
		fmt.Fprintf(&b, ", got '%v'", v)
	}
	return b.String()
}
