// Package validator wraps go-playground/validator to provide declarative
// struct validation with a stable sentinel error and readable messages.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the root error of every validation failure,
// allowing callers to detect invalid input with errors.Is even when
// multiple field errors are joined behind it.
var ErrValidationFailed = errors.New("struct validation failed")

// validate is the singleton instance, configured once at package load.
var validate *gvalidator.Validate

// errStringFormat renders a single field failure, e.g.
// "'Address': value '0x' does not satisfy the 'eth_addr' rule".
const errStringFormat = "'%s': value '%v' does not satisfy the '%s' rule"

func init() {
	validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError converts raw validator errors into a joined chain rooted
// at ErrValidationFailed. Non-validation errors pass through untouched.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks the given struct against its `validate` tags. It
// returns nil when all fields pass, or a joined error that includes
// ErrValidationFailed plus one message per failing field.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
