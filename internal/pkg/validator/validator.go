// Package validator wraps the go-playground/validator library behind a single
// Validate function with standardized error formatting. Struct fields declare
// their rules via `validate` tags; violations come back as a joined error chain
// rooted at ErrValidationFailed.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the root of the error chain returned when one or more
// validation rules are violated. Callers can detect validation failures with
// errors.Is even when several field errors are joined together.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the singleton go-playground instance, created on package load.
var validator *gvalidator.Validate

// errStringFormat describes a single field violation.
//
// Example: "'Symbol': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError converts raw validator errors into a joined error chain with
// ErrValidationFailed first and one formatted message per failing field.
// Non-validation errors pass through unchanged.
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

// Validate checks the given struct against its `validate` tags. It returns nil
// when every rule passes, or an error chain rooted at ErrValidationFailed.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
