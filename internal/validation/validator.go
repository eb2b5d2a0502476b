// Package validation validates incoming service payloads.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/glossa-dev/glossa/internal/errors"
)

// Validator wraps the struct validator with APIError translation.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// ValidateStruct validates s and reports violations as a single
// VALIDATION_FAILED error with per-field messages.
func (v *Validator) ValidateStruct(s interface{}) *apperrors.APIError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	apiErr := apperrors.NewValidationError("Request validation failed")
	if violations, ok := err.(validator.ValidationErrors); ok {
		for _, violation := range violations {
			apiErr.WithField(violation.Field(), fmt.Sprintf("failed %q constraint", violation.Tag()))
		}
		return apiErr
	}
	return apperrors.WrapError(err, apperrors.ValidationFailed, "Request validation failed")
}
