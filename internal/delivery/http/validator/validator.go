// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for echo.
type EchoValidator struct {
	validate *validatorlib.Validate
}

// New creates the request validator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
