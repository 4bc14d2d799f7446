package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks pricing input outside the supported ranges.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOTPMismatch is returned when the delivery code does not match the
	// order's OTP. The order state is left untouched.
	ErrOTPMismatch = errors.New("otp mismatch")

	// ErrInvalidTransition is returned when a status change is not allowed
	// from the order's current state.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrMenuNotFound  = errors.New("menu not found")
	ErrOrderNotFound = errors.New("order not found")
)

// ValidationError is a field-level check failure surfaced to the client as an
// inline message.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
