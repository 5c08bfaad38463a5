// Package hxerr holds the error taxonomy shared by the rating engine.
//
// Every failure of the engine wraps exactly one of the sentinel errors below,
// so callers can classify it with errors.Is.
package hxerr

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is returned when a value that must be strictly
	// positive (or non-negative) is not.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfiguration is returned for structurally inconsistent setups:
	// uneven pass partition, unknown layout or arrangement names, missing
	// shell-side data, tubes lacking attributes needed by a calculation.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotConfigured is returned by an enthalpy-tracked stream whose
	// effective capacity rate has not been supplied.
	ErrNotConfigured = fmt.Errorf("%w: not configured", ErrInvalidConfiguration)

	// ErrDomainBound is returned when a derived quantity leaves its
	// physical range (effectiveness outside [0,1], non-positive resistance).
	ErrDomainBound = errors.New("domain bound violation")
)

// Positive checks that v is finite and strictly positive.
func Positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0.0 {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidInput, name, v)
	}
	return nil
}

// NonNegative checks that v is finite and not below zero.
func NonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0.0 {
		return fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalidInput, name, v)
	}
	return nil
}

// PositiveInt checks that n is at least one.
func PositiveInt(name string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %s must be a positive integer, got %d", ErrInvalidInput, name, n)
	}
	return nil
}

// Configuration formats an ErrInvalidConfiguration.
func Configuration(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}

// Domain formats an ErrDomainBound.
func Domain(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrDomainBound, fmt.Sprintf(format, args...))
}
