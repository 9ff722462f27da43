// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrMalformedSeries  = errors.New("malformed series")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrDataNotFound     = errors.New("data not found")
	ErrDatabaseError    = errors.New("database error")
)

// InsufficientDataError reports that a series is shorter than the minimum
// window an operation requires.
type InsufficientDataError struct {
	Operation string
	Required  int
	Got       int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for %s: need at least %d bars, got %d", e.Operation, e.Required, e.Got)
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

// NewInsufficientDataError creates a new InsufficientDataError.
func NewInsufficientDataError(operation string, required, got int) *InsufficientDataError {
	return &InsufficientDataError{
		Operation: operation,
		Required:  required,
		Got:       got,
	}
}

// MalformedSeriesError reports a bar series that violates the input
// contract: empty, out of order, or carrying invalid prices or volumes.
type MalformedSeriesError struct {
	Index  int // offending bar index, -1 when the series as a whole is invalid
	Reason string
}

func (e *MalformedSeriesError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed series: %s", e.Reason)
	}
	return fmt.Sprintf("malformed series at bar %d: %s", e.Index, e.Reason)
}

func (e *MalformedSeriesError) Unwrap() error {
	return ErrMalformedSeries
}

// NewMalformedSeriesError creates a new MalformedSeriesError.
func NewMalformedSeriesError(index int, reason string) *MalformedSeriesError {
	return &MalformedSeriesError{
		Index:  index,
		Reason: reason,
	}
}

// StoreError represents an error from the bar store.
type StoreError struct {
	Operation string
	Symbol    string
	Err       error
}

func (e *StoreError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("store error [%s] %s: %v", e.Operation, e.Symbol, e.Err)
	}
	return fmt.Sprintf("store error [%s]: %v", e.Operation, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(operation, symbol string, err error) *StoreError {
	return &StoreError{
		Operation: operation,
		Symbol:    symbol,
		Err:       err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
