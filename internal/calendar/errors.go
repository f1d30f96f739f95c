package calendar

import (
	"errors"
	"fmt"
)

// RangeError reports a calendar field outside its valid bounds for the
// given context, e.g. day-of-year 366 in a non-leap year or day 31 in
// April. Range errors are local precondition failures: they surface
// immediately to the caller and are never retried.
type RangeError struct {
	// Field names the offending field ("month", "day", "doy", "hour", ...).
	Field string

	// Value is the rejected value.
	Value int

	// Min and Max are the inclusive bounds that were violated.
	Min int
	Max int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("RANGE_ERROR: %s %d out of range %d..%d", e.Field, e.Value, e.Min, e.Max)
}

// NewRangeError creates a RangeError for a field with inclusive bounds.
func NewRangeError(field string, value, min, max int) *RangeError {
	return &RangeError{Field: field, Value: value, Min: min, Max: max}
}

// IsRangeError returns true if the error is a RangeError.
// Uses errors.As to handle wrapped errors.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}
