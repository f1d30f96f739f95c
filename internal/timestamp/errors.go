package timestamp

import (
	"errors"
	"fmt"
)

// ParseError reports an input string that matches none of the accepted
// layouts. Field values that parse but violate their bounds surface as
// calendar.RangeError instead.
type ParseError struct {
	// Input is the rejected string.
	Input string

	// Message describes what was expected.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSE_ERROR: %s: %q", e.Message, e.Input)
}

// NewParseError creates a ParseError for an input string.
func NewParseError(input, message string) *ParseError {
	return &ParseError{Input: input, Message: message}
}

// IsParseError returns true if the error is a ParseError.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
