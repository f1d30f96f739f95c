package iau

import (
	"errors"
	"fmt"
)

// ArithmeticFault reports a degenerate input to a formula with a
// division, e.g. a zero latitude whose sign cannot be taken.
type ArithmeticFault struct {
	// Op names the computation that would have been degenerate.
	Op string

	// Message describes the offending input.
	Message string
}

// Error implements the error interface.
func (e *ArithmeticFault) Error() string {
	return fmt.Sprintf("ARITHMETIC_FAULT: %s: %s", e.Op, e.Message)
}

// NewArithmeticFault creates an ArithmeticFault for an operation.
func NewArithmeticFault(op, message string) *ArithmeticFault {
	return &ArithmeticFault{Op: op, Message: message}
}

// IsArithmeticFault returns true if the error is an ArithmeticFault.
// Uses errors.As to handle wrapped errors.
func IsArithmeticFault(err error) bool {
	var af *ArithmeticFault
	return errors.As(err, &af)
}
