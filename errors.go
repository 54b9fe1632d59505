package validator

import "errors"

// Sentinel errors reported for degenerate input. Malformed input that is
// merely invalid yields a false result, never an error.
var (
	// ErrEmptyInput is returned by checks that require input when the value is empty.
	ErrEmptyInput = errors.New("input value cannot be empty")

	// ErrNilEmail is returned by IsEmail when the address pointer is nil,
	// distinguishing a missing value from an empty one.
	ErrNilEmail = errors.New("email cannot be nil")
)
