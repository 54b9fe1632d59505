package validator

import (
	"math"
	"regexp"
	"strconv"
)

var numberRegex = regexp.MustCompile(`^-?\d+$`)

// IsNumber reports whether value is an optional leading minus sign followed
// by one or more digits. No decimals, no leading plus, no whitespace.
// Returns ErrEmptyInput when value is empty.
func IsNumber(value string) (bool, error) {
	if value == "" {
		return false, ErrEmptyInput
	}

	return numberRegex.MatchString(value), nil
}

// IsDecimal reports whether value parses as a floating-point number with a
// non-zero fractional part. Integers and integer-valued floats are not
// decimals; non-numeric text yields false. Returns ErrEmptyInput when value
// is empty.
func IsDecimal(value string) (bool, error) {
	if value == "" {
		return false, ErrEmptyInput
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false, nil
	}

	return math.Mod(parsed, 1) != 0, nil
}

// IsPort reports whether port is within the valid TCP/UDP port range 0-65535.
func IsPort(port int) bool {
	return port >= 0 && port <= 65535
}

// IsPortString reports whether port parses as an integer within 0-65535.
// Non-numeric strings yield false. Returns ErrEmptyInput when port is empty.
func IsPortString(port string) (bool, error) {
	if port == "" {
		return false, ErrEmptyInput
	}

	portNumber, err := strconv.Atoi(port)
	if err != nil {
		return false, nil
	}

	return IsPort(portNumber), nil
}
