package validator

import (
	"regexp"
	"time"
)

// Layouts are tried in order; the first full strict parse wins. Month names
// are English, matching the reference layouts of the time package.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"02.01.2006",
	"2006.01.02",
	"02-Jan-2006",
	"02-January-2006",
	"02-Jan-06",
	"02-January-06",
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"02-01-2006 15:04:05",
	"02.01.2006 15:04:05",
	"2006.01.02 15:04:05",
	"02-Jan-2006 15:04:05",
	"02-January-2006 15:04:05",
	"02-Jan-06 15:04:05",
	"02-January-06 15:04:05",
}

// Hours 0-23 with optional leading zero, minutes and optional seconds 00-59,
// optional space plus case-insensitive AM/PM suffix.
var timeRegex = regexp.MustCompile(`^(?:2[0-3]|1\d|0?\d):[0-5]\d(?::[0-5]\d)?(?: [APap][Mm])?$`)

// IsDate reports whether dateStr parses as a date in one of the supported
// date-only layouts, or failing those, one of the date-time layouts.
// Parsing is strict: the layout must consume the whole input and every
// field must be in range. Returns ErrEmptyInput when dateStr is empty.
func IsDate(dateStr string) (bool, error) {
	if dateStr == "" {
		return false, ErrEmptyInput
	}

	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, dateStr); err == nil {
			return true, nil
		}
	}

	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, dateStr); err == nil {
			return true, nil
		}
	}

	return false, nil
}

// IsTime reports whether value is a time of day in the form "HH:mm",
// "HH:mm:ss", optionally followed by an AM/PM suffix. Returns ErrEmptyInput
// when value is empty.
func IsTime(value string) (bool, error) {
	if value == "" {
		return false, ErrEmptyInput
	}

	return timeRegex.MatchString(value), nil
}
