package validator

import "regexp"

var nonDigitRegex = regexp.MustCompile(`\D`)

// Regional postal code patterns, tried in order. Overlaps (a plain 5-digit
// code matches both the US and the generic pattern) are harmless since the
// result is a boolean OR.
var postalCodeRegexes = []*regexp.Regexp{
	regexp.MustCompile(`^\d{5}(-\d{4})?$`),                           // United States ZIP
	regexp.MustCompile(`^[A-Za-z]\d[A-Za-z] \d[A-Za-z]\d$`),          // Canada
	regexp.MustCompile(`^[A-Za-z]{1,2}\d[A-Za-z\d]? \d[A-Za-z]{2}$`), // United Kingdom
	regexp.MustCompile(`^\d{5}$`),                                    // France, Spain, Italy, Germany
	regexp.MustCompile(`^\d{4}$`),                                    // Netherlands, South Africa, Switzerland
	regexp.MustCompile(`^\d{3}-\d{4}$`),                              // Japan
	regexp.MustCompile(`^\d{5}-\d{3}$`),                              // Brazil
}

// IsCEP reports whether cep is a valid Brazilian postal code: exactly eight
// digits once the conventional separator is stripped. Unlike its siblings,
// IsCEP has no empty-input guard; an empty string is simply too short and
// returns false.
func IsCEP(cep string) bool {
	if len(cep) < 8 || len(cep) > 10 {
		return false
	}

	digits := nonDigitRegex.ReplaceAllString(cep, "")

	return len(digits) == 8
}

// IsPostalCode reports whether postalCode matches any of the supported
// regional formats (US, Canada, UK, Japan, Brazil, and generic 4/5 digit
// codes). Returns ErrEmptyInput when postalCode is empty.
func IsPostalCode(postalCode string) (bool, error) {
	if postalCode == "" {
		return false, ErrEmptyInput
	}

	for _, re := range postalCodeRegexes {
		if re.MatchString(postalCode) {
			return true, nil
		}
	}

	return false, nil
}
