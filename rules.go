package validator

// Rule constructors bridging the boolean checks into Apply-based form
// validation. A degenerate input (empty string, nil pointer) fails the rule
// rather than surfacing the sentinel error: in a form context a missing
// value is a validation failure like any other.

func ruleCheck(ok bool, err error) bool {
	return err == nil && ok
}

// ASCII validates that a string contains only ASCII characters.
func ASCII(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsASCII(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only ASCII characters",
			TranslationKey: "validation.ascii",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Base64 validates that a string is valid standard Base64.
func Base64(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsBase64(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid Base64 encoded string",
			TranslationKey: "validation.base64",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MD5 validates that a string is a 32-character hexadecimal MD5 hash.
func MD5(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsMD5(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid MD5 hash",
			TranslationKey: "validation.md5",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MACAddress validates that a string is a colon or hyphen separated MAC address.
func MACAddress(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsMACAddress(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid MAC address",
			TranslationKey: "validation.mac_address",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Email validates that a string is a valid email address.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsEmail(&value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Date validates that a string parses as a date or date-time in one of the
// supported layouts.
func Date(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsDate(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Time validates that a string is a valid time of day.
func Time(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsTime(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid time",
			TranslationKey: "validation.time",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Number validates that a string is an optionally signed integer.
func Number(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsNumber(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a whole number",
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Decimal validates that a string is a number with a non-zero fractional part.
func Decimal(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsDecimal(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a decimal number",
			TranslationKey: "validation.decimal",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Port validates that an integer is within the valid port range.
func Port(field string, port int) Rule {
	return Rule{
		Check: func() bool {
			return IsPort(port)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a port number between 0 and 65535",
			TranslationKey: "validation.port",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PortString validates that a string parses to a valid port number.
func PortString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsPortString(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a port number between 0 and 65535",
			TranslationKey: "validation.port",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CEP validates that a string is a valid Brazilian postal code.
func CEP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCEP(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CEP",
			TranslationKey: "validation.cep",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PostalCode validates that a string matches one of the supported regional
// postal code formats.
func PostalCode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsPostalCode(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid postal code",
			TranslationKey: "validation.postal_code",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CPF validates that a string is a valid Brazilian CPF document number.
func CPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsCPF(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CPF",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CNPJ validates that a string is a valid Brazilian CNPJ document number.
func CNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ruleCheck(IsCNPJ(value))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CNPJ",
			TranslationKey: "validation.cnpj",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
