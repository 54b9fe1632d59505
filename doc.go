// Package validator provides a set of independent string and format checks
// (email, date, time, MAC address, MD5, Base64, ASCII, ports, postal codes,
// Brazilian CEP/CPF/CNPJ documents) together with rule-building utilities
// for composing them into form-level validation.
//
// The package has two layers. The lower layer is a family of pure boolean
// checks, one per format, e.g. IsEmail, IsDate, IsMD5. Each check takes a
// single value and reports whether it conforms to that format; degenerate
// input (an empty string, or a nil pointer for IsEmail) is signaled with a
// sentinel error instead of a boolean, while well-formed-but-invalid input
// always yields false and a nil error.
//
// The upper layer wraps every check in a Rule value carrying
// translation-friendly error metadata. Rules are evaluated with the Apply
// helper, which aggregates failures into a ValidationErrors slice that
// satisfies the error interface.
//
// # Architecture
//
// Each source file groups the checks for one family of formats
// (format_checks.go, datetime_checks.go, postal_checks.go, ...). There is no
// hidden state: every check is a pure function over its input plus read-only
// package-level tables (compiled regexes and date layouts), so the package
// is completely stateless and goroutine-safe without locking.
//
// # Usage
//
//	ok, err := validator.IsEmail(&email)
//	if err != nil {
//	    // empty/missing input, not a format failure
//	}
//
//	// or compose checks for a whole form:
//	err := validator.Apply(
//	    validator.Email("email", email),
//	    validator.CPF("document", document),
//	    validator.CEP("postal_code", cep),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages or translate them
//	}
//
// # Error Handling
//
// Two sentinel errors separate degenerate input from format failures:
// ErrEmptyInput for empty strings, and ErrNilEmail for a nil address pointer
// passed to IsEmail. Every other rejection is a plain false return. In the
// Rule layer a degenerate input simply fails the rule.
//
// # Quirks
//
// Several checks preserve long-standing behavior of the original rule set
// rather than the strictest possible reading of each format. IsEmail's
// duplicate-segment check runs on the dot-split of the whole address, the
// MAC address pattern accepts mixed : and - separators within one address,
// and IsCEP has no empty-input guard. These are documented on the functions
// and pinned by tests.
package validator
