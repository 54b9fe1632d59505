package validator

import (
	"regexp"
	"strings"
)

var (
	emailStartRegex = regexp.MustCompile(`^[^a-zA-Z]`)
	emailShapeRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// IsEmail reports whether email is a valid address per this library's
// historical rule set. The rules are deliberately opinionated and stricter
// than RFC 5322 in places:
//
//   - the first character must be a letter
//   - the character right after @ must not be a digit
//   - the local part must not contain ".." or end with "."
//   - dot-separated segments of the whole address must not repeat in the
//     two positions before the TLD, and domain labels must be pairwise
//     distinct
//
// A nil pointer returns ErrNilEmail; an empty string is not special-cased
// and fails the shape checks with a false result.
func IsEmail(email *string) (bool, error) {
	if email == nil {
		return false, ErrNilEmail
	}

	addr := *email

	if emailStartRegex.MatchString(addr) {
		return false, nil
	}

	if !emailShapeRegex.MatchString(addr) {
		return false, nil
	}

	// The shape regex guarantees exactly one @ and a trailing letters-only
	// TLD, so the index arithmetic below is safe.
	atIndex := strings.Index(addr, "@")
	afterAt := atIndex + 1
	lastDot := strings.LastIndex(addr, ".")

	if isDigit(addr[afterAt]) {
		return false, nil
	}

	if isDigit(addr[lastDot+1]) {
		return false, nil
	}

	localPart := addr[:atIndex]

	if strings.Contains(localPart, "..") {
		return false, nil
	}

	if strings.HasSuffix(localPart, ".") {
		return false, nil
	}

	// Historical quirk: this duplicate-segment check splits the WHOLE
	// address on dots, local part included, not just the domain.
	parts := strings.Split(addr, ".")
	if len(parts) > 2 && parts[len(parts)-2] == parts[len(parts)-3] {
		return false, nil
	}

	if strings.Count(addr, "@") > 1 {
		return false, nil
	}

	domain := addr[afterAt:]

	if strings.Contains(domain, "..") {
		return false, nil
	}

	seen := make(map[string]struct{})
	for _, label := range strings.Split(domain, ".") {
		if _, dup := seen[label]; dup {
			return false, nil
		}
		seen[label] = struct{}{}
	}

	return true, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
