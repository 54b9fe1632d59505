package validator

import "regexp"

var (
	// Standard Base64 alphabet in groups of four, with optional =/== padding
	// on the final group.
	base64Regex = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)

	md5Regex = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)

	// Six groups of two hex digits. The separator class is re-matched per
	// group, so mixed : and - within one address is accepted.
	macAddressRegex = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})$`)
)

// IsASCII reports whether value consists solely of characters with code
// points below 128. Returns ErrEmptyInput when value is empty.
func IsASCII(value string) (bool, error) {
	if value == "" {
		return false, ErrEmptyInput
	}

	for _, r := range value {
		if r > 127 {
			return false, nil
		}
	}
	return true, nil
}

// IsBase64 reports whether value is a valid standard Base64 encoded string.
// Returns ErrEmptyInput when value is empty.
func IsBase64(value string) (bool, error) {
	if value == "" {
		return false, ErrEmptyInput
	}

	return base64Regex.MatchString(value), nil
}

// IsMD5 reports whether value is a valid MD5 hash, i.e. exactly 32
// hexadecimal characters. Returns ErrEmptyInput when value is empty.
func IsMD5(value string) (bool, error) {
	if value == "" {
		return false, ErrEmptyInput
	}

	return md5Regex.MatchString(value), nil
}

// IsMACAddress reports whether macAddress is six groups of two hexadecimal
// digits separated by : or -. Returns ErrEmptyInput when macAddress is empty.
func IsMACAddress(macAddress string) (bool, error) {
	if macAddress == "" {
		return false, ErrEmptyInput
	}

	return macAddressRegex.MatchString(macAddress), nil
}
