package validator

import "strings"

// IsCPF reports whether cpf is a valid Brazilian individual taxpayer number
// (Cadastro de Pessoas Físicas). Formatting separators are stripped before
// checking; the input must contain exactly eleven digits, must not be a
// single repeated digit, and both mod-11 check digits must verify.
// Returns ErrEmptyInput when cpf is empty.
func IsCPF(cpf string) (bool, error) {
	if cpf == "" {
		return false, ErrEmptyInput
	}

	digits := nonDigitRegex.ReplaceAllString(cpf, "")

	if len(digits) != 11 {
		return false, nil
	}

	if allSameDigits(digits) {
		return false, nil
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	if checkDigitCPF(sum) != int(digits[9]-'0') {
		return false, nil
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}

	return checkDigitCPF(sum) == int(digits[10]-'0'), nil
}

// IsCNPJ reports whether cnpj is a valid Brazilian corporate taxpayer number
// (Cadastro Nacional da Pessoa Jurídica). Formatting separators are stripped
// before checking; the input must contain exactly fourteen digits, must not
// be a single repeated digit, and both mod-11 check digits must verify.
// Returns ErrEmptyInput when cnpj is empty.
func IsCNPJ(cnpj string) (bool, error) {
	if cnpj == "" {
		return false, ErrEmptyInput
	}

	digits := nonDigitRegex.ReplaceAllString(cnpj, "")

	if len(digits) != 14 {
		return false, nil
	}

	if allSameDigits(digits) {
		return false, nil
	}

	firstWeights := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i, w := range firstWeights {
		sum += int(digits[i]-'0') * w
	}
	if checkDigitCNPJ(sum) != int(digits[12]-'0') {
		return false, nil
	}

	secondWeights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum = 0
	for i, w := range secondWeights {
		sum += int(digits[i]-'0') * w
	}

	return checkDigitCNPJ(sum) == int(digits[13]-'0'), nil
}

// checkDigitCPF computes a CPF verification digit from a weighted sum:
// (sum * 10) mod 11, where a result of 10 collapses to 0.
func checkDigitCPF(sum int) int {
	digit := (sum * 10) % 11
	if digit == 10 {
		digit = 0
	}
	return digit
}

// checkDigitCNPJ computes a CNPJ verification digit from a weighted sum:
// remainders below 2 collapse to 0, otherwise 11 minus the remainder.
func checkDigitCNPJ(sum int) int {
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

// Sequences like "11111111111" pass the check-digit math but are not
// issuable documents.
func allSameDigits(digits string) bool {
	return strings.Count(digits, digits[:1]) == len(digits)
}
