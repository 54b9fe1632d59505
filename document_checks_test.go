package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validator "github.com/multiform-validator/multiform-validator-go"
)

func TestIsCPF(t *testing.T) {
	t.Run("valid CPFs", func(t *testing.T) {
		validCPFs := []string{
			"11144477735",
			"111.444.777-35",
			"52998224725",
			"529.982.247-25",
		}

		for _, cpf := range validCPFs {
			ok, err := validator.IsCPF(cpf)
			require.NoError(t, err)
			assert.True(t, ok, "CPF should be valid: %q", cpf)
		}
	})

	t.Run("invalid CPFs", func(t *testing.T) {
		invalidCPFs := []string{
			"11144477734",    // wrong second check digit
			"111.444.777-36", // wrong second check digit
			"21144477735",    // wrong first check digit
			"11111111111",    // repeated digit passes the math but is not issuable
			"00000000000",
			"123456789",    // too short
			"111444777350", // too long
			"not-a-cpf",
		}

		for _, cpf := range invalidCPFs {
			ok, err := validator.IsCPF(cpf)
			require.NoError(t, err)
			assert.False(t, ok, "CPF should be invalid: %q", cpf)
		}
	})

	t.Run("empty input returns error", func(t *testing.T) {
		ok, err := validator.IsCPF("")
		require.ErrorIs(t, err, validator.ErrEmptyInput)
		assert.False(t, ok)
	})
}

func TestIsCNPJ(t *testing.T) {
	t.Run("valid CNPJs", func(t *testing.T) {
		validCNPJs := []string{
			"11222333000181",
			"11.222.333/0001-81",
			"13347016000117",
			"13.347.016/0001-17",
		}

		for _, cnpj := range validCNPJs {
			ok, err := validator.IsCNPJ(cnpj)
			require.NoError(t, err)
			assert.True(t, ok, "CNPJ should be valid: %q", cnpj)
		}
	})

	t.Run("invalid CNPJs", func(t *testing.T) {
		invalidCNPJs := []string{
			"11222333000182",     // wrong second check digit
			"11.222.333/0001-91", // wrong first check digit
			"11111111111111",     // repeated digit
			"1122233300018",      // too short
			"112223330001810",    // too long
			"not-a-cnpj",
		}

		for _, cnpj := range invalidCNPJs {
			ok, err := validator.IsCNPJ(cnpj)
			require.NoError(t, err)
			assert.False(t, ok, "CNPJ should be invalid: %q", cnpj)
		}
	})

	t.Run("empty input returns error", func(t *testing.T) {
		ok, err := validator.IsCNPJ("")
		require.ErrorIs(t, err, validator.ErrEmptyInput)
		assert.False(t, ok)
	})
}
