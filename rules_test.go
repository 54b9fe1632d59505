package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validator "github.com/multiform-validator/multiform-validator-go"
)

func TestApplyWithChecks(t *testing.T) {
	t.Run("all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Email("email", "john.doe@example.com"),
			validator.CPF("document", "111.444.777-35"),
			validator.CEP("postal_code", "12345-678"),
			validator.Port("port", 8080),
		)
		assert.NoError(t, err)
	})

	t.Run("failures are aggregated per field", func(t *testing.T) {
		err := validator.Apply(
			validator.Email("email", "john@1example.com"),
			validator.MD5("checksum", "not-a-hash"),
			validator.Time("starts_at", "24:00"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Len(t, verrs, 3)
		assert.True(t, verrs.Has("email"))
		assert.True(t, verrs.Has("checksum"))
		assert.True(t, verrs.Has("starts_at"))
		assert.ElementsMatch(t, []string{"email", "checksum", "starts_at"}, verrs.Fields())
	})

	t.Run("empty input fails the rule instead of erroring", func(t *testing.T) {
		err := validator.Apply(
			validator.ASCII("name", ""),
			validator.Base64("payload", ""),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Len(t, verrs, 2)
	})

	t.Run("translation keys are preserved", func(t *testing.T) {
		err := validator.Apply(validator.CNPJ("company_id", "11222333000182"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.cnpj", verrs[0].TranslationKey)
		assert.Equal(t, "company_id", verrs[0].TranslationValues["field"])
	})

	t.Run("mixed passing and failing rules", func(t *testing.T) {
		err := validator.Apply(
			validator.Number("quantity", "42"),
			validator.Decimal("price", "19"),
			validator.PostalCode("zip", "K1A 0B1"),
			validator.PortString("port", "65536"),
			validator.MACAddress("device", "00:1B:44:11:3A:B7"),
			validator.Date("shipped_at", "2023-01-15"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.ElementsMatch(t, []string{"price", "port"}, verrs.Fields())
	})
}
