package settings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$4.50", Default().FormatMoney(decimal.RequireFromString("4.5")))
	assert.Equal(t, "P10.00", Settings{Currency: CurrencyBWP}.FormatMoney(decimal.NewFromInt(10)))
	assert.Equal(t, "R0.34", Settings{Currency: CurrencyZAR}.FormatMoney(decimal.RequireFromString("0.335")))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.ErrorIs(t, Settings{Currency: "EUR"}.Validate(), ErrInvalidCurrency)
}
