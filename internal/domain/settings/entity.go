package settings

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidCurrency = errors.New("moeda não suportada")

// CurrencyCode representa a moeda usada na exibição de valores
type CurrencyCode string

const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyBWP CurrencyCode = "BWP"
	CurrencyZAR CurrencyCode = "ZAR"
)

var symbols = map[CurrencyCode]string{
	CurrencyUSD: "$",
	CurrencyBWP: "P",
	CurrencyZAR: "R",
}

// Valid verifica se a moeda é suportada
func (c CurrencyCode) Valid() bool {
	_, ok := symbols[c]
	return ok
}

// Symbol retorna o símbolo da moeda
func (c CurrencyCode) Symbol() string {
	return symbols[c]
}

// Settings são as configurações da cantina
type Settings struct {
	Currency CurrencyCode `json:"currency"`
}

// Default retorna as configurações iniciais
func Default() Settings {
	return Settings{Currency: CurrencyUSD}
}

// Validate verifica as configurações
func (s Settings) Validate() error {
	if !s.Currency.Valid() {
		return ErrInvalidCurrency
	}
	return nil
}

// FormatMoney formata um valor com 2 casas decimais. O arredondamento só
// acontece aqui, na exibição.
func (s Settings) FormatMoney(amount decimal.Decimal) string {
	return s.Currency.Symbol() + amount.StringFixed(2)
}

// Repository define a interface de persistência das configurações
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}
