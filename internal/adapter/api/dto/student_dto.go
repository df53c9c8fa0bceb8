package dto

import (
	"github.com/shopspring/decimal"
)

// StudentRequest representa a requisição de cadastro/alteração de aluno.
// InitialBalance só é usado no cadastro.
type StudentRequest struct {
	Name               string          `json:"name" binding:"required"`
	Grade              string          `json:"grade"`
	InitialBalance     decimal.Decimal `json:"initial_balance"`
	DailySpendLimit    decimal.Decimal `json:"daily_spend_limit"`
	RestrictedProducts []string        `json:"restricted_products"`
	ImageURL           string          `json:"image_url"`
}

// TopUpRequest representa uma recarga de carteira
type TopUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
