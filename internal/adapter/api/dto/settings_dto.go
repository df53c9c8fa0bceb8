package dto

import (
	"github.com/hugohenrick/tuckshop/internal/domain/settings"
)

// SettingsRequest representa a alteração das configurações
type SettingsRequest struct {
	Currency settings.CurrencyCode `json:"currency" binding:"required"`
}

// SimulationRequest representa a geração de dados de demonstração
type SimulationRequest struct {
	Students int `json:"students" binding:"gte=0"`
	Days     int `json:"days" binding:"gte=0"`
}
