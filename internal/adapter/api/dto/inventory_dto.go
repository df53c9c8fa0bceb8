package dto

import (
	"github.com/hugohenrick/tuckshop/internal/domain/inventory"
)

// AdjustmentRequest representa um ajuste manual de estoque
type AdjustmentRequest struct {
	ProductID      string           `json:"product_id" binding:"required"`
	VariantID      string           `json:"variant_id"`
	QuantityChange int              `json:"quantity_change" binding:"required"`
	Reason         inventory.Reason `json:"reason" binding:"required"`
	Note           string           `json:"note"`
}

// StocktakeRequest representa a contagem física de um item
type StocktakeRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	VariantID   string `json:"variant_id"`
	ActualStock *int   `json:"actual_stock" binding:"required"`
	Note        string `json:"note"`
}
