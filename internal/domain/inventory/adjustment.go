package inventory

import (
	"context"
	"time"
)

// Reason representa o motivo de um ajuste de estoque
type Reason string

const (
	ReasonDamage         Reason = "damage"
	ReasonReturn         Reason = "return"
	ReasonInventoryCount Reason = "inventory_count"
	ReasonWaste          Reason = "waste"
	ReasonRestock        Reason = "restock"
	ReasonStocktake      Reason = "stocktake"
)

// Valid verifica se o motivo é conhecido
func (r Reason) Valid() bool {
	switch r {
	case ReasonDamage, ReasonReturn, ReasonInventoryCount, ReasonWaste, ReasonRestock, ReasonStocktake:
		return true
	}
	return false
}

// Adjustment é uma entrada do log de auditoria de estoque (somente inclusão)
type Adjustment struct {
	ID             string    `json:"id"`
	Timestamp      time.Time `json:"timestamp"`
	ProductID      string    `json:"product_id"`
	VariantID      string    `json:"variant_id,omitempty"`
	QuantityChange int       `json:"quantity_change"`
	Reason         Reason    `json:"reason"`
	EmployeeID     string    `json:"employee_id"`
	ExpectedStock  *int      `json:"expected_stock,omitempty"` // contagem: estoque do sistema
	ActualStock    *int      `json:"actual_stock,omitempty"`   // contagem: estoque contado
	Note           string    `json:"note,omitempty"`
}

// Repository define a interface de persistência do log de ajustes
type Repository interface {
	FindAll(ctx context.Context) ([]*Adjustment, error)
	ReplaceAll(ctx context.Context, adjustments []*Adjustment) error
	Append(ctx context.Context, adjustments ...*Adjustment) error
}
