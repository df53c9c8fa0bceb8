package purchase

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySupplier     = errors.New("fornecedor não informado")
	ErrEmptyItems        = errors.New("pedido de compra sem itens")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrNegativeCost      = errors.New("custo não pode ser negativo")
	ErrInvalidTransition = errors.New("transição de status inválida")
)

// Status representa o estado do pedido de compra
type Status string

const (
	StatusDraft    Status = "draft"
	StatusOrdered  Status = "ordered"
	StatusReceived Status = "received"
)

// Item é uma linha do pedido de compra
type Item struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id,omitempty"`
	Quantity  int             `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"` // custo unitário
}

// Order representa um pedido de compra a um fornecedor
type Order struct {
	ID         string          `json:"id"`
	SupplierID string          `json:"supplier_id"`
	Date       time.Time       `json:"date"`
	Status     Status          `json:"status"`
	Items      []Item          `json:"items"`
	Total      decimal.Decimal `json:"total"`
	ReceivedAt *time.Time      `json:"received_at,omitempty"`
}

// NewOrder cria um pedido em rascunho, com total calculado pelas linhas
func NewOrder(id, supplierID string, date time.Time, items []Item) (*Order, error) {
	if supplierID == "" {
		return nil, ErrEmptySupplier
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if it.Cost.IsNegative() {
			return nil, ErrNegativeCost
		}
		total = total.Add(it.Cost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return &Order{
		ID:         id,
		SupplierID: supplierID,
		Date:       date,
		Status:     StatusDraft,
		Items:      append([]Item(nil), items...),
		Total:      total,
	}, nil
}

// IsReceived verifica se o pedido já entrou no estoque
func (o *Order) IsReceived() bool {
	return o.Status == StatusReceived
}

// MarkOrdered move o pedido de rascunho para enviado
func (o *Order) MarkOrdered() error {
	if o.Status != StatusDraft {
		return ErrInvalidTransition
	}
	o.Status = StatusOrdered
	return nil
}

// MarkReceived fecha o pedido. A transição é única e não volta atrás.
func (o *Order) MarkReceived(at time.Time) error {
	if o.IsReceived() {
		return ErrInvalidTransition
	}
	o.Status = StatusReceived
	o.ReceivedAt = &at
	return nil
}

// Supplier representa um fornecedor da cantina
type Supplier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
}
