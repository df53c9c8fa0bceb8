package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod representa a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
)

// Valid verifica se a forma de pagamento é conhecida
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWallet:
		return true
	}
	return false
}

// Status representa o estado da venda
type Status string

const (
	StatusCompleted Status = "completed"
	StatusVoided    Status = "voided"
	StatusRefunded  Status = "refunded"
)

// Item é uma linha da venda com o preço fixado no momento da venda
type Item struct {
	ProductID   string          `json:"product_id"`
	VariantID   string          `json:"variant_id,omitempty"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
}

// LineTotal retorna preço × quantidade
func (i Item) LineTotal() decimal.Decimal {
	return i.PriceAtSale.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Transaction representa uma venda registrada. É criada uma única vez por
// liquidação e não é alterada depois, exceto pelo status.
type Transaction struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	EmployeeID    string          `json:"employee_id"`
	StudentID     string          `json:"student_id,omitempty"`
	Items         []Item          `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        Status          `json:"status"`
}

// IsCompleted verifica se a venda conta para o faturamento
func (t *Transaction) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// ItemsTotal recalcula Σ(preço × quantidade) das linhas
func (t *Transaction) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range t.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
