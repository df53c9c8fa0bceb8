package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/tuckshop/internal/domain/transaction"
)

// CartLineRequest representa uma linha do carrinho
type CartLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity" binding:"required,gt=0,lte=10000"`
}

// CheckoutRequest representa uma venda a liquidar. O funcionário vem do token.
type CheckoutRequest struct {
	Items         []CartLineRequest         `json:"items" binding:"required,min=1,dive"`
	StudentID     string                    `json:"student_id"`
	PaymentMethod transaction.PaymentMethod `json:"payment_method" binding:"required,oneof=cash card wallet"`
	Discount      decimal.Decimal           `json:"discount"`
}
