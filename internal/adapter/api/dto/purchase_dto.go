package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/tuckshop/internal/domain/purchase"
)

// PurchaseItemRequest representa uma linha do pedido de compra
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	VariantID string          `json:"variant_id"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Cost      decimal.Decimal `json:"cost"`
}

// PurchaseOrderRequest representa um novo pedido de compra
type PurchaseOrderRequest struct {
	SupplierID string                `json:"supplier_id" binding:"required"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ToItems converte as linhas da requisição
func (r PurchaseOrderRequest) ToItems() []purchase.Item {
	items := make([]purchase.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, purchase.Item{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
			Cost:      it.Cost,
		})
	}
	return items
}

// ReceiveResponse informa se o recebimento alterou o estoque
type ReceiveResponse struct {
	Order   *purchase.Order `json:"order"`
	Applied bool            `json:"applied"`
}

// SupplierRequest representa um novo fornecedor
type SupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email" binding:"omitempty,email"`
}
