package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/tuckshop/internal/domain/product"
)

// VariantRequest representa uma variação na requisição de produto
type VariantRequest struct {
	ID            string          `json:"id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	SKU           string          `json:"sku"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQuantity int             `json:"stock_quantity"`
}

// ComponentRequest representa um componente de produto composto
type ComponentRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// ProductRequest representa a requisição de cadastro/alteração de produto
type ProductRequest struct {
	ID            string             `json:"id"`
	Name          string             `json:"name" binding:"required"`
	SKU           string             `json:"sku"`
	CategoryID    string             `json:"category_id"`
	CostPrice     decimal.Decimal    `json:"cost_price"`
	SellingPrice  decimal.Decimal    `json:"selling_price"`
	StockQuantity int                `json:"stock_quantity"`
	MinStockLevel int                `json:"min_stock_level" binding:"gte=0"`
	ImageURL      string             `json:"image_url"`
	Active        *bool              `json:"active"`
	TrackStock    *bool              `json:"track_stock"`
	IsComposite   bool               `json:"is_composite"`
	Variants      []VariantRequest   `json:"variants" binding:"dive"`
	Components    []ComponentRequest `json:"components" binding:"dive"`
}

// ToProduct converte a requisição para a entidade. Active e TrackStock
// ausentes valem true.
func (r ProductRequest) ToProduct(id string) *product.Product {
	p := &product.Product{
		ID:            id,
		Name:          r.Name,
		SKU:           r.SKU,
		CategoryID:    r.CategoryID,
		CostPrice:     r.CostPrice,
		SellingPrice:  r.SellingPrice,
		StockQuantity: r.StockQuantity,
		MinStockLevel: r.MinStockLevel,
		ImageURL:      r.ImageURL,
		Active:        r.Active == nil || *r.Active,
		TrackStock:    r.TrackStock == nil || *r.TrackStock,
		IsComposite:   r.IsComposite,
	}
	for _, v := range r.Variants {
		p.Variants = append(p.Variants, product.Variant{
			ID:            v.ID,
			Name:          v.Name,
			SKU:           v.SKU,
			CostPrice:     v.CostPrice,
			SellingPrice:  v.SellingPrice,
			StockQuantity: v.StockQuantity,
		})
	}
	for _, c := range r.Components {
		p.Components = append(p.Components, product.Component{
			ProductID: c.ProductID,
			VariantID: c.VariantID,
			Quantity:  c.Quantity,
		})
	}
	return p
}

// CategoryRequest representa a requisição de cadastro de categoria
type CategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}
