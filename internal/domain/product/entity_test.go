package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    error
	}{
		{"ok", Product{ID: "p1", Name: "Juice"}, nil},
		{"sem id", Product{Name: "Juice"}, ErrEmptyID},
		{"sem nome", Product{ID: "p1"}, ErrEmptyName},
		{"preço negativo", Product{ID: "p1", Name: "Juice", SellingPrice: decimal.NewFromInt(-1)}, ErrNegativePrice},
		{"variação repetida", Product{ID: "p1", Name: "Shirt", Variants: []Variant{{ID: "s"}, {ID: "s"}}}, ErrDuplicateVariant},
		{"composto vazio", Product{ID: "p1", Name: "Combo", IsComposite: true}, ErrMissingComponents},
		{"componente zero", Product{ID: "p1", Name: "Combo", IsComposite: true, Components: []Component{{ProductID: "p2"}}}, ErrInvalidComponentQty},
		{"contém a si mesmo", Product{ID: "p1", Name: "Combo", IsComposite: true, Components: []Component{{ProductID: "p1", Quantity: 1}}}, ErrSelfComponent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.product.Validate(), tt.want)
		})
	}
}

func TestStockRules(t *testing.T) {
	shirt := &Product{ID: "p6", TrackStock: true, Variants: []Variant{{ID: "s", StockQuantity: 4}, {ID: "m", StockQuantity: 3}}}
	assert.Equal(t, 7, shirt.TotalStock())
	assert.False(t, shirt.IsStockTracked())
	assert.True(t, shirt.IsLowStock())
	assert.NotNil(t, shirt.FindVariant("m"))
	assert.Nil(t, shirt.FindVariant("xl"))

	chips := &Product{ID: "p3", TrackStock: true, StockQuantity: 5, MinStockLevel: 5}
	assert.True(t, chips.IsStockTracked())
	assert.False(t, chips.IsLowStock())

	service := &Product{ID: "svc", TrackStock: false}
	assert.False(t, service.IsLowStock())

	combo := &Product{ID: "p5", TrackStock: true, IsComposite: true}
	assert.False(t, combo.IsLowStock())
}
