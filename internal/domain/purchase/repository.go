package purchase

import (
	"context"
)

// Repository define a interface de persistência dos pedidos de compra
type Repository interface {
	FindAll(ctx context.Context) ([]*Order, error)
	ReplaceAll(ctx context.Context, orders []*Order) error
	Append(ctx context.Context, orders ...*Order) error
}

// SupplierRepository define a interface de persistência dos fornecedores
type SupplierRepository interface {
	FindAll(ctx context.Context) ([]*Supplier, error)
	ReplaceAll(ctx context.Context, suppliers []*Supplier) error
}
