package product

import (
	"context"
)

// Repository define a interface de persistência da coleção de produtos.
// A coleção é lida e gravada por inteiro (último a gravar vence).
type Repository interface {
	// FindAll retorna todos os produtos
	FindAll(ctx context.Context) ([]*Product, error)

	// ReplaceAll substitui a coleção inteira
	ReplaceAll(ctx context.Context, products []*Product) error
}

// CategoryRepository define a interface de persistência das categorias
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*Category, error)
	ReplaceAll(ctx context.Context, categories []*Category) error
}
