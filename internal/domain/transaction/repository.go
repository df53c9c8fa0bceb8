package transaction

import (
	"context"
)

// Repository define a interface de persistência do histórico de vendas
type Repository interface {
	// FindAll retorna todas as vendas
	FindAll(ctx context.Context) ([]*Transaction, error)

	// ReplaceAll substitui a coleção inteira
	ReplaceAll(ctx context.Context, txs []*Transaction) error

	// Append acrescenta vendas ao final da coleção
	Append(ctx context.Context, txs ...*Transaction) error
}
