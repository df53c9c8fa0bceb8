package employee

import (
	"context"
)

// Repository define a interface de persistência da coleção de funcionários
type Repository interface {
	// FindAll retorna todos os funcionários
	FindAll(ctx context.Context) ([]*Employee, error)

	// ReplaceAll substitui a coleção inteira
	ReplaceAll(ctx context.Context, employees []*Employee) error
}
