package student

import (
	"context"
)

// Repository define a interface de persistência da coleção de alunos
type Repository interface {
	// FindAll retorna todos os alunos
	FindAll(ctx context.Context) ([]*Student, error)

	// ReplaceAll substitui a coleção inteira
	ReplaceAll(ctx context.Context, students []*Student) error
}
