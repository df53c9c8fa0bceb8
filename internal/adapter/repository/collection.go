package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection é uma coleção de entidades gravada como um único documento JSON.
// Leitura e gravação são sempre da coleção inteira.
type Collection[T any] struct {
	name    string
	backend Backend
}

// NewCollection cria uma coleção sobre o backend
func NewCollection[T any](name string, backend Backend) *Collection[T] {
	return &Collection[T]{
		name:    name,
		backend: backend,
	}
}

// Name retorna o nome da coleção no backend
func (c *Collection[T]) Name() string {
	return c.name
}

// FindAll retorna todos os itens; uma coleção inexistente é vazia
func (c *Collection[T]) FindAll(ctx context.Context) ([]T, error) {
	data, found, err := c.backend.Load(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler coleção %s: %w", c.name, err)
	}

	items := []T{}
	if !found || len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCollectionCorrupt, c.name, err)
	}
	return items, nil
}

// ReplaceAll substitui a coleção inteira
func (c *Collection[T]) ReplaceAll(ctx context.Context, items []T) error {
	w, err := c.stage(items)
	if err != nil {
		return err
	}
	if err := c.backend.Save(ctx, w); err != nil {
		return fmt.Errorf("erro ao gravar coleção %s: %w", c.name, err)
	}
	return nil
}

// Append lê a coleção, acrescenta os itens e grava tudo de volta
func (c *Collection[T]) Append(ctx context.Context, items ...T) error {
	all, err := c.FindAll(ctx)
	if err != nil {
		return err
	}
	return c.ReplaceAll(ctx, append(all, items...))
}

func (c *Collection[T]) stage(items []T) (Write, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return Write{}, fmt.Errorf("erro ao serializar coleção %s: %w", c.name, err)
	}
	return Write{Collection: c.name, Data: data}, nil
}

// Document é um único valor gravado sob um nome, com valor padrão quando
// ainda não existe
type Document[T any] struct {
	name     string
	backend  Backend
	fallback func() T
}

// NewDocument cria um documento sobre o backend
func NewDocument[T any](name string, backend Backend, fallback func() T) *Document[T] {
	return &Document[T]{
		name:     name,
		backend:  backend,
		fallback: fallback,
	}
}

// Get retorna o documento ou o valor padrão
func (d *Document[T]) Get(ctx context.Context) (T, error) {
	value := d.fallback()
	data, found, err := d.backend.Load(ctx, d.name)
	if err != nil {
		return value, fmt.Errorf("erro ao ler documento %s: %w", d.name, err)
	}
	if !found {
		return value, nil
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return d.fallback(), fmt.Errorf("%w: %s: %v", ErrCollectionCorrupt, d.name, err)
	}
	return value, nil
}

// Save grava o documento
func (d *Document[T]) Save(ctx context.Context, value T) error {
	w, err := d.stage(value)
	if err != nil {
		return err
	}
	if err := d.backend.Save(ctx, w); err != nil {
		return fmt.Errorf("erro ao gravar documento %s: %w", d.name, err)
	}
	return nil
}

func (d *Document[T]) stage(value T) (Write, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return Write{}, fmt.Errorf("erro ao serializar documento %s: %w", d.name, err)
	}
	return Write{Collection: d.name, Data: data}, nil
}
