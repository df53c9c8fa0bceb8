package repository

import (
	"context"
	"errors"
	"sync"
)

// Erros específicos do repositório
var (
	ErrCollectionCorrupt = errors.New("coleção com conteúdo inválido")
	ErrBackendClosed     = errors.New("armazenamento fechado")
)

// Write é o conteúdo serializado de uma coleção inteira
type Write struct {
	Collection string
	Data       []byte
}

// Backend guarda blobs por nome de coleção. Save grava todos os blobs
// informados numa única operação.
type Backend interface {
	Load(ctx context.Context, collection string) (data []byte, found bool, err error)
	Save(ctx context.Context, writes ...Write) error
	Close() error
}

// MemoryBackend mantém as coleções em memória. É a implementação de
// referência, usada nos testes e no modo de demonstração.
type MemoryBackend struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemoryBackend cria um backend em memória vazio
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		data: make(map[string][]byte),
	}
}

// Load implementa Backend.Load
func (b *MemoryBackend) Load(ctx context.Context, collection string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, false, ErrBackendClosed
	}
	data, ok := b.data[collection]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Save implementa Backend.Save
func (b *MemoryBackend) Save(ctx context.Context, writes ...Write) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBackendClosed
	}
	for _, w := range writes {
		b.data[w.Collection] = append([]byte(nil), w.Data...)
	}
	return nil
}

// Close implementa Backend.Close
func (b *MemoryBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}
