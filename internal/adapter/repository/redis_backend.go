package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisBackend grava cada coleção numa chave "<namespace>:<coleção>"
type RedisBackend struct {
	client    *redis.Client
	namespace string
}

// NewRedisBackend conecta ao Redis a partir de uma URL redis://
func NewRedisBackend(ctx context.Context, redisURL, namespace string) (*RedisBackend, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("URL do Redis inválida: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
	}

	return NewRedisBackendFromClient(client, namespace), nil
}

// NewRedisBackendFromClient usa um cliente já configurado
func NewRedisBackendFromClient(client *redis.Client, namespace string) *RedisBackend {
	if namespace == "" {
		namespace = "tuckshop"
	}
	return &RedisBackend{
		client:    client,
		namespace: namespace,
	}
}

func (b *RedisBackend) key(collection string) string {
	return b.namespace + ":" + collection
}

// Load implementa Backend.Load
func (b *RedisBackend) Load(ctx context.Context, collection string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, b.key(collection)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save implementa Backend.Save com MULTI/EXEC
func (b *RedisBackend) Save(ctx context.Context, writes ...Write) error {
	if len(writes) == 0 {
		return nil
	}
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, w := range writes {
			pipe.Set(ctx, b.key(w.Collection), w.Data, 0)
		}
		return nil
	})
	return err
}

// Close implementa Backend.Close
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
