package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/tuckshop/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// PostgresBackend grava cada coleção como uma linha jsonb da tabela
// store_collections
type PostgresBackend struct {
	db *database.PostgresDB
}

// NewPostgresBackend cria o backend sobre a conexão informada. A tabela
// deve existir (database.RunMigrations).
func NewPostgresBackend(db *database.PostgresDB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

// Load implementa Backend.Load
func (b *PostgresBackend) Load(ctx context.Context, collection string) ([]byte, bool, error) {
	var data string
	err := b.db.Pool().QueryRow(ctx,
		`SELECT data::text FROM store_collections WHERE name = $1`,
		collection).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("erro ao buscar coleção: %w", err)
	}
	return []byte(data), true, nil
}

// Save implementa Backend.Save numa única transação
func (b *PostgresBackend) Save(ctx context.Context, writes ...Write) error {
	if len(writes) == 0 {
		return nil
	}
	return b.db.Transaction(ctx, func(tx pgx.Tx) error {
		for _, w := range writes {
			_, err := tx.Exec(ctx, `
				INSERT INTO store_collections (name, data, updated_at)
				VALUES ($1, $2::jsonb, NOW())
				ON CONFLICT (name) DO UPDATE
				SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
				w.Collection, string(w.Data))
			if err != nil {
				return fmt.Errorf("erro ao gravar coleção %s: %w", w.Collection, err)
			}
		}
		return nil
	})
}

// Close implementa Backend.Close
func (b *PostgresBackend) Close() error {
	b.db.Close()
	return nil
}
