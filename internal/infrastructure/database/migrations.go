package database

import (
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func newMigrate(config *PostgresConfig) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir migrações: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, config.ConnectionURL())
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrate: %w", err)
	}
	return m, nil
}

// RunMigrations aplica as migrações pendentes
func RunMigrations(config *PostgresConfig) error {
	m, err := newMigrate(config)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Printf("Migrações aplicadas (versão %d, dirty=%t)", version, dirty)
	return nil
}

// RollbackMigrations desfaz todas as migrações
func RollbackMigrations(config *PostgresConfig) error {
	m, err := newMigrate(config)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao desfazer migrações: %w", err)
	}
	return nil
}
