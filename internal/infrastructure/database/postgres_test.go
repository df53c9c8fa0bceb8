package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionURL_FromFields(t *testing.T) {
	c := &PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "shop",
		Password: "p@ss",
		Database: "tuckshop",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://shop:p%40ss@db:5433/tuckshop?sslmode=disable", c.ConnectionURL())
}

func TestConnectionURL_PrefersURL(t *testing.T) {
	c := &PostgresConfig{URL: "postgres://u:p@h/x", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@h/x", c.ConnectionURL())
}

func TestNewPostgresConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "")

	c := NewPostgresConfigFromEnv()
	assert.Equal(t, "pg", c.Host)
	assert.Equal(t, 6543, c.Port)
	assert.Equal(t, "tuckshop", c.Database)
	assert.Equal(t, "disable", c.SSLMode)
	assert.Equal(t, int32(10), c.MaxConnections)
}
