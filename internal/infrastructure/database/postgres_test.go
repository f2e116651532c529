package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostgresConfigURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg := &PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "app",
		Password: "p@ss word",
		Database: "parceiros",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://app:p%40ss%20word@db:5433/parceiros?sslmode=disable", cfg.URL())
}

func TestPostgresConfigURLPrefersDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://outro/banco")

	assert.Equal(t, "postgres://outro/banco", (&PostgresConfig{Host: "db"}).URL())
}

func TestNewPostgresConfigFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "teste")
	t.Setenv("DB_MAX_CONNECTIONS", "")

	cfg := NewPostgresConfigFromEnv()
	assert.Equal(t, "pg", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, "teste", cfg.Database)
	assert.Equal(t, int32(10), cfg.MaxConnections)
}

func TestMigrationsAreEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
