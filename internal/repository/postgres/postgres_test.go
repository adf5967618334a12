package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecotravel-admin/internal/config"
	"github.com/ecotravel-admin/internal/repository/postgres"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "admin",
		Password: "secret",
		DBName:   "ecotravel_admin",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=admin password=secret dbname=ecotravel_admin sslmode=disable",
		postgres.DSN(cfg))
}
