package db

import (
	"testing"

	"storefront/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	got := dsn(config.Config{PostgresHost: "db", PostgresPort: 5433, PostgresUser: "shop"})

	assert.Equal(t, "host=db port=5433 user=shop password=postgres dbname=storefront sslmode=disable", got)
}
