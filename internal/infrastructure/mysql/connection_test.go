package mysql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"orderdesk/internal/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:            "db",
		Port:            3307,
		User:            "orderdesk",
		Password:        "secret",
		Name:            "orders",
		ConnMaxLifetime: time.Minute,
	})

	assert.Equal(t, "orderdesk:secret@tcp(db:3307)/orders?parseTime=true&loc=UTC", dsn)
}

func TestMigrations_Embedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "00001_create_orders.sql", entries[0].Name())
	assert.Equal(t, "00002_seed_sample_orders.sql", entries[1].Name())
}
