package postgres

import (
	"testing"

	"github.com/SergeyBogomolovv/orderflow/internal/config"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	for _, schema := range []Schema{OrdersSchema, NotificationsSchema} {
		t.Run(schema.Dir, func(t *testing.T) {
			src, err := iofs.New(migrationsFS, schema.Dir)
			require.NoError(t, err)
			defer src.Close()

			version, err := src.First()
			require.NoError(t, err)
			assert.Equal(t, uint(1), version)

			up, _, err := src.ReadUp(version)
			require.NoError(t, err)
			up.Close()

			down, _, err := src.ReadDown(version)
			require.NoError(t, err)
			down.Close()
		})
	}
	assert.NotEqual(t, OrdersSchema.Table, NotificationsSchema.Table)
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.Postgres{
		Host: "db", Port: 5432, User: "app", Password: "secret", DBName: "orders", SSLMode: "disable",
	})
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=orders sslmode=disable", dsn)
}
