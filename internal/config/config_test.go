package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := New()
	cfg.Postgres.User = "orders"
	cfg.Postgres.Password = "secret"
	cfg.Auth.SymmetricKey = strings.Repeat("ab", 32)
	return cfg
}

func failedFields(t *testing.T, err error) []string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.StructNamespace())
	}
	return fields
}

func TestConfig_Defaults(t *testing.T) {
	cfg := validConfig()

	assert.NoError(t, cfg.Validate())
	assert.NoError(t, cfg.ValidateOrders())
	assert.NoError(t, cfg.ValidateNotifications())
}

func TestConfig_ValidateOrders(t *testing.T) {
	cfg := validConfig()
	cfg.Kafka.GroupID = ""
	cfg.Kafka.ArticleTopic = ""
	cfg.Notifications = Notifications{}

	assert.NoError(t, cfg.ValidateOrders())
	assert.Error(t, cfg.Validate())

	cfg.Catalog.BaseURL = ""
	assert.Contains(t, failedFields(t, cfg.ValidateOrders()), "Config.Catalog.BaseURL")
}

func TestConfig_ValidateNotifications(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog = Catalog{}
	cfg.Cache = Cache{}

	assert.NoError(t, cfg.ValidateNotifications())
	assert.Error(t, cfg.Validate())

	cfg.Kafka.GroupID = ""
	cfg.Notifications.LowStockThreshold = 0
	fields := failedFields(t, cfg.ValidateNotifications())
	assert.Contains(t, fields, "Config.Kafka.GroupID")
	assert.Contains(t, fields, "Config.Notifications.LowStockThreshold")
}
