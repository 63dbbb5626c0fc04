package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"menu": map[string]any{
			"fetchTimeout": "5s",
		},
		"redis": map[string]any{
			"keyPrefix": "brewmenu:",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MENU_FETCHTIMEOUT", want: "menu.fetchTimeout"},
		{envKey: "REDIS_KEYPREFIX", want: "redis.keyPrefix"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Menu)
	assert.Equal(t, 5*time.Second, cfg.Menu.FetchTimeout)
	assert.Equal(t, "en", cfg.Menu.DefaultLanguage)
	assert.Equal(t, "$", cfg.Menu.CurrencySymbol)
	assert.Equal(t, "Coffee Corner", cfg.Shop.DefaultName)
	assert.Equal(t, DriverSQLite, cfg.Persistence.Driver)
	assert.Equal(t, ProductStoreSQL, cfg.Persistence.ProductStore)
	assert.Equal(t, "noop", cfg.PubSub.Provider)
	assert.Equal(t, "mem://", cfg.Media.BucketURL)
	assert.Equal(t, 6, cfg.Auth.PasswordMinLength)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Menu: &MenuConfig{FetchTimeout: 2 * time.Second, DefaultLanguage: "vi"},
		Shop: &ShopConfig{DefaultName: "Tea Hut"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 2*time.Second, cfg.Menu.FetchTimeout)
	assert.Equal(t, "vi", cfg.Menu.DefaultLanguage)
	assert.Equal(t, "Tea Hut", cfg.Shop.DefaultName)
}

func TestAuthConfig_IsAdminEmail(t *testing.T) {
	cfg := &AuthConfig{AdminEmails: []string{"Owner@Example.com"}}

	assert.True(t, cfg.IsAdminEmail("owner@example.com"))
	assert.False(t, cfg.IsAdminEmail("guest@example.com"))

	var nilCfg *AuthConfig
	assert.False(t, nilCfg.IsAdminEmail("owner@example.com"))
}
