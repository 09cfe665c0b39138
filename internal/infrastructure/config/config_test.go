package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shopsync", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "shopsync:", cfg.Cache.KeyPrefix)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ListTTL)
	assert.Equal(t, "2026-01", cfg.Shopify.APIVersion)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SHOPSYNC_DATABASE_PASSWORD", "secret")
	t.Setenv("SHOPSYNC_APP_ENV", "production")
	t.Setenv("SHOPSYNC_SHOPIFY_STORE_DOMAIN", "demo.myshopify.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Database.Password)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "demo.myshopify.com", cfg.Shopify.StoreDomain)
}

func TestValidate(t *testing.T) {
	t.Run("idle conns cannot exceed open conns", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Database.MaxIdleConns = 50
		cfg.Database.MaxOpenConns = 10

		assert.Error(t, cfg.validate())
	})

	t.Run("credentials require a store domain", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Shopify.AccessToken = "shpat_abc123"

		assert.Error(t, cfg.validate())
	})

	t.Run("log format is checked", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Log.Format = "yaml"

		assert.Error(t, cfg.validate())
	})
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "app",
		Password: "p@ss/word",
		DBName:   "catalog",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word", "password must be escaped")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
