package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-status-reset/internal/domain"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 0, cfg.Reset.ScopeID)
	assert.Equal(t, "configurable", cfg.Reset.ProductType)
	assert.Equal(t, 5*time.Second, cfg.Reset.SafetyPause)
	assert.Equal(t, os.TempDir(), cfg.Reset.ReportDir)
	assert.False(t, cfg.Reset.ContinueOnError)
	assert.Equal(t, "postgres://postgres:@localhost:5432/catalog?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Valores(t *testing.T) {
	v := viper.New()
	v.Set("RESET_SCOPE_ID", "3")
	v.Set("RESET_SAFETY_PAUSE", "250ms")
	v.Set("RESET_CONTINUE_ON_ERROR", "true")
	v.Set("RESET_REPORT_DIR", "/var/tmp")
	v.Set("DATABASE_URL", "postgres://u:p@db:5432/shop")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Reset.ScopeID)
	assert.Equal(t, 250*time.Millisecond, cfg.Reset.SafetyPause)
	assert.True(t, cfg.Reset.ContinueOnError)
	assert.Equal(t, "/var/tmp", cfg.Reset.ReportDir)
	assert.Equal(t, "postgres://u:p@db:5432/shop", cfg.DB.ConnectionString())
}

func TestFromViper_PausaEnSegundos(t *testing.T) {
	v := viper.New()
	v.Set("RESET_SAFETY_PAUSE", "0")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Reset.SafetyPause)
}

func TestFromViper_Invalidos(t *testing.T) {
	tests := []struct {
		name, key, val string
	}{
		{"scope negativo", "RESET_SCOPE_ID", "-1"},
		{"scope no numérico", "RESET_SCOPE_ID", "abc"},
		{"scope decimal", "RESET_SCOPE_ID", "1.5"},
		{"scope con sufijo", "RESET_SCOPE_ID", "3a"},
		{"puerto no numérico", "DB_PORT", "postgres"},
		{"pausa ilegible", "RESET_SAFETY_PAUSE", "pronto"},
		{"tipo vacío", "RESET_PRODUCT_TYPE", "  "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tc.key, tc.val)
			cfg, err := fromViper(v)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, cfg)
		})
	}
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "shop", SSLMode: "require"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/shop?sslmode=require", c.DSN())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("RESET_SCOPE_ID", "7")
	t.Setenv("RESET_PRODUCT_TYPE", "bundle")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Reset.ScopeID)
	assert.Equal(t, "bundle", cfg.Reset.ProductType)
}
