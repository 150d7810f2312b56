package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "tunezone-dev-secret", cfg.JWT.Secret, "en development se usa un secret por defecto")
	assert.Equal(t, "memory", cfg.Catalog.Source)
	assert.Equal(t, 24*time.Hour, cfg.Session.DealerTTL)
	assert.Equal(t, 2*time.Hour, cfg.Session.GuestTTL)
	assert.Equal(t, 300*time.Second, cfg.Payment.Countdown)
	assert.Equal(t, 5*time.Second, cfg.Notify.DefaultDuration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestFromViper_ValoresDesdeEntorno(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")
	v.Set("JWT_SECRET", "s3cret")
	v.Set("HTTP_PORT", "9090")
	v.Set("PAYMENT_SUCCESS_RATE", "0.75")
	v.Set("SESSION_GUEST_TTL_MINUTES", "30")
	v.Set("CATALOG_SOURCE", "Postgres")
	v.Set("SWAGGER_ENABLED", "false")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.InDelta(t, 0.75, cfg.Payment.SuccessRate, 1e-9)
	assert.Equal(t, 30*time.Minute, cfg.Session.GuestTTL)
	assert.Equal(t, "postgres", cfg.Catalog.Source)
	assert.False(t, cfg.App.SwaggerEnabled)
}

func TestFromViper_ProduccionSinSecret_Falla(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestValidate_InvitadoMasLargoQueDistribuidor(t *testing.T) {
	v := viper.New()
	v.Set("SESSION_GUEST_TTL_MINUTES", "5000")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "tz", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/tz?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
