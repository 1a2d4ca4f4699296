package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalConfig() *StructuredConfig {
	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = "sign-key"
	cfg.Storage.DB.DSN = "postgres://localhost:5432/hotels"
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := minimalConfig()
	cfg.applyDefaults()

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "hotelkeeper", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10*time.Minute, cfg.App.ResetTokenDuration)
	assert.Equal(t, "public/uploads/hotels", cfg.Storage.Files.UploadDir)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := minimalConfig()
	cfg.Server.HTTPAddress = "0.0.0.0:9999"
	cfg.App.ResetTokenDuration = 5 * time.Minute

	cfg.applyDefaults()

	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Minute, cfg.App.ResetTokenDuration)
}

// Secrets are never defaulted; their absence must fail validation so the
// process refuses to start.
func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := minimalConfig()
		cfg.applyDefaults()
		require.NoError(t, cfg.validate())
	})

	t.Run("missing token sign key", func(t *testing.T) {
		cfg := minimalConfig()
		cfg.App.TokenSignKey = ""
		cfg.applyDefaults()
		assert.ErrorIs(t, cfg.validate(), ErrNoTokenSignKey)
	})

	t.Run("missing database DSN", func(t *testing.T) {
		cfg := minimalConfig()
		cfg.Storage.DB.DSN = ""
		cfg.applyDefaults()
		assert.ErrorIs(t, cfg.validate(), ErrNoDatabaseDSN)
	})
}

func TestEnvParsing(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env/hotels")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7070")
	t.Setenv("EMAIL_HOST", "smtp.example.com")
	t.Setenv("EMAIL_PORT", "587")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://env/hotels", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, "smtp.example.com", cfg.Email.Host)
	assert.Equal(t, 587, cfg.Email.Port)
}
