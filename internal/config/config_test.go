package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/userhub")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.True(t, cfg.ProtectWrites)
	require.False(t, cfg.AutoMigrate)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/userhub")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("PROTECT_WRITES", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	require.False(t, cfg.ProtectWrites)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/userhub")
	t.Setenv("JWT_SECRET", "x") // registers cleanup, then drop it entirely
	os.Unsetenv("JWT_SECRET")

	_, err := Load()
	require.Error(t, err)
}
