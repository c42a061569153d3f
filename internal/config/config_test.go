package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, errLoad := LoadConfig(t.TempDir())
	require.NoError(t, errLoad)

	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, 30, cfg.DefaultDuration)
	require.Equal(t, 15, cfg.SlotStep)
	require.Equal(t, []string{"*"}, cfg.AllowOrigins)
	require.Equal(t, time.UTC, cfg.Location())
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t,
		os.WriteFile(
			filepath.Join(dir, "meetfind.yaml"),
			[]byte("ENV: production\nDEFAULT_DURATION: 45\nTIMEZONE: Europe/Bucharest\n"),
			0o600,
		),
	)

	t.Setenv("APP_PORT", "9090")

	cfg, errLoad := LoadConfig(dir)
	require.NoError(t, errLoad)

	require.True(t, cfg.IsProduction())
	require.Equal(t, 45, cfg.DefaultDuration)
	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, "Europe/Bucharest", cfg.Location().String())
}

func TestErrorsConfig(t *testing.T) {
	t.Run(
		"1. non positive duration",
		func(t *testing.T) {
			t.Setenv("DEFAULT_DURATION", "0")

			cfg, errLoad := LoadConfig(t.TempDir())
			require.Error(t, errLoad)
			require.Nil(t, cfg)
		},
	)

	t.Run(
		"2. unknown timezone",
		func(t *testing.T) {
			t.Setenv("TIMEZONE", "Mars/Olympus")

			cfg, errLoad := LoadConfig(t.TempDir())
			require.Error(t, errLoad)
			require.Nil(t, cfg)
		},
	)
}
