package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8050", cfg.GetServerAddr())
	assert.Equal(t, ';', cfg.Data.Delimiter)
	assert.Equal(t, 5, cfg.Dashboard.TopPerNetwork)
	assert.Equal(t, 20, cfg.Dashboard.PieUnfilteredLimit)
	assert.Equal(t, 5, cfg.Dashboard.PieFilteredLimit)
	assert.Equal(t, "open-street-map", cfg.Map.Style)
	assert.Equal(t, 6.0, cfg.Map.Zoom)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvFileAndEnvironment(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9000\nDATA_TRAFFIC_PATH=/data/traffic.csv\nDATA_DELIMITER=,\nAPI_ENV=production\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DASHBOARD_TOP_PER_NETWORK", "3")

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/data/traffic.csv", cfg.Data.TrafficPath)
	assert.Equal(t, ',', cfg.Data.Delimiter)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Dashboard.TopPerNetwork)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "multi-char delimiter", key: "DATA_DELIMITER", val: ";;"},
		{name: "zero per-network limit", key: "DASHBOARD_TOP_PER_NETWORK", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
