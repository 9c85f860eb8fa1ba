package drift

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "drift.yaml")

	configContent := `
site_id: "site_1"
endpoint_base: "https://analytics.example.com"
respect_privacy_signals: false
max_batch_size: 20
flush_interval_ms: 250
retry_delay_ms: 1000
dedup_window_ms: 50
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "site_1", cfg.SiteID)
	assert.Equal(t, "https://analytics.example.com", cfg.EndpointBase)
	require.NotNil(t, cfg.RespectPrivacySignals)
	assert.False(t, *cfg.RespectPrivacySignals)
	assert.Equal(t, 20, cfg.MaxBatchSize)
	assert.Equal(t, 250*time.Millisecond, cfg.FlushInterval)
	assert.Equal(t, time.Second, cfg.RetryDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.DedupWindow)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "drift.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("site_id: from_file\n"), 0644))

	t.Setenv("DRIFT_SITE_ID", "from_env")
	t.Setenv("DRIFT_ENDPOINT", "https://env.example.com")
	t.Setenv("DRIFT_DISABLED", "1")

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.SiteID)
	assert.Equal(t, "https://env.example.com", cfg.EndpointBase)
	assert.True(t, cfg.Disabled)
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	t.Setenv("DRIFT_SITE_ID", "env_site")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env_site", cfg.SiteID)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "drift.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("site_id: [broken\n"), 0644))

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
}

func TestLoadConfig_DefaultsApplyInEmitter(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "drift.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("site_id: site_1\n"), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	e := NewEmitter(cfg)
	assert.Equal(t, 10, e.config.MaxBatchSize)
	assert.Equal(t, 500*time.Millisecond, e.config.FlushInterval)
	assert.Equal(t, 2*time.Second, e.config.RetryDelay)
	assert.Equal(t, 100*time.Millisecond, e.config.DedupWindow)
}
