package drift

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML shape accepted by LoadConfig.
type FileConfig struct {
	SiteID                string `yaml:"site_id"`
	EndpointBase          string `yaml:"endpoint_base"`
	RespectPrivacySignals *bool  `yaml:"respect_privacy_signals"`
	Disabled              bool   `yaml:"disabled"`
	MaxBatchSize          int    `yaml:"max_batch_size"`
	FlushIntervalMS       int    `yaml:"flush_interval_ms"`
	RetryDelayMS          int    `yaml:"retry_delay_ms"`
	DedupWindowMS         int    `yaml:"dedup_window_ms"`
}

// LoadConfig reads a YAML config file and applies environment overrides
// (DRIFT_SITE_ID, DRIFT_ENDPOINT, DRIFT_DISABLED). A .env file in the
// working directory is loaded first when present. An empty path skips the
// file and configures from the environment alone.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	var fc FileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv("DRIFT_SITE_ID"); v != "" {
		fc.SiteID = v
	}
	if v := os.Getenv("DRIFT_ENDPOINT"); v != "" {
		fc.EndpointBase = v
	}
	if v := os.Getenv("DRIFT_DISABLED"); v == "1" || v == "true" {
		fc.Disabled = true
	}

	cfg := Config{
		SiteID:                fc.SiteID,
		EndpointBase:          fc.EndpointBase,
		RespectPrivacySignals: fc.RespectPrivacySignals,
		Disabled:              fc.Disabled,
		MaxBatchSize:          fc.MaxBatchSize,
	}
	if fc.FlushIntervalMS > 0 {
		cfg.FlushInterval = time.Duration(fc.FlushIntervalMS) * time.Millisecond
	}
	if fc.RetryDelayMS > 0 {
		cfg.RetryDelay = time.Duration(fc.RetryDelayMS) * time.Millisecond
	}
	if fc.DedupWindowMS > 0 {
		cfg.DedupWindow = time.Duration(fc.DedupWindowMS) * time.Millisecond
	}
	return cfg, nil
}
