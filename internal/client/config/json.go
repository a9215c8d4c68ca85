package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/leo/internal/flagx"
	"github.com/dmitrijs2005/leo/internal/timex"
)

// JsonConfig is the on-disk form of Config. Empty fields are not applied.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_base_url"`
	DownloadDir    string          `json:"download_dir"`
	Locale         string          `json:"locale"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	HealthInterval *timex.Duration `json:"health_interval"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Without either flag nothing is loaded.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.APIBaseURL, jc.APIBaseURL)
	set(&cfg.DownloadDir, jc.DownloadDir)
	set(&cfg.Locale, jc.Locale)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.HealthInterval != nil {
		cfg.HealthInterval = jc.HealthInterval.Duration
	}
	return nil
}
