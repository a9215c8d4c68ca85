package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/leo/internal/logging"
)

// Config holds runtime settings for the Leo CLI.
type Config struct {
	APIBaseURL     string        `env:"LEO_API_BASE_URL"`
	DownloadDir    string        `env:"LEO_DOWNLOAD_DIR"`
	Locale         string        `env:"LEO_LOCALE"`
	LogLevel       string        `env:"LEO_LOG_LEVEL"`
	LogFormat      string        `env:"LEO_LOG_FORMAT"`
	// RequestTimeout bounds a single HTTP exchange; 0 leaves requests
	// unbounded so only Ctrl-C aborts them.
	RequestTimeout time.Duration `env:"LEO_REQUEST_TIMEOUT"`
	// HealthInterval is how often the CLI probes backend reachability;
	// 0 disables the probe.
	HealthInterval time.Duration `env:"LEO_HEALTH_INTERVAL"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.DownloadDir = "."
	c.Locale = "en"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.HealthInterval = 10 * time.Second
}

// LoadConfig builds the configuration from os.Args and the process
// environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], ".env")
}

// Load applies defaults, the dotenv file, environment variables, the JSON
// file selected by -c/-config and finally flags from args. Later sources
// take precedence over earlier ones.
func Load(args []string, dotenv string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(dotenv); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid api base url %q: %w", c.APIBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: api base url %q must be an absolute http(s) url", c.APIBaseURL)
	}
	if strings.TrimSpace(c.DownloadDir) == "" {
		return fmt.Errorf("config: download dir must not be empty")
	}
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("config: locale must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: log format %q must be text or json", c.LogFormat)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: request timeout must not be negative")
	}
	if c.HealthInterval < 0 {
		return fmt.Errorf("config: health interval must not be negative")
	}
	return nil
}
