package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/leo/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-l", "-v", "-t", "-i"}

// parseFlags overlays cfg with command-line flags:
//
//	-a string     backend base URL
//	-d string     directory exports are saved to
//	-l string     interface locale (en, th)
//	-v string     log level (debug, info, warn, error)
//	-t duration   per-request timeout, 0 disables it
//	-i duration   backend health check interval, 0 disables it
//
// Only these flags are taken from args (see flagx.FilterArgs), so -c and
// anything else on the command line are left to other parsers.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("leo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "download directory")
	fs.StringVar(&cfg.Locale, "l", cfg.Locale, "interface locale")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.DurationVar(&cfg.HealthInterval, "i", cfg.HealthInterval, "health check interval")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
