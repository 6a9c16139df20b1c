package config

import (
	"flag"
	"os"
	"time"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend base URL
//	-t int      request timeout in seconds
//	-d string   credential store path
//	-o string   OAuth callback listen address
//	-l string   log level
//
// The argument list is filtered to just these flags so -c/-config (handled
// by the JSON stage) passes through untouched.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "credential store path")
	fs.StringVar(&cfg.OAuthCallbackAddr, "o", cfg.OAuthCallbackAddr, "OAuth callback listen address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
