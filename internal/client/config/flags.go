package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/harifurniture/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only the flags handled here are parsed; the rest of args is filtered out
// with flagx.FilterArgs so that -c/-config and other components' flags do
// not fail parsing.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-s", "-p", "-l"})

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "local storage file")
	fs.DurationVar(&cfg.LoginPromptDelay, "p", cfg.LoginPromptDelay, "login prompt delay")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("config: parse flags: %w", err)
	}
	return nil
}
