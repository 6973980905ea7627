package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the storefront client.
type Config struct {
	APIBaseURL       string        `env:"API_BASE_URL"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT"`
	StoragePath      string        `env:"STORAGE_PATH"`
	LoginPromptDelay time.Duration `env:"LOGIN_PROMPT_DELAY"`
	LogLevel         string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 15 * time.Second
	c.StoragePath = "storefront.db"
	c.LoginPromptDelay = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and os.Args, in that order.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], env.ToMap(os.Environ()))
}

func load(args []string, environment map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environment); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("config: api base url is empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: request timeout must not be negative, got %s", c.RequestTimeout)
	}
	if c.StoragePath == "" {
		return fmt.Errorf("config: storage path is empty")
	}
	return nil
}
