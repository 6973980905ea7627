package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/harifurniture/internal/flagx"
	"github.com/dmitrijs2005/harifurniture/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	StoragePath      string         `json:"storage_path"`
	LoginPromptDelay timex.Duration `json:"login_prompt_delay"`
	LogLevel         string         `json:"log_level"`
}

// parseJSON overlays cfg with the non-empty fields of the file named by
// -c / -config. Without either flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.LoginPromptDelay.Duration != 0 {
		cfg.LoginPromptDelay = jc.LoginPromptDelay.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	return nil
}
