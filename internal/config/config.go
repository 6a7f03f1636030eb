package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// maxConfigFileSize caps how much of a config file is read.
const maxConfigFileSize = 10 * 1024 * 1024

type GlobalConfig struct {
	AnalyzerConfig     AnalyzerConfig     `json:"analyzer_config,omitempty" yaml:"analyzer_config,omitempty"`
	FetcherConfig      FetcherConfig      `json:"fetcher_config,omitempty" yaml:"fetcher_config,omitempty"`
	LogConfig          LogConfig          `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	NotificationConfig NotificationConfig `json:"notification_config,omitempty" yaml:"notification_config,omitempty"`
}

func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		AnalyzerConfig:     NewDefaultAnalyzerConfig(),
		FetcherConfig:      NewDefaultFetcherConfig(),
		LogConfig:          NewDefaultLogConfig(),
		NotificationConfig: NewDefaultNotificationConfig(),
	}
}

// LoadGlobalConfig starts from the defaults and overlays the file found by
// GetConfigPath, if any. Files ending in .yaml or .yml are YAML, anything else
// is JSON. Environment overrides are applied last.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	if providedPath != "" && !fileExists(providedPath) {
		return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	cfg := NewDefaultGlobalConfig()
	path := GetConfigPath(providedPath)
	if path == "" {
		logger.Debug().Msg("No config file found, using defaults")
	} else {
		if err := decodeConfigFile(path, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse config content")
		}
		logger.Debug().Str("path", path).Msg("Configuration file loaded")
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func decodeConfigFile(path string, cfg *GlobalConfig) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > maxConfigFileSize {
		return errorwrapper.NewValidationError("config_file", path, "config file is too large")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides lets webhook secrets live outside the config file.
func applyEnvOverrides(cfg *GlobalConfig) {
	if v := os.Getenv(EnvReportWebhookURL); v != "" {
		cfg.NotificationConfig.ReportWebhookURL = v
	}
	if v := os.Getenv(EnvAlertWebhookURL); v != "" {
		cfg.NotificationConfig.AlertWebhookURL = v
	}
}
