package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultFetcherTimeoutSecs, cfg.FetcherConfig.TimeoutSecs)
	assert.Equal(t, DefaultFetcherUserAgent, cfg.FetcherConfig.UserAgent)
	assert.Equal(t, DefaultAnalyzerConcurrency, cfg.AnalyzerConfig.Concurrency)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.True(t, cfg.NotificationConfig.NotifyOnLightlyProtected)
	assert.False(t, cfg.NotificationConfig.NotifyOnReport)
	assert.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_NoConfigFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvReportWebhookURL, "")
	t.Setenv(EnvAlertWebhookURL, "")

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	configData := `{
		"fetcher_config": {
			"timeout_secs": 5,
			"user_agent": "test-agent"
		},
		"log_config": {
			"log_level": "debug"
		}
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 5, cfg.FetcherConfig.TimeoutSecs)
	assert.Equal(t, "test-agent", cfg.FetcherConfig.UserAgent)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	// untouched sections keep their defaults
	assert.Equal(t, DefaultAnalyzerConcurrency, cfg.AnalyzerConfig.Concurrency)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	t.Setenv(EnvReportWebhookURL, "")
	t.Setenv(EnvAlertWebhookURL, "")

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
analyzer_config:
  concurrency: 12
notification_config:
  notify_on_report: true
  report_webhook_url: https://example.com/report
  alert_webhook_url: https://example.com/alert
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, 12, cfg.AnalyzerConfig.Concurrency)
	assert.True(t, cfg.NotificationConfig.NotifyOnReport)
	assert.Equal(t, "https://example.com/report", cfg.NotificationConfig.ReportWebhookURL)
	assert.Equal(t, "https://example.com/alert", cfg.NotificationConfig.AlertWebhookURL)
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("fetcher_config: [unterminated"), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config content")
}

func TestLoadGlobalConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvReportWebhookURL, "https://example.com/env-report")
	t.Setenv(EnvAlertWebhookURL, "https://example.com/env-alert")

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/env-report", cfg.NotificationConfig.ReportWebhookURL)
	assert.Equal(t, "https://example.com/env-alert", cfg.NotificationConfig.AlertWebhookURL)
}

func TestGetConfigPath_EnvVariable(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("{}"), 0644))
	t.Setenv(EnvConfigPath, configFile)

	assert.Equal(t, configFile, GetConfigPath(""))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *GlobalConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(cfg *GlobalConfig) {},
		},
		{
			name:    "invalid log level",
			modify:  func(cfg *GlobalConfig) { cfg.LogConfig.LogLevel = "verbose" },
			wantErr: "loglevel",
		},
		{
			name:    "invalid log format",
			modify:  func(cfg *GlobalConfig) { cfg.LogConfig.LogFormat = "xml" },
			wantErr: "logformat",
		},
		{
			name:    "zero timeout",
			modify:  func(cfg *GlobalConfig) { cfg.FetcherConfig.TimeoutSecs = 0 },
			wantErr: "TimeoutSecs",
		},
		{
			name:    "zero concurrency",
			modify:  func(cfg *GlobalConfig) { cfg.AnalyzerConfig.Concurrency = 0 },
			wantErr: "Concurrency",
		},
		{
			name:    "malformed webhook",
			modify:  func(cfg *GlobalConfig) { cfg.NotificationConfig.AlertWebhookURL = "not a url" },
			wantErr: "AlertWebhookURL",
		},
		{
			name:    "empty user agent",
			modify:  func(cfg *GlobalConfig) { cfg.FetcherConfig.UserAgent = "" },
			wantErr: "UserAgent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.modify(cfg)

			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFetcherConfig_Timeout(t *testing.T) {
	cfg := NewDefaultFetcherConfig()
	assert.Equal(t, "10s", cfg.Timeout().String())
}
