package config

const (
	// Fetcher Defaults
	DefaultFetcherUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultFetcherTimeoutSecs    = 10
	DefaultFetcherMaxContentSize = 10 * 1024 * 1024
	DefaultFetcherEnableHTTP2    = true

	// Analyzer Defaults
	DefaultAnalyzerConcurrency = 5

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Notification Defaults
	DefaultNotificationUsername = "gatechk"

	// Environment variables
	EnvConfigPath       = "GATECHK_CONFIG_PATH"
	EnvReportWebhookURL = "GATECHK_REPORT_WEBHOOK_URL"
	EnvAlertWebhookURL  = "GATECHK_ALERT_WEBHOOK_URL"
)
