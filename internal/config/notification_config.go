package config

// NotificationConfig defines configuration for notifications
type NotificationConfig struct {
	AlertWebhookURL          string `json:"alert_webhook_url,omitempty" yaml:"alert_webhook_url,omitempty" validate:"omitempty,url"`
	NotifyOnLightlyProtected bool   `json:"notify_on_lightly_protected" yaml:"notify_on_lightly_protected"`
	NotifyOnReport           bool   `json:"notify_on_report" yaml:"notify_on_report"`
	ReportWebhookURL         string `json:"report_webhook_url,omitempty" yaml:"report_webhook_url,omitempty" validate:"omitempty,url"`
	Username                 string `json:"username,omitempty" yaml:"username,omitempty"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		AlertWebhookURL:          "",
		NotifyOnLightlyProtected: true,
		NotifyOnReport:           false,
		ReportWebhookURL:         "",
		Username:                 DefaultNotificationUsername,
	}
}
