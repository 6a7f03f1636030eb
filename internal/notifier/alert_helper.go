package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/analyzer"
	"github.com/striker-satyam/gatewaychk/internal/config"
	"github.com/striker-satyam/gatewaychk/internal/models"
	"github.com/striker-satyam/gatewaychk/internal/notifier/discord"
)

// Sender delivers a payload to a webhook.
type Sender interface {
	Send(ctx context.Context, webhookURL string, payload discord.MessagePayload) error
}

// AlertHelper decides which webhook messages an analysis produces and sends them.
type AlertHelper struct {
	sender Sender
	cfg    config.NotificationConfig
	logger zerolog.Logger
	now    func() time.Time
}

// NewAlertHelper creates a new AlertHelper.
func NewAlertHelper(sender Sender, cfg config.NotificationConfig, logger zerolog.Logger) *AlertHelper {
	return &AlertHelper{
		sender: sender,
		cfg:    cfg,
		logger: logger.With().Str("module", "AlertHelper").Logger(),
		now:    time.Now,
	}
}

// NotifyReport sends the report to the report webhook when reports are enabled.
func (h *AlertHelper) NotifyReport(ctx context.Context, result models.ClassificationResult) error {
	if !h.cfg.NotifyOnReport || h.cfg.ReportWebhookURL == "" {
		return nil
	}
	payload, err := BuildReportPayload(result, h.cfg.Username, h.now())
	if err != nil {
		return err
	}
	return h.sender.Send(ctx, h.cfg.ReportWebhookURL, payload)
}

// NotifyAlert sends the alert to the alert webhook when the site is lightly
// protected. It does nothing for any other result.
func (h *AlertHelper) NotifyAlert(ctx context.Context, result models.ClassificationResult) error {
	if !result.LightlyProtected {
		return nil
	}
	if !h.cfg.NotifyOnLightlyProtected || h.cfg.AlertWebhookURL == "" {
		h.logger.Debug().Str("url", result.URL).Msg("Lightly protected site found but alerts are not configured")
		return nil
	}

	h.logger.Info().Str("url", result.URL).Msg("Sending lightly protected alert")
	payload, err := BuildAlertPayload(result, h.cfg.Username, h.now())
	if err != nil {
		return err
	}
	return h.sender.Send(ctx, h.cfg.AlertWebhookURL, payload)
}

// NotifyError reports a failed analysis to the report webhook when reports are enabled.
func (h *AlertHelper) NotifyError(ctx context.Context, target string, analysisErr error) error {
	if !h.cfg.NotifyOnReport || h.cfg.ReportWebhookURL == "" {
		return nil
	}
	payload, err := BuildErrorPayload(target, analysisErr, h.cfg.Username, h.now())
	if err != nil {
		return err
	}
	return h.sender.Send(ctx, h.cfg.ReportWebhookURL, payload)
}

// Dispatch sends every message an outcome calls for. Delivery failures are
// logged and joined; one failing webhook does not stop the other.
func (h *AlertHelper) Dispatch(ctx context.Context, outcome analyzer.Outcome) error {
	if outcome.Err != nil {
		return h.logFailure(outcome.Target, h.NotifyError(ctx, outcome.Target, outcome.Err))
	}
	if outcome.Result == nil {
		return nil
	}

	reportErr := h.logFailure(outcome.Target, h.NotifyReport(ctx, *outcome.Result))
	alertErr := h.logFailure(outcome.Target, h.NotifyAlert(ctx, *outcome.Result))
	return errors.Join(reportErr, alertErr)
}

func (h *AlertHelper) logFailure(target string, err error) error {
	if err != nil {
		h.logger.Error().Err(err).Str("target", target).Msg("Failed to deliver notification")
	}
	return err
}
