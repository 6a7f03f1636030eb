package discord

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
	"github.com/striker-satyam/gatewaychk/internal/httpclient"
)

// maxErrorBodyLength caps how much of a failed webhook response ends up in errors.
const maxErrorBodyLength = 512

// WebhookNotifier posts message payloads to Discord webhooks.
type WebhookNotifier struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
	validator  *Validator
}

// NewWebhookNotifier creates a WebhookNotifier. The webhook URL is given per call.
func NewWebhookNotifier(httpClient *httpclient.HTTPClient, logger zerolog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		logger:     logger.With().Str("module", "DiscordNotifier").Logger(),
		httpClient: httpClient,
		validator:  NewValidator(),
	}
}

// Send posts payload to webhookURL. An empty URL is not an error: the message
// is skipped. A non-2xx answer is returned as *httpclient.HTTPError.
func (wn *WebhookNotifier) Send(ctx context.Context, webhookURL string, payload MessagePayload) error {
	if webhookURL == "" {
		wn.logger.Info().Msg("Webhook URL is empty. Skipping Discord notification.")
		return nil
	}
	if _, err := url.ParseRequestURI(webhookURL); err != nil {
		return errorwrapper.NewValidationError("webhook_url", webhookURL, "invalid webhook URL")
	}
	if err := wn.validator.ValidatePayload(payload); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to marshal discord payload")
	}

	resp, err := wn.httpClient.PostJSON(ctx, webhookURL, body)
	if err != nil {
		wn.logger.Error().Err(err).Msg("Failed to send Discord notification")
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody := string(resp.Body)
		if len(respBody) > maxErrorBodyLength {
			respBody = respBody[:maxErrorBodyLength]
		}
		wn.logger.Error().Int("status_code", resp.StatusCode).Str("response_body", respBody).Msg("Discord notification failed")
		return httpclient.NewHTTPErrorWithURL(resp.StatusCode, respBody, webhookURL)
	}

	wn.logger.Info().Int("status_code", resp.StatusCode).Msg("Discord notification sent successfully")
	return nil
}
