package fetcher

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/config"
	"github.com/striker-satyam/gatewaychk/internal/extractor"
	"github.com/striker-satyam/gatewaychk/internal/httpclient"
	"github.com/striker-satyam/gatewaychk/internal/models"
	"github.com/striker-satyam/gatewaychk/internal/urlhandler"
)

// Fetcher issues the single GET for a target and packages what came back.
type Fetcher struct {
	client    *httpclient.HTTPClient
	extractor *extractor.ScriptExtractor
	logger    zerolog.Logger
}

// New creates a Fetcher on top of an existing client.
func New(client *httpclient.HTTPClient, logger zerolog.Logger) *Fetcher {
	moduleLogger := logger.With().Str("module", "Fetcher").Logger()
	return &Fetcher{
		client:    client,
		extractor: extractor.NewScriptExtractor(moduleLogger),
		logger:    moduleLogger,
	}
}

// NewFromConfig builds the HTTP client from the fetcher configuration.
func NewFromConfig(cfg config.FetcherConfig, logger zerolog.Logger) (*Fetcher, error) {
	client, err := httpclient.NewHTTPClientBuilder(logger).
		WithConfig(httpclient.ConfigFromFetcher(cfg)).
		Build()
	if err != nil {
		return nil, err
	}
	return New(client, logger), nil
}

// Fetch normalizes target, downloads it and extracts its script sources.
// Any status code yields a FetchResult; only validation and network failures
// are returned as errors.
func (f *Fetcher) Fetch(ctx context.Context, target string) (*models.FetchResult, error) {
	normalized, err := urlhandler.NormalizeTarget(target)
	if err != nil {
		return nil, err
	}

	f.logger.Debug().Str("url", normalized).Msg("Fetching target")

	resp, err := f.client.Get(ctx, normalized)
	if err != nil {
		f.logger.Warn().Err(err).Str("url", normalized).Msg("Fetch failed")
		return nil, err
	}

	body := resp.Text()
	scripts := f.extractor.Extract(body)

	f.logger.Info().
		Str("url", normalized).
		Int("status_code", resp.StatusCode).
		Int("content_size", len(body)).
		Int("scripts", len(scripts)).
		Msg("Target fetched")

	return models.NewFetchResult(normalized, resp.StatusCode, body, scripts, resp.Headers), nil
}
