package analyzer

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/models"
	"github.com/striker-satyam/gatewaychk/internal/urlhandler"
	"golang.org/x/sync/errgroup"
)

// PageFetcher downloads one target.
type PageFetcher interface {
	Fetch(ctx context.Context, target string) (*models.FetchResult, error)
}

// PageClassifier turns a fetched page into findings.
type PageClassifier interface {
	Classify(fr *models.FetchResult) models.ClassificationResult
}

// Analyzer runs fetch then classify for a target.
type Analyzer struct {
	fetcher    PageFetcher
	classifier PageClassifier
	logger     zerolog.Logger
}

// Outcome pairs a target with its result or the error that prevented one.
type Outcome struct {
	Target string
	Result *models.ClassificationResult
	Err    error
}

// New creates an Analyzer.
func New(fetcher PageFetcher, classifier PageClassifier, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		fetcher:    fetcher,
		classifier: classifier,
		logger:     logger.With().Str("module", "Analyzer").Logger(),
	}
}

// Analyze normalizes target, fetches it once and classifies the page. Every
// failure is reported as an *AnalysisError.
func (a *Analyzer) Analyze(ctx context.Context, target string) (*models.ClassificationResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	normalized, err := urlhandler.NormalizeTarget(target)
	if err != nil {
		a.logger.Warn().Err(err).Str("target", target).Msg("Rejected target")
		return nil, NewAnalysisError(target, err)
	}

	start := time.Now()
	fr, err := a.fetcher.Fetch(ctx, normalized)
	if err != nil {
		a.logger.Error().Err(err).Str("url", normalized).Msg("Failed to fetch target")
		return nil, NewAnalysisError(normalized, err)
	}

	result := a.classifier.Classify(fr)

	a.logger.Info().
		Str("url", result.URL).
		Strs("gateways", result.Gateways).
		Bool("captcha", result.BotChallenge).
		Bool("cloudflare", result.EdgeService).
		Bool("graphql", result.QueryLayer).
		Str("platform", result.Platform).
		Int("status_code", result.StatusCode).
		Bool("lightly_protected", result.LightlyProtected).
		Dur("duration", time.Since(start)).
		Msg("Analysis completed")

	return &result, nil
}

// AnalyzeAll analyzes targets with at most concurrency analyses in flight.
// Outcomes are returned in input order and one failure does not stop the others.
func (a *Analyzer) AnalyzeAll(ctx context.Context, targets []string, concurrency int) []Outcome {
	if concurrency < 1 {
		concurrency = 1
	}

	outcomes := make([]Outcome, len(targets))

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, target := range targets {
		g.Go(func() error {
			result, err := a.Analyze(ctx, target)
			outcomes[i] = Outcome{Target: target, Result: result, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}
