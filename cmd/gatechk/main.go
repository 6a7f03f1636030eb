package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/analyzer"
	"github.com/striker-satyam/gatewaychk/internal/classifier"
	"github.com/striker-satyam/gatewaychk/internal/config"
	"github.com/striker-satyam/gatewaychk/internal/fetcher"
	"github.com/striker-satyam/gatewaychk/internal/httpclient"
	"github.com/striker-satyam/gatewaychk/internal/logger"
	"github.com/striker-satyam/gatewaychk/internal/notifier"
	"github.com/striker-satyam/gatewaychk/internal/notifier/discord"
	"github.com/striker-satyam/gatewaychk/internal/urlhandler"
)

const notificationTimeout = 20 * time.Second

// jsonError is the -json line printed for a failed target.
type jsonError struct {
	Target string `json:"target"`
	Error  string `json:"error"`
}

func main() {
	_ = godotenv.Load()

	flags, err := ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, flags, os.Stdout))
}

func run(ctx context.Context, flags AppFlags, stdout io.Writer) int {
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, bootLogger)
	if err != nil {
		bootLogger.Error().Err(err).Str("path", flags.GlobalConfigFile).Msg("Could not load global config")
		return 1
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		bootLogger.Error().Err(err).Msg("Configuration validation failed")
		return 1
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		bootLogger.Error().Err(err).Msg("Could not initialize logger")
		return 1
	}

	targets, err := collectTargets(flags, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Could not read targets")
		return 1
	}

	pageFetcher, err := fetcher.NewFromConfig(gCfg.FetcherConfig, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Could not create fetcher")
		return 1
	}
	a := analyzer.New(pageFetcher, classifier.New(nil), zLogger)

	var alerts *notifier.AlertHelper
	if flags.Notify {
		alerts, err = newAlertHelper(gCfg.NotificationConfig, zLogger)
		if err != nil {
			zLogger.Error().Err(err).Msg("Could not create notifier")
			return 1
		}
	}

	concurrency := gCfg.AnalyzerConfig.Concurrency
	if flags.Concurrency > 0 {
		concurrency = flags.Concurrency
	}

	zLogger.Info().Int("targets", len(targets)).Int("concurrency", concurrency).Msg("Starting analysis")
	outcomes := a.AnalyzeAll(ctx, targets, concurrency)

	failed := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failed++
		}
		if err := printOutcome(stdout, outcome, flags.JSONOutput); err != nil {
			zLogger.Error().Err(err).Msg("Could not write report")
			return 1
		}
		if alerts != nil {
			notifyCtx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
			_ = alerts.Dispatch(notifyCtx, outcome)
			cancel()
		}
	}

	zLogger.Info().Int("total", len(outcomes)).Int("failed", failed).Msg("Analysis finished")
	if failed > 0 {
		return 1
	}
	return 0
}

// collectTargets merges command-line targets with the targets file, keeping order.
func collectTargets(flags AppFlags, log zerolog.Logger) ([]string, error) {
	targets := append([]string(nil), flags.Targets...)
	if flags.TargetsFile != "" {
		fromFile, err := urlhandler.ReadTargetsFromFile(flags.TargetsFile, log)
		if err != nil {
			return nil, err
		}
		targets = append(targets, fromFile...)
	}
	return targets, nil
}

func newAlertHelper(cfg config.NotificationConfig, log zerolog.Logger) (*notifier.AlertHelper, error) {
	client, err := httpclient.NewHTTPClientBuilder(log).WithTimeout(notificationTimeout).Build()
	if err != nil {
		return nil, err
	}
	return notifier.NewAlertHelper(discord.NewWebhookNotifier(client, log), cfg, log), nil
}

func printOutcome(w io.Writer, outcome analyzer.Outcome, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		if outcome.Err != nil {
			return enc.Encode(jsonError{Target: outcome.Target, Error: outcome.Err.Error()})
		}
		return enc.Encode(outcome.Result)
	}

	if outcome.Err != nil {
		_, err := fmt.Fprintln(w, notifier.FormatErrorText(outcome.Target, outcome.Err))
		return err
	}
	_, err := fmt.Fprintln(w, notifier.FormatTextReport(*outcome.Result))
	return err
}
