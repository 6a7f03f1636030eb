package main

import (
	"context"
	"flag"
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
)

func main() {
	_ = godotenv.Load()

	botConfigFile := flag.String("config", "configs/gatechk-bot.yaml", "Path to the bot YAML configuration file")
	globalConfigFile := flag.String("globalconfig", "", "Path to the global YAML/JSON configuration file (overrides global_config_path)")
	flag.Parse()

	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}).With().Timestamp().Logger()
	bootLogger.Info().Msg("Starting gatechk Discord bot...")

	botCfg, err := LoadConfig(*botConfigFile)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("Failed to load bot configuration")
	}

	globalPath := botCfg.GlobalConfigPath
	if *globalConfigFile != "" {
		globalPath = *globalConfigFile
	}
	gCfg, err := config.LoadGlobalConfig(globalPath, bootLogger)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("Failed to load global configuration")
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		bootLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("Could not initialize logger")
	}

	pageFetcher, err := fetcher.NewFromConfig(gCfg.FetcherConfig, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to create fetcher")
	}
	a := analyzer.New(pageFetcher, classifier.New(nil), zLogger)

	webhookClient, err := httpclient.NewHTTPClientBuilder(zLogger).WithTimeout(20 * time.Second).Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to create webhook client")
	}
	alerts := notifier.NewAlertHelper(discord.NewWebhookNotifier(webhookClient, zLogger), gCfg.NotificationConfig, zLogger)

	bot, err := NewBot(botCfg, a, alerts, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Start(ctx); err != nil {
		zLogger.Error().Err(err).Msg("Bot stopped with error")
		os.Exit(1)
	}
	zLogger.Info().Msg("Discord bot stopped")
}
