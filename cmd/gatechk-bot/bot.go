package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/models"
	"github.com/striker-satyam/gatewaychk/internal/notifier"
	"github.com/striker-satyam/gatewaychk/internal/notifier/discord"
	"golang.org/x/time/rate"
)

const (
	dotURLPrefix     = ".url"
	urlCommandName   = "url"
	startCommandName = "start"
	websiteOption    = "website"

	rateLimitedText = "⚠️ Rate limit exceeded. Please wait before sending another command."
	missingURLText  = "❗ Please provide a URL. Example: /url example.com"
	missingDotText  = "❗ Please provide a URL after .url"

	helpText = `👋 Welcome to the website analyzer!

I can analyze websites for:
- Payment gateways
- Security (Captcha, Cloudflare)
- Platform detection

📌 Send /url <website> or .url <website>

🔍 Example: /url shopify.com`
)

type siteAnalyzer interface {
	Analyze(ctx context.Context, target string) (*models.ClassificationResult, error)
}

type alertNotifier interface {
	NotifyAlert(ctx context.Context, result models.ClassificationResult) error
}

// reply is what the bot answers to one request.
type reply struct {
	Content string
	Embeds  []*discordgo.MessageEmbed
	// Result is set when the analysis succeeded.
	Result *models.ClassificationResult
}

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	config      *Config
	analyzer    siteAnalyzer
	alerts      alertNotifier
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
	now         func() time.Time
}

// NewBot creates a new Discord bot instance
func NewBot(config *Config, analyzer siteAnalyzer, alerts alertNotifier, logger zerolog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + config.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentDirectMessages | discordgo.IntentMessageContent

	bot := &Bot{
		session:     session,
		config:      config,
		analyzer:    analyzer,
		alerts:      alerts,
		rateLimiter: newRateLimiter(config.Bot.RateLimit),
		logger:      logger.With().Str("module", "DiscordBot").Logger(),
		now:         time.Now,
	}

	bot.setupEventHandlers()
	return bot, nil
}

func newRateLimiter(cfg RateLimitConfig) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.CommandsPerMinute)), cfg.BurstLimit)
}

// setupEventHandlers configures Discord event handlers
func (b *Bot) setupEventHandlers() {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onInteractionCreate)
	b.session.AddHandler(b.onMessageCreate)
}

// Start opens the session and blocks until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	if err := b.session.UpdateGameStatus(0, "/url <website>"); err != nil {
		b.logger.Warn().Err(err).Msg("Failed to set bot status")
	}

	<-ctx.Done()

	b.logger.Info().Msg("Shutting down Discord bot...")
	b.cleanupCommands()
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	b.logger.Info().Str("username", event.User.Username).Msg("Discord bot is ready")

	if err := b.registerCommands(s); err != nil {
		b.logger.Error().Err(err).Msg("Failed to register commands")
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if !b.rateLimiter.Allow() {
		b.logger.Warn().Msg("Rate limit exceeded for interaction")
		_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: rateLimitedText,
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	data := i.ApplicationCommandData()
	switch data.Name {
	case startCommandName:
		_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: helpText},
		})
	case urlCommandName:
		b.handleURLCommand(s, i, commandTarget(data.Options))
	}
}

// handleURLCommand defers the response because a fetch may outlast the
// interaction acknowledgement window.
func (b *Bot) handleURLCommand(s *discordgo.Session, i *discordgo.InteractionCreate, target string) {
	if target == "" {
		_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Content: missingURLText},
		})
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		b.logger.Error().Err(err).Msg("Failed to defer interaction response")
		return
	}

	r := b.analyze(target)
	if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: r.Content,
		Embeds:  r.Embeds,
	}); err != nil {
		b.logger.Error().Err(err).Msg("Failed to send follow-up message")
	}
	b.sendAlert(s, r.Result)
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	target, matched := parseDotURL(m.Content)
	if !matched {
		return
	}

	if !b.rateLimiter.Allow() {
		_, _ = s.ChannelMessageSendReply(m.ChannelID, rateLimitedText, m.Reference())
		return
	}
	if target == "" {
		_, _ = s.ChannelMessageSendReply(m.ChannelID, missingDotText, m.Reference())
		return
	}

	r := b.analyze(target)
	if _, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:   r.Content,
		Embeds:    r.Embeds,
		Reference: m.Reference(),
	}); err != nil {
		b.logger.Error().Err(err).Str("channel_id", m.ChannelID).Msg("Failed to send analysis reply")
	}
	b.sendAlert(s, r.Result)
}

// analyze runs one analysis and renders the answer: the report embed on
// success, the error text otherwise.
func (b *Bot) analyze(target string) reply {
	ctx, cancel := context.WithTimeout(context.Background(), b.config.Bot.AnalysisTimeout)
	defer cancel()

	b.logger.Info().Str("target", target).Msg("Analysis requested")

	result, err := b.analyzer.Analyze(ctx, target)
	if err != nil {
		return reply{Content: "❌ " + notifier.FormatErrorText(target, err)}
	}

	embed, err := notifier.BuildReportEmbed(*result, b.now())
	if err != nil {
		b.logger.Warn().Err(err).Msg("Report does not fit an embed, sending text")
		return reply{Content: notifier.FormatTextReport(*result), Result: result}
	}
	return reply{Embeds: []*discordgo.MessageEmbed{toMessageEmbed(embed)}, Result: result}
}

// sendAlert forwards the alert to the alert webhook and, when configured, to the alert channel.
func (b *Bot) sendAlert(s *discordgo.Session, result *models.ClassificationResult) {
	if result == nil || !result.LightlyProtected {
		return
	}

	if b.alerts != nil {
		ctx, cancel := context.WithTimeout(context.Background(), b.config.Bot.AnalysisTimeout)
		if err := b.alerts.NotifyAlert(ctx, *result); err != nil {
			b.logger.Error().Err(err).Str("url", result.URL).Msg("Failed to send alert webhook")
		}
		cancel()
	}

	if b.config.Discord.AlertChannelID != "" {
		if _, err := s.ChannelMessageSend(b.config.Discord.AlertChannelID, "🚨 "+notifier.FormatAlertText(result.URL)); err != nil {
			b.logger.Error().Err(err).Str("channel_id", b.config.Discord.AlertChannelID).Msg("Failed to send alert message")
		}
	}
}

// parseDotURL recognizes ".url <website>" messages, case-insensitively.
// matched is false for any other message; target is empty when the prefix
// carries no argument.
func parseDotURL(content string) (target string, matched bool) {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) < len(dotURLPrefix) || !strings.EqualFold(trimmed[:len(dotURLPrefix)], dotURLPrefix) {
		return "", false
	}
	args := strings.Fields(trimmed[len(dotURLPrefix):])
	if len(args) == 0 {
		return "", true
	}
	return args[0], true
}

func commandTarget(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range options {
		if opt.Name == websiteOption && opt.Type == discordgo.ApplicationCommandOptionString {
			return strings.TrimSpace(opt.StringValue())
		}
	}
	return ""
}

func toMessageEmbed(e discord.Embed) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Timestamp:   e.Timestamp,
		Color:       e.Color,
	}
	if e.Footer != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer.Text, IconURL: e.Footer.IconURL}
	}
	if e.Author != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: e.Author.Name, URL: e.Author.URL, IconURL: e.Author.IconURL}
	}
	for _, f := range e.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	return embed
}

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        urlCommandName,
		Description: "Analyze a website for payment gateways, protections and platform",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        websiteOption,
				Description: "Website to analyze, e.g. example.com",
				Required:    true,
			},
		},
	},
	{
		Name:        startCommandName,
		Description: "Show what this bot can do",
	},
}

func (b *Bot) registerCommands(s *discordgo.Session) error {
	for _, cmd := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, b.config.Discord.GuildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		b.logger.Debug().Str("command", cmd.Name).Msg("Registered command")
	}
	b.logger.Info().Int("count", len(commands)).Msg("Successfully registered all commands")
	return nil
}

func (b *Bot) cleanupCommands() {
	if b.session.State == nil || b.session.State.User == nil {
		return
	}
	registered, err := b.session.ApplicationCommands(b.session.State.User.ID, b.config.Discord.GuildID)
	if err != nil {
		b.logger.Error().Err(err).Msg("Failed to fetch commands for cleanup")
		return
	}
	for _, cmd := range registered {
		if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.config.Discord.GuildID, cmd.ID); err != nil {
			b.logger.Error().Err(err).Str("command", cmd.Name).Msg("Failed to delete command")
		}
	}
}
