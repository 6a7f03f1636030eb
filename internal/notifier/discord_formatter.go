package notifier

import (
	"fmt"
	"strconv"
	"time"

	"github.com/striker-satyam/gatewaychk/internal/models"
	"github.com/striker-satyam/gatewaychk/internal/notifier/discord"
)

// ReportColor is green for protected sites and orange for lightly protected ones.
func ReportColor(result models.ClassificationResult) int {
	if result.LightlyProtected {
		return LightlyProtectedEmbedColor
	}
	return ProtectedEmbedColor
}

// BuildReportEmbed renders a result as a Discord embed with one field per finding.
func BuildReportEmbed(result models.ClassificationResult, now time.Time) (discord.Embed, error) {
	return discord.NewEmbedBuilder().
		WithTitle(ReportTitle).
		WithColor(ReportColor(result)).
		WithTimestamp(now).
		AddField("URL", truncateString(result.URL, discord.MaxFieldValueLength), false).
		AddField("Payment Gateways", truncateString(GatewaysText(result), discord.MaxFieldValueLength), false).
		AddField("Captcha", boolLabel(result.BotChallenge), true).
		AddField("Cloudflare", boolLabel(result.EdgeService), true).
		AddField("GraphQL", boolLabel(result.QueryLayer), true).
		AddField("Platform", result.Platform, true).
		AddField("Status Code", strconv.Itoa(result.StatusCode), true).
		WithFooter(reportFooterText, "").
		Build()
}

// BuildErrorEmbed renders a failed analysis.
func BuildErrorEmbed(target string, err error, now time.Time) (discord.Embed, error) {
	return discord.NewEmbedBuilder().
		WithTitle(ErrorTitle).
		WithColor(ErrorEmbedColor).
		WithTimestamp(now).
		WithDescription(truncateString(FormatErrorText(target, err), discord.MaxDescriptionLength)).
		WithFooter(reportFooterText, "").
		Build()
}

// BuildReportPayload wraps the report embed into a webhook message.
func BuildReportPayload(result models.ClassificationResult, username string, now time.Time) (discord.MessagePayload, error) {
	embed, err := BuildReportEmbed(result, now)
	if err != nil {
		return discord.MessagePayload{}, err
	}
	return discord.NewMessagePayloadBuilder().
		WithUsername(username).
		AddEmbed(embed).
		Build()
}

// BuildErrorPayload wraps the error embed into a webhook message.
func BuildErrorPayload(target string, err error, username string, now time.Time) (discord.MessagePayload, error) {
	embed, buildErr := BuildErrorEmbed(target, err, now)
	if buildErr != nil {
		return discord.MessagePayload{}, buildErr
	}
	return discord.NewMessagePayloadBuilder().
		WithUsername(username).
		AddEmbed(embed).
		Build()
}

// BuildAlertPayload carries the alert text as content so it shows in
// notifications, with the report embed attached.
func BuildAlertPayload(result models.ClassificationResult, username string, now time.Time) (discord.MessagePayload, error) {
	embed, err := BuildReportEmbed(result, now)
	if err != nil {
		return discord.MessagePayload{}, err
	}
	embed.Title = fmt.Sprintf("%s: %s", AlertTitle, truncateString(result.URL, discord.MaxTitleLength-len(AlertTitle)-2))
	return discord.NewMessagePayloadBuilder().
		WithUsername(username).
		WithContent(truncateString(FormatAlertText(result.URL), discord.MaxContentLength)).
		AddEmbed(embed).
		Build()
}
