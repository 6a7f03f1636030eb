package notifier

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/striker-satyam/gatewaychk/internal/analyzer"
	"github.com/striker-satyam/gatewaychk/internal/models"
)

// GatewaysText joins the detected gateways or returns NoGatewaysText.
func GatewaysText(result models.ClassificationResult) string {
	if len(result.Gateways) == 0 {
		return NoGatewaysText
	}
	return strings.Join(result.Gateways, ", ")
}

// FormatTextReport renders one result as the multi-line plain text report.
func FormatTextReport(result models.ClassificationResult) string {
	var b strings.Builder
	b.WriteString(ReportTitle + "\n")
	b.WriteString(ReportSeparator + "\n")
	fmt.Fprintf(&b, "URL: %s\n", result.URL)
	fmt.Fprintf(&b, "Payment Gateways: %s\n", GatewaysText(result))
	fmt.Fprintf(&b, "Captcha: %s\n", boolLabel(result.BotChallenge))
	fmt.Fprintf(&b, "Cloudflare: %s\n", boolLabel(result.EdgeService))
	fmt.Fprintf(&b, "GraphQL: %s\n", boolLabel(result.QueryLayer))
	fmt.Fprintf(&b, "Platform: %s\n", result.Platform)
	fmt.Fprintf(&b, "Status Code: %s\n", strconv.Itoa(result.StatusCode))
	return b.String()
}

// FormatErrorText renders a failed analysis. For an *analyzer.AnalysisError
// the normalized target and the bare cause are shown.
func FormatErrorText(target string, err error) string {
	cause := err
	var analysisErr *analyzer.AnalysisError
	if errors.As(err, &analysisErr) {
		if analysisErr.Target != "" {
			target = analysisErr.Target
		}
		cause = analysisErr.Cause
	}
	return fmt.Sprintf("Error analyzing %s:\n%v", target, cause)
}

// FormatAlertText is the message sent to the alert channel for a lightly protected site.
func FormatAlertText(url string) string {
	return fmt.Sprintf("Website %s has no Captcha, Cloudflare, or GraphQL detected.", url)
}

func boolLabel(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// truncateString truncates a string to maxLength runes with ellipsis
func truncateString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength-3]) + "..."
}
