package urlhandler

import (
	"net/url"
	"strings"

	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
)

// DefaultScheme is prefixed to targets given without one.
const DefaultScheme = "https://"

// NormalizeTarget turns user input such as "example.com" into a fetchable URL.
// Targets that already start with http:// or https:// are kept as typed; anything
// else gets https:// in front. The result must parse with a non-empty host.
func NormalizeTarget(rawTarget string) (string, error) {
	target := strings.TrimSpace(rawTarget)
	if target == "" {
		return "", errorwrapper.NewValidationError("target", rawTarget, "target is empty or only whitespace")
	}

	if !HasHTTPScheme(target) {
		target = DefaultScheme + target
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "", errorwrapper.NewValidationError("target", rawTarget, "could not parse target URL: "+err.Error())
	}
	if parsed.Host == "" {
		return "", errorwrapper.NewValidationError("target", rawTarget, "target lacks a valid hostname")
	}

	return target, nil
}

// HasHTTPScheme reports whether target starts with http:// or https://, ignoring case.
func HasHTTPScheme(target string) bool {
	lower := strings.ToLower(target)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
