package models

// UnknownPlatform is reported when no platform indicator matches.
const UnknownPlatform = "Unknown"

// ClassificationResult is what the classifier infers about one fetched page.
type ClassificationResult struct {
	URL              string   `json:"url"`
	Gateways         []string `json:"gateways"`
	BotChallenge     bool     `json:"captcha"`
	EdgeService      bool     `json:"cloudflare"`
	QueryLayer       bool     `json:"graphql"`
	Platform         string   `json:"platform"`
	StatusCode       int      `json:"status_code"`
	LightlyProtected bool     `json:"lightly_protected"`
}

// HasGateway reports whether label is among the detected gateways.
func (r ClassificationResult) HasGateway(label string) bool {
	for _, g := range r.Gateways {
		if g == label {
			return true
		}
	}
	return false
}

// IsLightlyProtected is true when none of the protective layers were seen.
func IsLightlyProtected(botChallenge, edgeService, queryLayer bool) bool {
	return !(botChallenge || edgeService || queryLayer)
}
