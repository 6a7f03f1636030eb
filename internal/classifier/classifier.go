package classifier

import (
	"net/http"
	"sort"
	"strings"

	"github.com/striker-satyam/gatewaychk/internal/indicators"
	"github.com/striker-satyam/gatewaychk/internal/models"
)

// Classifier matches a fetched page against the indicator taxonomies. It holds
// no mutable state; one instance serves any number of goroutines.
type Classifier struct {
	set *indicators.Set
}

// New creates a classifier over set. A nil set means the compiled-in tables.
func New(set *indicators.Set) *Classifier {
	if set == nil {
		set = indicators.Default()
	}
	return &Classifier{set: set}
}

// Classify never fails: an empty body gives no gateways, no protections and
// the unknown platform.
func (c *Classifier) Classify(fr *models.FetchResult) models.ClassificationResult {
	if fr == nil {
		fr = models.NewFetchResult("", 0, "", nil, nil)
	}

	body := fr.LowerBody
	if body == "" && fr.Body != "" {
		body = strings.ToLower(fr.Body)
	}
	scripts := lowerAll(fr.Scripts)

	botChallenge := c.detectBotChallenge(body)
	edgeService := c.detectEdgeInBody(body) || c.detectEdgeInHeaders(fr.Headers)
	queryLayer := c.detectQueryLayer(body)

	return models.ClassificationResult{
		URL:              fr.URL,
		Gateways:         c.detectGateways(body, scripts),
		BotChallenge:     botChallenge,
		EdgeService:      edgeService,
		QueryLayer:       queryLayer,
		Platform:         c.detectPlatform(body),
		StatusCode:       fr.StatusCode,
		LightlyProtected: models.IsLightlyProtected(botChallenge, edgeService, queryLayer),
	}
}

// detectGateways collects every gateway seen in the body or in a script URL.
// The result is sorted so that equal inputs give equal output.
func (c *Classifier) detectGateways(body string, scripts []string) []string {
	detected := []string{}
	c.set.Gateways.Each(func(cat indicators.Category) bool {
		if cat.Matches(body) || cat.MatchesAny(scripts) {
			detected = append(detected, indicators.DisplayLabel(cat.Label))
		}
		return true
	})
	sort.Strings(detected)
	return detected
}

func (c *Classifier) detectBotChallenge(body string) bool {
	return c.set.Challenge().Matches(body)
}

func (c *Classifier) detectEdgeInBody(body string) bool {
	return c.set.Edge().Matches(body)
}

// detectEdgeInHeaders looks for the ray-identifier token in a lower-cased dump
// of all header names and values.
func (c *Classifier) detectEdgeInHeaders(headers http.Header) bool {
	if len(headers) == 0 {
		return false
	}
	return strings.Contains(headerBlob(headers), c.set.EdgeHeaderToken)
}

func (c *Classifier) detectQueryLayer(body string) bool {
	return strings.Contains(body, c.set.QueryLayerMarker)
}

// detectPlatform returns the first platform, in table order, with a matching pattern.
func (c *Classifier) detectPlatform(body string) string {
	platform := models.UnknownPlatform
	c.set.Platforms.Each(func(cat indicators.Category) bool {
		if cat.Matches(body) {
			platform = indicators.DisplayLabel(cat.Label)
			return false
		}
		return true
	})
	return platform
}

func headerBlob(headers http.Header) string {
	var b strings.Builder
	for name, values := range headers {
		b.WriteString(strings.ToLower(name))
		b.WriteString(": ")
		b.WriteString(strings.ToLower(strings.Join(values, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}
