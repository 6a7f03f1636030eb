package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// scriptSelector matches external scripts only; inline scripts carry no src.
const scriptSelector = "script[src]"

// ScriptExtractor pulls externally referenced script URLs out of an HTML page.
type ScriptExtractor struct {
	logger zerolog.Logger
}

// NewScriptExtractor creates a new ScriptExtractor.
func NewScriptExtractor(logger zerolog.Logger) *ScriptExtractor {
	return &ScriptExtractor{
		logger: logger.With().Str("component", "ScriptExtractor").Logger(),
	}
}

// Extract returns the src attribute of every <script> element in document
// order. Values are kept as written, without resolving them against the page
// URL. Blank values are skipped and an unparsable document yields an empty list.
func (se *ScriptExtractor) Extract(body string) []string {
	sources := []string{}
	if strings.TrimSpace(body) == "" {
		return sources
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		se.logger.Warn().Err(err).Msg("Failed to parse HTML content for script extraction")
		return sources
	}

	doc.Find(scriptSelector).Each(func(_ int, s *goquery.Selection) {
		src, exists := s.Attr("src")
		if !exists {
			return
		}
		src = strings.TrimSpace(src)
		if src == "" {
			return
		}
		sources = append(sources, src)
	})

	se.logger.Debug().Int("count", len(sources)).Msg("Extracted script sources")
	return sources
}

// ExtractScriptSources is Extract without logging.
func ExtractScriptSources(body string) []string {
	return NewScriptExtractor(zerolog.Nop()).Extract(body)
}
