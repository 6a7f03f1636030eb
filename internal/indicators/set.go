package indicators

import (
	"strings"

	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
)

// Set bundles every taxonomy the classifier needs. It is built once and only
// read afterwards, so one instance can be shared by concurrent analyses.
type Set struct {
	Gateways         *IndicatorSet
	Security         *IndicatorSet
	Platforms        *IndicatorSet
	EdgeHeaderToken  string
	QueryLayerMarker string
}

// NewSet checks that the security taxonomy carries both sub-lists the
// classifier reads and lower-cases the flat markers.
func NewSet(gateways, security, platforms *IndicatorSet, edgeHeaderToken, queryLayerMarker string) (*Set, error) {
	if gateways == nil || security == nil || platforms == nil {
		return nil, errorwrapper.NewError("indicator set: gateways, security and platforms are all required")
	}
	for _, label := range []string{ChallengeCategory, EdgeCategory} {
		if _, ok := security.Lookup(label); !ok {
			return nil, errorwrapper.NewValidationError(security.Name(), label, "missing security category")
		}
	}
	if edgeHeaderToken == "" {
		return nil, errorwrapper.NewValidationError("edge_header_token", edgeHeaderToken, "edge header token cannot be empty")
	}
	if queryLayerMarker == "" {
		return nil, errorwrapper.NewValidationError("query_layer_marker", queryLayerMarker, "query layer marker cannot be empty")
	}

	return &Set{
		Gateways:         gateways,
		Security:         security,
		Platforms:        platforms,
		EdgeHeaderToken:  strings.ToLower(edgeHeaderToken),
		QueryLayerMarker: strings.ToLower(queryLayerMarker),
	}, nil
}

// Challenge returns the bot-challenge sub-list of the security taxonomy.
func (s *Set) Challenge() Category {
	c, _ := s.Security.Lookup(ChallengeCategory)
	return c
}

// Edge returns the edge-service sub-list of the security taxonomy.
func (s *Set) Edge() Category {
	c, _ := s.Security.Lookup(EdgeCategory)
	return c
}

var defaultSet = mustBuildDefault()

func mustBuildDefault() *Set {
	set, err := NewSet(
		MustNewIndicatorSet("gateways", gatewayCategories),
		MustNewIndicatorSet("security", securityCategories),
		MustNewIndicatorSet("platforms", platformCategories),
		EdgeHeaderToken,
		QueryLayerMarker,
	)
	if err != nil {
		panic(err)
	}
	return set
}

// Default returns the compiled-in indicator tables.
func Default() *Set {
	return defaultSet
}
