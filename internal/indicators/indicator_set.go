package indicators

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
)

// Category is one label of a taxonomy together with the substrings that signal it.
type Category struct {
	Label    string
	Patterns []string
}

// Matches reports whether any pattern is a substring of text. Both sides are
// expected to be lower-cased already.
func (c Category) Matches(text string) bool {
	for _, pattern := range c.Patterns {
		if strings.Contains(text, pattern) {
			return true
		}
	}
	return false
}

// MatchesAny reports whether any pattern is a substring of any of texts.
func (c Category) MatchesAny(texts []string) bool {
	for _, text := range texts {
		if c.Matches(text) {
			return true
		}
	}
	return false
}

// IndicatorSet is an ordered, read-only list of categories. Order is the
// definition order and is significant for first-match lookups.
type IndicatorSet struct {
	name       string
	categories []Category
	index      map[string]int
}

// NewIndicatorSet validates and freezes categories. Labels must be unique and
// non-empty, every category needs at least one non-empty pattern. Patterns are
// stored lower-cased.
func NewIndicatorSet(name string, categories []Category) (*IndicatorSet, error) {
	set := &IndicatorSet{
		name:       name,
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for _, c := range categories {
		label := strings.TrimSpace(c.Label)
		if label == "" {
			return nil, errorwrapper.NewValidationError(name+".label", c.Label, "category label cannot be empty")
		}
		if _, dup := set.index[label]; dup {
			return nil, errorwrapper.NewValidationError(name+".label", label, "duplicate category label")
		}
		if len(c.Patterns) == 0 {
			return nil, errorwrapper.NewValidationError(name+"."+label, c.Patterns, "pattern list cannot be empty")
		}

		patterns := make([]string, 0, len(c.Patterns))
		for _, p := range c.Patterns {
			if p == "" {
				return nil, errorwrapper.NewValidationError(name+"."+label, p, "pattern cannot be empty")
			}
			patterns = append(patterns, strings.ToLower(p))
		}

		set.index[label] = len(set.categories)
		set.categories = append(set.categories, Category{Label: label, Patterns: patterns})
	}

	return set, nil
}

// MustNewIndicatorSet is NewIndicatorSet for compiled-in tables.
func MustNewIndicatorSet(name string, categories []Category) *IndicatorSet {
	set, err := NewIndicatorSet(name, categories)
	if err != nil {
		panic(err)
	}
	return set
}

// Name returns the taxonomy name used in errors and logs.
func (s *IndicatorSet) Name() string {
	return s.name
}

// Len returns the number of categories.
func (s *IndicatorSet) Len() int {
	return len(s.categories)
}

// Categories returns a copy of the categories in definition order.
func (s *IndicatorSet) Categories() []Category {
	out := make([]Category, len(s.categories))
	for i, c := range s.categories {
		out[i] = Category{Label: c.Label, Patterns: append([]string(nil), c.Patterns...)}
	}
	return out
}

// Lookup returns the category with the given label.
func (s *IndicatorSet) Lookup(label string) (Category, bool) {
	i, ok := s.index[label]
	if !ok {
		return Category{}, false
	}
	return s.categories[i], true
}

// Each calls fn for every category in definition order until fn returns false.
func (s *IndicatorSet) Each(fn func(Category) bool) {
	for _, c := range s.categories {
		if !fn(c) {
			return
		}
	}
}

// DisplayLabel upper-cases the first letter of label and lower-cases the rest,
// e.g. "stripe" -> "Stripe", "authorize.net" -> "Authorize.net".
func DisplayLabel(label string) string {
	if label == "" {
		return label
	}
	r, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(r)) + strings.ToLower(label[size:])
}
