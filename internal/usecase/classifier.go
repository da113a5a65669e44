package usecase

import (
	"strings"

	"github.com/pricelens/backend/internal/domain"
)

// Rule maps a lowercased query to a product family when Matches returns true
type Rule struct {
	Family  domain.Family
	Matches func(query string) bool
}

// containsAny matches when the query contains at least one of the keywords
func containsAny(keywords ...string) func(string) bool {
	return func(query string) bool {
		for _, kw := range keywords {
			if strings.Contains(query, kw) {
				return true
			}
		}
		return false
	}
}

// allOf matches when every predicate matches
func allOf(preds ...func(string) bool) func(string) bool {
	return func(query string) bool {
		for _, p := range preds {
			if !p(query) {
				return false
			}
		}
		return true
	}
}

// DefaultRules are evaluated in order; the first match wins
var DefaultRules = []Rule{
	{Family: domain.FamilyBoAt, Matches: containsAny("boat", "airdopes")},
	{Family: domain.FamilyIPhone, Matches: allOf(containsAny("iphone"), containsAny("16", "pro"))},
	{Family: domain.FamilySamsung, Matches: containsAny("samsung", "galaxy", "s24")},
	{Family: domain.FamilyNintendo, Matches: containsAny("nintendo", "switch")},
}

// Classifier assigns a product family to free-text queries
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier over rules (DefaultRules when empty)
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Classifier{rules: rules}
}

// Classify returns the family of the first matching rule, or FamilyUnknown
func (c *Classifier) Classify(query string) domain.Family {
	q := strings.ToLower(query)
	for _, r := range c.rules {
		if r.Matches(q) {
			return r.Family
		}
	}
	return domain.FamilyUnknown
}
