package services

import "strings"

// CategoryRule maps one fixed category to the keyword substrings that
// identify it in a raw label.
type CategoryRule struct {
	Name     string
	Keywords []string
}

// DefaultCategories is the closed category set. Rules are evaluated in
// declaration order and the first keyword hit wins, so order is the
// tie-break when a raw label could match more than one category.
var DefaultCategories = []CategoryRule{
	{Name: "Cafe", Keywords: []string{"cafe", "coffee", "coffee shop"}},
	{Name: "Restaurant", Keywords: []string{"restaurant", "dhaba", "eatery", "food"}},
	{Name: "Grocery", Keywords: []string{"grocery", "supermarket", "general store", "department store"}},
	{Name: "Medical", Keywords: []string{"medical", "pharmacy", "chemist", "drug"}},
	{Name: "Salon", Keywords: []string{"salon", "parlour", "beauty"}},
	{Name: "Electronics", Keywords: []string{"electronics", "mobile", "computer"}},
	{Name: "Hardware", Keywords: []string{"hardware"}},
	{Name: "Hospital", Keywords: []string{"hospital", "clinic"}},
	{Name: "Gym", Keywords: []string{"gym", "fitness"}},
}

// FallbackCategory is returned for empty input or when no rule matches.
const FallbackCategory = "Others"

// Normalizer maps free-text category labels onto a fixed category table.
type Normalizer struct {
	rules []CategoryRule
}

// NewNormalizer creates a Normalizer over the given ordered rule table.
// Pass DefaultCategories for the standard set.
func NewNormalizer(rules []CategoryRule) *Normalizer {
	return &Normalizer{rules: rules}
}

// Normalize returns the first category whose keyword list has a substring
// match against the lower-cased raw label, or FallbackCategory.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return FallbackCategory
	}

	lower := strings.ToLower(raw)
	for _, rule := range n.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Name
			}
		}
	}
	return FallbackCategory
}
