package analytics

import "strings"

// RestrictionTag pins a product's valid sales to exactly one branch
// group. Orders placed against the other group (or an ungrouped branch)
// are discarded before any counter is touched.
type RestrictionTag int

const (
	OnlyNext RestrictionTag = iota + 1
	OnlyCoffemania
)

// ProductIdentity carries the stable identity of a product. Two raw
// records with the same normalized name are the same product regardless
// of display casing.
type ProductIdentity struct {
	DisplayName    string           `json:"displayName"`
	NormalizedName string           `json:"normalizedName"`
	Category       string           `json:"category"`
	Restrictions   []RestrictionTag `json:"restrictions,omitempty"`
}

// NormalizeProductName lower-cases, collapses inner whitespace and
// trims. Idempotent.
func NormalizeProductName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Category inference is coarse and domain-specific: first substring
// match wins, anything unmatched is "Other".
var categoryRules = []struct {
	substr   string
	category string
}{
	{"chocolate", "Chocolate"},
	{"croissant", "Pastry"},
	{"cake", "Cake"},
	{"cookie", "Cookie"},
}

func inferCategory(normalized string) string {
	for _, rule := range categoryRules {
		if strings.Contains(normalized, rule.substr) {
			return rule.category
		}
	}
	return "Other"
}

// restrictionRules is the fixed table of group-exclusive products.
// Matching ignores spacing so "ChocolateOnly" and "Chocolate Only" hit
// the same rule.
var restrictionRules = []struct {
	match string
	tag   RestrictionTag
}{
	{"chocolate only", OnlyNext},
	{"coffemania special", OnlyCoffemania},
}

func restrictionsFor(normalized string) []RestrictionTag {
	compact := strings.ReplaceAll(normalized, " ", "")
	var tags []RestrictionTag
	for _, rule := range restrictionRules {
		if strings.Contains(compact, strings.ReplaceAll(rule.match, " ", "")) {
			tags = append(tags, rule.tag)
		}
	}
	return tags
}

// NewProductIdentity derives the full identity from a raw display name.
func NewProductIdentity(displayName string) ProductIdentity {
	normalized := NormalizeProductName(displayName)
	return ProductIdentity{
		DisplayName:    displayName,
		NormalizedName: normalized,
		Category:       inferCategory(normalized),
		Restrictions:   restrictionsFor(normalized),
	}
}

// HasRestriction reports whether the identity carries the given tag.
func (p ProductIdentity) HasRestriction(tag RestrictionTag) bool {
	for _, t := range p.Restrictions {
		if t == tag {
			return true
		}
	}
	return false
}
