package catalog

import (
	"path"
	"strings"
)

// OtherFacet groups products matching none of a category's positive
// facets. It is evaluated last, after every positive facet, so its
// definition cannot be circular.
const OtherFacet = "Other"

// facetRule classifies an already-resolved product into one UI facet via
// substring heuristics over its name, image filename and description.
// Explicit exclusions fire before the positive patterns.
type facetRule struct {
	any     []string
	exclude []string
}

var categoryFacets = map[Category][]string{
	Officials: {"Boots", "Empire", "Casuals", "Mules", "Clarks", OtherFacet},
	Sneakers:  {"Valentino", "McQueen", "Converse", "Adidas", "New Balance", OtherFacet},
	Jordan:    {"Jordan 1", "Jordan 4", "Jordan 11", "Retro", OtherFacet},
	Vans:      {"Old Skool", "Knu Skool", "Sk8-Hi", "Slip-On", OtherFacet},
	AirMax:    {"90s", "95s", "97s", "270s", OtherFacet},
}

var facetRules = map[Category]map[string]facetRule{
	Officials: {
		"Boots":  {any: []string{"boot", "chelsea", "brogue"}},
		"Empire": {any: []string{"empire"}},
		// Clarks models photograph like casuals; the exclusion keeps the
		// Casuals facet clean.
		"Casuals": {any: []string{"casual"}, exclude: []string{"clarks"}},
		"Mules":   {any: []string{"mule"}},
		"Clarks":  {any: []string{"clarks", "wallabee"}},
	},
	Sneakers: {
		"Valentino":   {any: []string{"valentino"}},
		"McQueen":     {any: []string{"mcqueen"}},
		"Converse":    {any: []string{"converse"}},
		"Adidas":      {any: []string{"samba", "campus", "adidas"}},
		"New Balance": {any: []string{"new balance", "newbalance", "nb530"}},
	},
	Jordan: {
		"Jordan 1":  {any: []string{"jordan 1", "jordan1"}, exclude: []string{"jordan 10", "jordan10", "jordan 11", "jordan11", "jordan 12", "jordan12", "jordan 13", "jordan13", "jordan 14", "jordan14"}},
		"Jordan 4":  {any: []string{"jordan 4", "jordan4"}},
		"Jordan 11": {any: []string{"jordan 11", "jordan11"}},
		"Retro":     {any: []string{"retro"}},
	},
	Vans: {
		"Old Skool": {any: []string{"old skool", "oldskool"}, exclude: []string{"knu"}},
		"Knu Skool": {any: []string{"knu"}},
		"Sk8-Hi":    {any: []string{"sk8"}},
		"Slip-On":   {any: []string{"slip"}},
	},
	AirMax: {
		"90s":  {any: []string{"90"}, exclude: []string{"270", "720"}},
		"95s":  {any: []string{"95"}},
		"97s":  {any: []string{"97"}},
		"270s": {any: []string{"270"}},
	},
}

// Facets returns the UI facet values for a category, or nil when the
// category has no facet navigation.
func Facets(cat Category) []string {
	return categoryFacets[cat]
}

// MatchesFacet reports whether a product belongs to the named facet of
// its category. Stored intent wins: a tag equal to any facet name
// classifies the product on its own, and heuristics run only for
// untagged products.
func MatchesFacet(p Product, facet string) bool {
	if facet == "" {
		return true
	}
	if strings.EqualFold(facet, OtherFacet) {
		return matchesOther(p)
	}
	if tagged, ok := tagClassification(p, facet); ok {
		return tagged
	}
	return matchesHeuristic(p, p.Category, facet)
}

// FilterByFacet keeps the products matching the facet, in input order.
func FilterByFacet(products []Product, facet string) []Product {
	if facet == "" {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if MatchesFacet(p, facet) {
			out = append(out, p)
		}
	}
	return out
}

// tagClassification resolves facet membership from tags alone. The
// second return is false when no tag names any facet of the category,
// in which case heuristics decide.
func tagClassification(p Product, facet string) (bool, bool) {
	decided := false
	for _, tag := range p.Tags {
		if strings.EqualFold(tag, facet) {
			return true, true
		}
		for _, f := range categoryFacets[p.Category] {
			if strings.EqualFold(tag, f) {
				decided = true
			}
		}
	}
	if decided {
		// Tagged with some other facet of this category.
		return false, true
	}
	return false, false
}

func matchesHeuristic(p Product, cat Category, facet string) bool {
	rules := facetRules[cat]
	rule, ok := rules[facet]
	if !ok {
		return false
	}
	haystack := strings.ToLower(p.Name + " " + path.Base(p.Image) + " " + p.Description)
	for _, ex := range rule.exclude {
		if strings.Contains(haystack, ex) {
			return false
		}
	}
	for _, m := range rule.any {
		if strings.Contains(haystack, m) {
			return true
		}
	}
	return false
}

func matchesOther(p Product) bool {
	for _, facet := range categoryFacets[p.Category] {
		if facet == OtherFacet {
			continue
		}
		if MatchesFacet(p, facet) {
			return false
		}
	}
	return true
}
