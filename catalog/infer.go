package catalog

import (
	"path/filepath"
	"strings"
	"unicode"
)

// nameRule maps filename substrings to a display name. All entries in
// match must appear in the lowercased filename; none in exclude may.
// Rules are evaluated top to bottom and the first hit wins, so numeric
// model families are listed most-specific-first ("jordan11" before
// "jordan1") and exclusions fire before the general pattern.
type nameRule struct {
	match   []string
	exclude []string
	name    string
}

// priceTier maps a keyword in the inferred display name to a price.
// Evaluated in order, first hit wins.
type priceTier struct {
	keyword string
	price   int
}

// family bundles the inference tables for one product line.
type family struct {
	category     Category
	rules        []nameRule
	tiers        []priceTier
	defaultPrice int
	defaultName  string
	descriptions []string
	gender       Gender
}

// InferProduct derives a complete product from a raw filename. It is a
// pure function of its inputs: identical filename and position always
// produce an identical record, so re-scanning an unchanged directory is
// idempotent. position indexes the file within its directory listing and
// only selects the description.
func InferProduct(cat Category, filename string, position int) Product {
	fam := familyFor(cat)
	name := fam.inferName(filename)
	return Product{
		ID:          AutoID(cat, filename),
		Name:        name,
		Description: fam.descriptionAt(position),
		Price:       fam.priceFor(name),
		Category:    cat,
		Gender:      fam.gender,
	}
}

// AutoID builds the stable id for a filesystem-derived product:
// "<family>-auto-<slug of the filename without extension>".
func AutoID(cat Category, filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return string(cat) + "-auto-" + Slugify(base)
}

func (f *family) inferName(filename string) string {
	lower := strings.ToLower(filename)
	for _, r := range f.rules {
		if r.matches(lower) {
			return r.name
		}
	}
	if name := cleanupName(filename); name != "" {
		return name
	}
	return f.defaultName
}

func (r nameRule) matches(lower string) bool {
	for _, ex := range r.exclude {
		if strings.Contains(lower, ex) {
			return false
		}
	}
	for _, m := range r.match {
		if !strings.Contains(lower, m) {
			return false
		}
	}
	return true
}

// priceFor keys the price off the inferred display name, not the raw
// filename: the name table already resolved brand ambiguity.
func (f *family) priceFor(name string) int {
	lower := strings.ToLower(name)
	for _, t := range f.tiers {
		if strings.Contains(lower, t.keyword) {
			return t.price
		}
	}
	return f.defaultPrice
}

// descriptionAt cycles deterministically through the family's marketing
// pool. No randomness: tests and repeated scans see identical output.
func (f *family) descriptionAt(position int) string {
	if len(f.descriptions) == 0 {
		return ""
	}
	if position < 0 {
		position = 0
	}
	return f.descriptions[position%len(f.descriptions)]
}

// cleanupName is the generic fallback when no rule matches: strip the
// extension and digits, break on separators, title-case what remains.
func cleanupName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	var b strings.Builder
	for _, r := range base {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.' || r == ' ':
			b.WriteByte(' ')
		}
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
