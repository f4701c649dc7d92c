package catalog

import (
	"log"
	"path"
	"strconv"
	"strings"
)

// CuratedSource yields admin-entered, authoritative product rows for a
// category.
type CuratedSource interface {
	CuratedByCategory(cat Category) ([]Product, error)
}

// LegacySource yields image-centric rows predating curated products.
type LegacySource interface {
	ImagesByCategory(cat Category) ([]StoredImage, error)
}

// priceOverrides forces display prices for certain brand keywords in the
// inferred or stored name, even when an admin curated a different price.
// Evaluated in order, first hit wins. Kept intentionally: it pins display
// prices to current pricing policy regardless of stale stored values.
var priceOverrides = []priceTier{
	{keyword: "converse", price: 1900},
	{keyword: "shox", price: 2900},
}

// discontinuedKeywords name model families no longer sold; matching
// products are dropped from every listing regardless of origin tier.
var discontinuedKeywords = []string{"yeezy"}

// Resolver answers category reads through a three-tier fallback chain:
// curated product store, then legacy image store, then filesystem scan
// plus inference. The first tier producing a non-empty list wins. Store
// errors are logged and treated as empty results so the chain falls
// through instead of failing the page.
type Resolver struct {
	Curated CuratedSource
	Legacy  LegacySource
	Scanner *Scanner
	Log     *log.Logger
}

// Resolve returns the deduplicated product list for a category. It is
// read-only and safe for concurrent use.
func (r *Resolver) Resolve(cat Category) []Product {
	for _, tier := range []func(Category) ([]Product, error){
		r.resolveCurated,
		r.resolveLegacy,
		r.resolveScan,
	} {
		products, err := tier(cat)
		if err != nil {
			r.logf("catalog: resolve %s: %v", cat, err)
			continue
		}
		if len(products) > 0 {
			return dedupeByImage(products)
		}
	}
	return nil
}

func (r *Resolver) resolveCurated(cat Category) ([]Product, error) {
	if r.Curated == nil {
		return nil, nil
	}
	products, err := r.Curated.CuratedByCategory(cat)
	if err != nil {
		return nil, err
	}
	return applyPricingPolicy(products), nil
}

func (r *Resolver) resolveLegacy(cat Category) ([]Product, error) {
	if r.Legacy == nil {
		return nil, nil
	}
	records, err := r.Legacy.ImagesByCategory(cat)
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(records))
	for i, rec := range records {
		products = append(products, ProductFromImage(rec, i))
	}
	return applyPricingPolicy(products), nil
}

func (r *Resolver) resolveScan(cat Category) ([]Product, error) {
	if r.Scanner == nil {
		return nil, nil
	}
	return r.Scanner.ScanCategory(cat)
}

func (r *Resolver) logf(format string, args ...any) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}

// ProductFromImage adapts a legacy image record to a surfaced product.
// Admin override fields win; anything missing is inferred from the
// filename the same way a filesystem scan would.
func ProductFromImage(rec StoredImage, position int) Product {
	inferred := InferProduct(rec.Category, baseFilename(rec), position)
	p := Product{
		ID:          "img-" + itoa(rec.ID),
		Name:        rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		Image:       rec.URL,
		Category:    rec.Category,
		Gender:      inferred.Gender,
	}
	if rec.Subcategory != "" {
		p.Tags = []string{rec.Subcategory}
	}
	if p.Name == "" {
		p.Name = inferred.Name
	}
	if p.Price <= 0 {
		p.Price = familyFor(rec.Category).priceFor(p.Name)
	}
	if p.Description == "" {
		p.Description = inferred.Description
	}
	return p
}

func baseFilename(rec StoredImage) string {
	if rec.Filename != "" {
		return rec.Filename
	}
	return path.Base(rec.URL)
}

// applyPricingPolicy drops discontinued models and rewrites prices for
// brand-keyword matches. It runs on the curated and legacy tiers; the
// filesystem tier already prices through the same inference tables.
func applyPricingPolicy(products []Product) []Product {
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		lower := strings.ToLower(p.Name)
		if containsAny(lower, discontinuedKeywords) {
			continue
		}
		for _, o := range priceOverrides {
			if strings.Contains(lower, o.keyword) {
				p.Price = o.price
				break
			}
		}
		kept = append(kept, p)
	}
	return kept
}

// dedupeByImage keeps the first product seen per image reference,
// preserving insertion order.
func dedupeByImage(products []Product) []Product {
	seen := make(map[string]bool, len(products))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if seen[p.Image] {
			continue
		}
		seen[p.Image] = true
		out = append(out, p)
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
