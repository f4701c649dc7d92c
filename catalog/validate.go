package catalog

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Validator enforces the no-broken-image invariant: a product reaches a
// shopper only if its image reference resolves. Invalid products are
// dropped quietly — the contract is "never show a broken image", not
// "never lose a product".
type Validator struct {
	// LocalPrefix is the root-relative prefix identifying locally served
	// images, e.g. "/images".
	LocalPrefix string
	// Root is the on-disk directory LocalPrefix maps to.
	Root string
}

// FilterValid returns the products whose identity fields are populated
// and whose image reference resolves, preserving input order.
func (v *Validator) FilterValid(products []Product) []Product {
	valid := make([]Product, 0, len(products))
	for _, p := range products {
		if v.Valid(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// Valid reports whether a single product may be surfaced.
func (v *Validator) Valid(p Product) bool {
	if p.ID == "" || p.Name == "" || p.Image == "" {
		return false
	}
	if p.Price <= 0 {
		return false
	}
	if v.isLocal(p.Image) {
		return v.localExists(p.Image)
	}
	return isAbsoluteURL(p.Image)
}

func (v *Validator) isLocal(image string) bool {
	prefix := strings.TrimSuffix(v.LocalPrefix, "/")
	return prefix != "" && strings.HasPrefix(image, prefix+"/")
}

func (v *Validator) localExists(image string) bool {
	prefix := strings.TrimSuffix(v.LocalPrefix, "/")
	rel := strings.TrimPrefix(image, prefix+"/")
	info, err := os.Stat(filepath.Join(v.Root, filepath.FromSlash(rel)))
	return err == nil && !info.IsDir()
}

func isAbsoluteURL(image string) bool {
	u, err := url.Parse(image)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
