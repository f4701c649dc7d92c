package catalog

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// imageExts are the file extensions surfaced by the scanner, matched
// case-insensitively.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Scanner materializes products from a directory of raw photographs.
// Each category owns one flat directory under Root; scanning is a
// blocking directory read with no cache, so callers invoking it per
// request should bound concurrency themselves.
type Scanner struct {
	// Root is the on-disk directory holding one subdirectory per category.
	Root string
	// URLPrefix is the root-relative prefix the images are served under,
	// e.g. "/images".
	URLPrefix string
}

// ScanCategory lists image files in the category's directory and runs
// each through the inference engine. A missing directory means zero
// products, not an error. Output order follows the sorted directory
// listing, which keeps ids, names and descriptions stable across scans
// of an unchanged directory.
func (s *Scanner) ScanCategory(cat Category) ([]Product, error) {
	dir := filepath.Join(s.Root, string(cat))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var products []Product
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !imageExts[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		p := InferProduct(cat, name, len(products))
		p.Image = path.Join(s.URLPrefix, string(cat), name)
		products = append(products, p)
	}
	return products, nil
}
