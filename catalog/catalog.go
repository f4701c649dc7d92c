// Package catalog materializes the storefront catalog: it infers product
// records from raw image filenames, resolves category listings through a
// curated-store / legacy-store / filesystem fallback chain, validates that
// every surfaced product has a reachable image, and classifies products
// into UI-facing subcategory facets.
package catalog

import "strings"

// Category is a product family. Each family maps to one flat directory
// under the image root and carries its own inference tables.
type Category string

const (
	Officials  Category = "officials"
	Sneakers   Category = "sneakers"
	Jordan     Category = "jordan"
	AirMax     Category = "airmax"
	AirForce   Category = "airforce"
	Vans       Category = "vans"
	Casual     Category = "casual"
	Customized Category = "customized"
)

// Categories returns all product families in display order.
func Categories() []Category {
	return []Category{Officials, Sneakers, Jordan, AirMax, AirForce, Vans, Casual, Customized}
}

// ParseCategory normalizes a raw string to a known Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return known, true
		}
	}
	return "", false
}

// Gender is the target audience of a product.
type Gender string

const (
	Men    Gender = "Men"
	Unisex Gender = "Unisex"
)

// Product is the entity surfaced to shoppers. IDs are namespaced by origin:
// curated records keep their stored id, legacy image records use "img-<n>",
// and filesystem-derived products use "<family>-auto-<slug>".
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Gender      Gender   `json:"gender"`
	Featured    bool     `json:"featured"`
}

// StoredImage is a legacy image record: an upload predating curated
// products. Name, Price and Description are optional admin overrides;
// zero values mean "derive from the filename".
type StoredImage struct {
	ID           int64    `json:"id"`
	Category     Category `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Filename     string   `json:"filename"`
	URL          string   `json:"url"`
	StoragePath  string   `json:"storage_path"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Name         string   `json:"name,omitempty"`
	Price        int      `json:"price,omitempty"`
	Description  string   `json:"description,omitempty"`
	UploadedBy   string   `json:"uploaded_by,omitempty"`
	FileSize     int64    `json:"file_size,omitempty"`
	MimeType     string   `json:"mime_type,omitempty"`
	Width        int      `json:"width,omitempty"`
	Height       int      `json:"height,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// Slugify converts a name to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
