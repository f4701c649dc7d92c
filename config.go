package solestore

import (
	"time"

	"github.com/kmwangi/solestore/storage"
)

// SiteConfig holds all configuration for a solestore site.
type SiteConfig struct {
	Name string // Site name (default "Solestore")
	URL  string // Canonical URL (default "http://localhost:3000")

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/catalog.db")

	ImageRoot      string // Directory of per-category image folders (default "public/images")
	ImageURLPrefix string // URL prefix the image root is served under (default "/images")

	AdminPassword string // Required: admin login password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	Storage storage.Config // Object storage; uploads are disabled when Bucket is empty

	CatalogCacheTTL time.Duration // Page-layer catalog cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Solestore"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/catalog.db"
	}
	if c.ImageRoot == "" {
		c.ImageRoot = "public/images"
	}
	if c.ImageURLPrefix == "" {
		c.ImageURLPrefix = "/images"
	}
	if c.CatalogCacheTTL == 0 {
		c.CatalogCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets
// (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithPublisher injects a pre-built object storage publisher, bypassing
// the S3 client constructed from SiteConfig.Storage. Useful for tests
// and alternative backends.
func WithPublisher(p ObjectPublisher) Option {
	return func(a *App) {
		a.Publisher = p
	}
}
