// Package solestore is an e-commerce storefront engine built with Go,
// Echo and templ. It materializes product catalogs from a curated store,
// a legacy image store, or raw image directories, optimizes uploaded
// photographs, and publishes them to S3-compatible object storage.
//
// Users provide their own templ templates via the ViewFuncs struct for
// HTML pages; JSON endpoints under /api/ work without any views.
package solestore

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/kmwangi/solestore/catalog"
	"github.com/kmwangi/solestore/storage"
)

// ObjectPublisher uploads and removes published image variants. Satisfied
// by *storage.Publisher.
type ObjectPublisher interface {
	Publish(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ViewFuncs holds user-provided templ components the engine renders for
// HTML routes. Any nil field disables the corresponding HTML route; the
// JSON API is always available.
type ViewFuncs struct {
	Catalog        func(cat catalog.Category, products []catalog.Product, facets []string, activeFacet string) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(images []catalog.StoredImage, message string, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central solestore application. It wires together the store,
// resolver, validator, cache, publisher, handlers and middleware.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Store     *Store
	Resolver  *catalog.Resolver
	Validator *catalog.Validator
	Cache     *CatalogCache
	Publisher ObjectPublisher
	Views     ViewFuncs

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a solestore App with the given configuration and views.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, pipeline, middleware and routes, then
// starts the server.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("solestore: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("solestore: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("solestore: init store: %w", err)
	}
	a.Store = store

	scanner := &catalog.Scanner{
		Root:      a.Config.ImageRoot,
		URLPrefix: a.Config.ImageURLPrefix,
	}
	a.Resolver = &catalog.Resolver{
		Curated: store,
		Legacy:  store,
		Scanner: scanner,
		Log:     log.New(os.Stderr, "", log.LstdFlags),
	}
	a.Validator = &catalog.Validator{
		LocalPrefix: a.Config.ImageURLPrefix,
		Root:        a.Config.ImageRoot,
	}
	a.Cache = NewCatalogCache(a.listCategory, a.Config.CatalogCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Publisher == nil && a.Config.Storage.Bucket != "" {
		pub, err := storage.NewPublisher(context.Background(), a.Config.Storage)
		if err != nil {
			return fmt.Errorf("solestore: init publisher: %w", err)
		}
		a.Publisher = pub
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// listCategory is the page-layer pipeline: resolve through the fallback
// chain, then drop anything with an unreachable image. Facet filtering
// happens after the cache so every facet shares one resolved list.
func (a *App) listCategory(cat catalog.Category) []catalog.Product {
	return a.Validator.FilterValid(a.Resolver.Resolve(cat))
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.Static(a.Config.ImageURLPrefix, a.Config.ImageRoot)
	e.GET("/healthz", a.handleHealth)

	// Public catalog API
	e.GET("/api/catalog/", a.handleCategories)
	e.GET("/api/catalog/:category/", a.handleCatalog)

	// HTML catalog pages, if the embedding site provided views
	if a.Views.Catalog != nil {
		e.GET("/catalog/:category/", a.handleCatalogPage)
	}

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.PUT("/admin/images/:id/", a.handleImageUpdate)
	e.DELETE("/admin/images/:id/", a.handleImageDelete)
	e.POST("/admin/products/save/", a.handleCuratedSave)
	e.DELETE("/admin/products/:id/", a.handleCuratedDelete)
}

// Close cleans up resources. Call when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback
// if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("solestore: required environment variable %s is not set", key)
	}
	return v
}
