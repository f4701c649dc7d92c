// Command solestore runs the storefront engine in JSON-API mode: all
// site configuration comes from environment variables, and HTML views
// are left to embedding sites that use the library directly.
package main

import (
	"log"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/kmwangi/solestore"
	"github.com/kmwangi/solestore/storage"
)

func main() {
	cfg := solestore.SiteConfig{
		Name:           solestore.EnvOr("SITE_NAME", "Solestore"),
		URL:            strings.TrimSuffix(solestore.EnvOr("SITE_URL", "http://localhost:3000"), "/"),
		Addr:           solestore.EnvOr("ADDR", ":3000"),
		DatabasePath:   solestore.EnvOr("DATABASE_PATH", "data/catalog.db"),
		ImageRoot:      solestore.EnvOr("IMAGE_ROOT", "public/images"),
		ImageURLPrefix: solestore.EnvOr("IMAGE_URL_PREFIX", "/images"),
		AdminPassword:  solestore.MustEnv("ADMIN_PASSWORD"),
		SessionSecret:  solestore.MustEnv("ADMIN_SESSION_SECRET"),
		CookieSecure:   strings.EqualFold(solestore.EnvOr("COOKIE_SECURE", ""), "true"),
		Storage: storage.Config{
			Bucket:       solestore.EnvOr("S3_BUCKET", ""),
			Region:       solestore.EnvOr("S3_REGION", "auto"),
			Endpoint:     solestore.EnvOr("S3_ENDPOINT", ""),
			AccessKey:    solestore.EnvOr("S3_ACCESS_KEY", ""),
			SecretKey:    solestore.EnvOr("S3_SECRET_KEY", ""),
			CDNBaseURL:   solestore.EnvOr("CDN_BASE_URL", ""),
			UsePathStyle: strings.EqualFold(solestore.EnvOr("S3_PATH_STYLE", ""), "true"),
		},
	}

	app := solestore.New(cfg, solestore.ViewFuncs{})
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
