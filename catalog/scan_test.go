package catalog

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func setupImageRoot(t *testing.T, cat Category, filenames ...string) *Scanner {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, string(cat))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create category dir: %v", err)
	}
	for _, name := range filenames {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return &Scanner{Root: root, URLPrefix: "/images"}
}

func TestScanCategoryInfersProducts(t *testing.T) {
	s := setupImageRoot(t, Jordan, "Jordan11-blue.jpg", "jordan1-red.png")

	products, err := s.ScanCategory(Jordan)
	if err != nil {
		t.Fatalf("ScanCategory failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	// os.ReadDir sorts by name, so the uppercase file comes first.
	if products[0].Name != "Jordan 11" || products[1].Name != "Jordan 1" {
		t.Fatalf("names = %q, %q; want Jordan 11, Jordan 1", products[0].Name, products[1].Name)
	}
	for _, p := range products {
		if p.Price <= 0 {
			t.Errorf("%s: price = %d, want positive", p.Name, p.Price)
		}
		if p.Image == "" {
			t.Errorf("%s: image is empty", p.Name)
		}
	}
	if products[0].Image != "/images/jordan/Jordan11-blue.jpg" {
		t.Fatalf("image = %q, want /images/jordan/Jordan11-blue.jpg", products[0].Image)
	}
}

func TestScanCategorySkipsNonImages(t *testing.T) {
	s := setupImageRoot(t, Vans, "oldskool-black.jpg", "notes.txt", "inventory.csv", "sk8-hi.WEBP")

	products, err := s.ScanCategory(Vans)
	if err != nil {
		t.Fatalf("ScanCategory failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2 (extension filter)", len(products))
	}
}

func TestScanCategoryMissingDir(t *testing.T) {
	s := &Scanner{Root: t.TempDir(), URLPrefix: "/images"}

	products, err := s.ScanCategory(AirMax)
	if err != nil {
		t.Fatalf("missing directory should not error, got %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("got %d products from missing directory, want 0", len(products))
	}
}

func TestScanCategoryIdempotent(t *testing.T) {
	s := setupImageRoot(t, Sneakers, "converse-hi.jpg", "samba-og.png", "prada-white.webp")

	first, err := s.ScanCategory(Sneakers)
	if err != nil {
		t.Fatalf("first scan failed: %v", err)
	}
	second, err := s.ScanCategory(Sneakers)
	if err != nil {
		t.Fatalf("second scan failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("re-scanning an unchanged directory produced different products")
	}
}
