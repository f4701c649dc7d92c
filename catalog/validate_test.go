package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func setupValidator(t *testing.T, localFiles ...string) *Validator {
	t.Helper()
	root := t.TempDir()
	for _, rel := range localFiles {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte("img"), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	return &Validator{LocalPrefix: "/images", Root: root}
}

func validProduct(image string) Product {
	return Product{ID: "p1", Name: "Test", Price: 1000, Image: image, Category: Sneakers}
}

func TestValidLocalImage(t *testing.T) {
	v := setupValidator(t, "sneakers/converse.jpg")

	if !v.Valid(validProduct("/images/sneakers/converse.jpg")) {
		t.Fatal("existing local image should be valid")
	}
	if v.Valid(validProduct("/images/sneakers/missing.jpg")) {
		t.Fatal("missing local image should be invalid")
	}
}

func TestValidAbsoluteURL(t *testing.T) {
	v := setupValidator(t)

	if !v.Valid(validProduct("https://cdn.example.com/sneakers/converse.webp")) {
		t.Fatal("well-formed https URL should be valid")
	}
	if !v.Valid(validProduct("http://cdn.example.com/a.jpg")) {
		t.Fatal("well-formed http URL should be valid")
	}
	if v.Valid(validProduct("ftp://cdn.example.com/a.jpg")) {
		t.Fatal("non-http scheme should be invalid")
	}
	if v.Valid(validProduct("cdn.example.com/a.jpg")) {
		t.Fatal("relative reference outside the image root should be invalid")
	}
}

func TestInvalidIdentityFields(t *testing.T) {
	v := setupValidator(t)

	p := validProduct("https://cdn.example.com/a.jpg")
	p.ID = ""
	if v.Valid(p) {
		t.Fatal("empty id should be invalid")
	}

	p = validProduct("https://cdn.example.com/a.jpg")
	p.Name = ""
	if v.Valid(p) {
		t.Fatal("empty name should be invalid")
	}

	p = validProduct("")
	if v.Valid(p) {
		t.Fatal("empty image should be invalid")
	}

	p = validProduct("https://cdn.example.com/a.jpg")
	p.Price = 0
	if v.Valid(p) {
		t.Fatal("zero price should be invalid")
	}
}

func TestFilterValidPreservesOrder(t *testing.T) {
	v := setupValidator(t, "vans/a.jpg", "vans/c.jpg")

	in := []Product{
		{ID: "a", Name: "A", Price: 100, Image: "/images/vans/a.jpg"},
		{ID: "b", Name: "B", Price: 100, Image: "/images/vans/b.jpg"},
		{ID: "c", Name: "C", Price: 100, Image: "/images/vans/c.jpg"},
	}
	out := v.FilterValid(in)
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Fatalf("FilterValid = %+v, want a then c", out)
	}
}
