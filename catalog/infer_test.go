package catalog

import (
	"reflect"
	"testing"
)

func TestInferProductIdempotent(t *testing.T) {
	first := InferProduct(Jordan, "Jordan11-concord.jpg", 3)
	second := InferProduct(Jordan, "Jordan11-concord.jpg", 3)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated inference differs: %+v vs %+v", first, second)
	}
}

func TestJordanModelDisambiguation(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"Jordan11-blue.jpg", "Jordan 11"},
		{"jordan1-red.png", "Jordan 1"},
		{"jordan12-taxi.webp", "Jordan 12"},
		{"jordan10-chicago.jpg", "Jordan 10"},
		{"jordan4-military.jpg", "Jordan 4"},
		{"j11-cap-and-gown.jpg", "Jordan 11"},
		{"j10-steel.jpg", "Jordan 10"},
	}
	for _, tt := range tests {
		p := InferProduct(Jordan, tt.filename, 0)
		if p.Name != tt.want {
			t.Errorf("InferProduct(jordan, %q).Name = %q, want %q", tt.filename, p.Name, tt.want)
		}
		if p.Price <= 0 {
			t.Errorf("InferProduct(jordan, %q).Price = %d, want positive", tt.filename, p.Price)
		}
	}
}

func TestValentinoShoxExclusion(t *testing.T) {
	p := InferProduct(Sneakers, "valentino-shox-sole-white.jpg", 0)
	if p.Name != "Valentino Sneaker" {
		t.Fatalf("Name = %q, want %q", p.Name, "Valentino Sneaker")
	}
	if p.Price != 3800 {
		t.Fatalf("Price = %d, want 3800", p.Price)
	}

	p = InferProduct(Sneakers, "shox-r4-silver.jpg", 0)
	if p.Name != "Nike Shox" {
		t.Fatalf("Name = %q, want %q", p.Name, "Nike Shox")
	}
	if p.Price != 2900 {
		t.Fatalf("Price = %d, want 2900", p.Price)
	}
}

func TestConversePriceTier(t *testing.T) {
	p := InferProduct(Sneakers, "converse-all-star-hi.jpg", 0)
	if p.Name != "Converse Classic" {
		t.Fatalf("Name = %q, want %q", p.Name, "Converse Classic")
	}
	if p.Price != 1900 {
		t.Fatalf("Price = %d, want 1900", p.Price)
	}
}

func TestFallbackNameCleanup(t *testing.T) {
	p := InferProduct(Officials, "italian_leather_2024.jpg", 0)
	if p.Name != "Italian Leather" {
		t.Fatalf("Name = %q, want %q", p.Name, "Italian Leather")
	}
	if p.Price != 2500 {
		t.Fatalf("Price = %d, want family default 2500", p.Price)
	}
}

func TestDefaultLabelWhenNothingRemains(t *testing.T) {
	p := InferProduct(Officials, "20240115.jpg", 0)
	if p.Name != "Official Shoe" {
		t.Fatalf("Name = %q, want %q", p.Name, "Official Shoe")
	}
}

func TestOfficialsPriceTiers(t *testing.T) {
	tests := []struct {
		filename string
		want     int
	}{
		{"empire-leather-black.jpg", 4500},
		{"chelsea-boot-brown.jpg", 3500},
		{"casual-leather-tan.jpg", 2500},
		{"mule-slip-black.jpg", 2800},
	}
	for _, tt := range tests {
		p := InferProduct(Officials, tt.filename, 0)
		if p.Price != tt.want {
			t.Errorf("InferProduct(officials, %q).Price = %d, want %d", tt.filename, p.Price, tt.want)
		}
	}
}

func TestDescriptionsCycleDeterministically(t *testing.T) {
	pool := len(officialsFamily.descriptions)
	if pool == 0 {
		t.Fatal("officials description pool is empty")
	}
	first := InferProduct(Officials, "boot.jpg", 0).Description
	wrapped := InferProduct(Officials, "boot.jpg", pool).Description
	if first != wrapped {
		t.Fatalf("position 0 and %d should share a description, got %q vs %q", pool, first, wrapped)
	}
	second := InferProduct(Officials, "boot.jpg", 1).Description
	if pool > 1 && first == second {
		t.Fatalf("adjacent positions returned identical descriptions %q", first)
	}
}

func TestAutoIDStable(t *testing.T) {
	got := AutoID(Jordan, "Jordan11-Blue (1).jpg")
	want := "jordan-auto-jordan11-blue-1"
	if got != want {
		t.Fatalf("AutoID = %q, want %q", got, want)
	}
	if got != AutoID(Jordan, "Jordan11-Blue (1).jpg") {
		t.Fatal("AutoID is not stable across calls")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Air Max 270", "air-max-270"},
		{"  Converse  All Star ", "converse-all-star"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
