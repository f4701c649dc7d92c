package storage

import (
	"testing"
	"time"
)

func TestObjectKeyAt(t *testing.T) {
	ts := time.Unix(1700000000, 0).UTC()

	got := ObjectKeyAt(ts, "sneakers", "Converse", "Converse All Star", "webp")
	want := "sneakers/converse/1700000000-converse-all-star.webp"
	if got != want {
		t.Fatalf("ObjectKeyAt = %q, want %q", got, want)
	}
}

func TestObjectKeySubcategorySlug(t *testing.T) {
	ts := time.Unix(1700000000, 0).UTC()

	got := ObjectKeyAt(ts, "vans", "Old Skool", "Old Skool Black", "webp")
	want := "vans/old-skool/1700000000-old-skool-black.webp"
	if got != want {
		t.Fatalf("subcategory with spaces must slugify, got %q want %q", got, want)
	}
}

func TestObjectKeyDefaults(t *testing.T) {
	ts := time.Unix(1700000000, 0).UTC()

	got := ObjectKeyAt(ts, "jordan", "", "", "jpg")
	want := "jordan/general/1700000000-image.jpg"
	if got != want {
		t.Fatalf("ObjectKeyAt with empty subcategory/name = %q, want %q", got, want)
	}

	got = ObjectKeyAt(ts, "jordan", "retro", "bred", ".jpg")
	if got != "jordan/retro/1700000000-bred.jpg" {
		t.Fatalf("leading dot in ext should be stripped, got %q", got)
	}
}

func TestThumbKey(t *testing.T) {
	got := ThumbKey("sneakers/converse/1700000000-all-star.webp")
	want := "sneakers/converse/thumb-1700000000-all-star.webp"
	if got != want {
		t.Fatalf("ThumbKey = %q, want %q", got, want)
	}
}

func TestPublicURLCDN(t *testing.T) {
	cfg := Config{
		Bucket:     "shop-images",
		Region:     "auto",
		Endpoint:   "https://abc.r2.cloudflarestorage.com",
		CDNBaseURL: "https://cdn.example.com/",
	}
	got := PublicURL(cfg, "vans/general/1-old-skool.webp")
	want := "https://cdn.example.com/vans/general/1-old-skool.webp"
	if got != want {
		t.Fatalf("PublicURL = %q, want CDN-prefixed %q", got, want)
	}
}

func TestPublicURLEndpoint(t *testing.T) {
	cfg := Config{
		Bucket:       "shop-images",
		Endpoint:     "https://minio.internal:9000",
		UsePathStyle: true,
	}
	got := PublicURL(cfg, "vans/general/1-old-skool.webp")
	want := "https://minio.internal:9000/shop-images/vans/general/1-old-skool.webp"
	if got != want {
		t.Fatalf("PublicURL = %q, want path-style %q", got, want)
	}
}

func TestPublicURLAWS(t *testing.T) {
	cfg := Config{Bucket: "shop-images", Region: "eu-west-1"}
	got := PublicURL(cfg, "jordan/retro/1-bred.webp")
	want := "https://shop-images.s3.eu-west-1.amazonaws.com/jordan/retro/1-bred.webp"
	if got != want {
		t.Fatalf("PublicURL = %q, want %q", got, want)
	}
}
