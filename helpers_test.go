package solestore

import (
	"reflect"
	"testing"
)

func TestBuildURL(t *testing.T) {
	cases := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", []string{"catalog", "jordan"}, "https://example.com/catalog/jordan/"},
		{"https://example.com/", []string{"catalog"}, "https://example.com/catalog/"},
		{"https://example.com", nil, "https://example.com"},
	}
	for _, c := range cases {
		if got := BuildURL(c.base, c.segments...); got != c.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", c.base, c.segments, got, c.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{"boots", "", "  ", "sale"})
	if !reflect.DeepEqual(got, []string{"boots", "sale"}) {
		t.Fatalf("FilterEmpty = %v, want [boots sale]", got)
	}
}

func TestJoinTags(t *testing.T) {
	if got := JoinTags([]string{"boots", "sale"}); got != "boots, sale" {
		t.Fatalf("JoinTags = %q, want %q", got, "boots, sale")
	}
}
