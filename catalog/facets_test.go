package catalog

import "testing"

func officialsProduct(name, image string, tags ...string) Product {
	return Product{
		ID:       "p",
		Name:     name,
		Price:    3000,
		Image:    image,
		Category: Officials,
		Tags:     tags,
	}
}

func TestFacetTagWins(t *testing.T) {
	// Tag says Boots even though nothing in the name suggests it.
	p := officialsProduct("Premium Leather", "/images/officials/premium.jpg", "Boots")
	if !MatchesFacet(p, "Boots") {
		t.Fatal("boots tag should classify into Boots")
	}
	if !MatchesFacet(p, "boots") {
		t.Fatal("tag match should be case-insensitive")
	}

	// Tagged with a different facet: heuristics must not run.
	p = officialsProduct("Chelsea Boots", "/images/officials/chelsea.jpg", "Mules")
	if MatchesFacet(p, "Boots") {
		t.Fatal("a product tagged Mules must not classify as Boots, name notwithstanding")
	}
	if !MatchesFacet(p, "Mules") {
		t.Fatal("the Mules tag should classify positively")
	}
}

func TestFacetHeuristics(t *testing.T) {
	p := officialsProduct("Chelsea Boots", "/images/officials/chelsea-boot.jpg")
	if !MatchesFacet(p, "Boots") {
		t.Fatal("untagged boot should classify via name heuristics")
	}
	if MatchesFacet(p, "Mules") {
		t.Fatal("boot should not classify as Mules")
	}
}

func TestCasualsExcludesClarks(t *testing.T) {
	p := officialsProduct("Clarks Casual Suede", "/images/officials/clarks-casual.jpg")
	if MatchesFacet(p, "Casuals") {
		t.Fatal("clarks models are excluded from the Casuals facet")
	}
	if !MatchesFacet(p, "Clarks") {
		t.Fatal("clarks models should classify under Clarks")
	}
}

func TestOtherFacetComputedLast(t *testing.T) {
	unmatched := officialsProduct("Velvet Slippers", "/images/officials/velvet.jpg")
	if !MatchesFacet(unmatched, OtherFacet) {
		t.Fatal("product matching no positive facet should fall into Other")
	}

	boot := officialsProduct("Brogue Boots", "/images/officials/brogue.jpg")
	if MatchesFacet(boot, OtherFacet) {
		t.Fatal("product matching Boots must not also fall into Other")
	}

	tagged := officialsProduct("Velvet Slippers", "/images/officials/velvet.jpg", "Empire")
	if MatchesFacet(tagged, OtherFacet) {
		t.Fatal("product tagged into a facet must not fall into Other")
	}
}

func TestFilterByFacet(t *testing.T) {
	products := []Product{
		officialsProduct("Chelsea Boots", "/images/officials/a.jpg"),
		officialsProduct("Leather Mules", "/images/officials/b.jpg"),
		officialsProduct("Empire Leather Official", "/images/officials/c.jpg"),
	}
	boots := FilterByFacet(products, "Boots")
	if len(boots) != 1 || boots[0].Name != "Chelsea Boots" {
		t.Fatalf("FilterByFacet(Boots) = %+v, want only the boots", boots)
	}
	all := FilterByFacet(products, "")
	if len(all) != 3 {
		t.Fatalf("empty facet should keep all products, got %d", len(all))
	}
}

func TestFacetsPerCategory(t *testing.T) {
	facets := Facets(Officials)
	if len(facets) == 0 {
		t.Fatal("officials should expose facets")
	}
	if facets[len(facets)-1] != OtherFacet {
		t.Fatalf("Other should be the last facet, got %v", facets)
	}
	if Facets(Customized) != nil {
		t.Fatal("customized has no facet navigation")
	}
}
