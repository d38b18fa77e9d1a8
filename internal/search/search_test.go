package search

import (
	"testing"

	"github.com/tailora-app/tailora/internal/protocol"
)

func TestItemsEmptyQueryReturnsAll(t *testing.T) {
	items := []protocol.ClothingItem{{Name: "A"}, {Name: "B"}}
	got := Items(items, "  ")
	if len(got) != 2 {
		t.Fatalf("empty query should return all items, got %d", len(got))
	}
}

func TestItemsMatchesAcrossFields(t *testing.T) {
	items := []protocol.ClothingItem{
		{ID: "1", Name: "Linen Shirt", Brand: "Arket", Color: "white"},
		{ID: "2", Name: "Raincoat", Brand: "Stutterheim", Color: "navy"},
		{ID: "3", Name: "Sneakers", Tags: []string{"running", "navy"}},
	}

	byBrand := Items(items, "stutterheim")
	if len(byBrand) != 1 || byBrand[0].ID != "2" {
		t.Fatalf("brand search: %+v", byBrand)
	}

	byTag := Items(items, "running")
	if len(byTag) != 1 || byTag[0].ID != "3" {
		t.Fatalf("tag search: %+v", byTag)
	}

	byColor := Items(items, "navy")
	if len(byColor) != 2 {
		t.Fatalf("color search: %+v", byColor)
	}
}

func TestItemsToleratesTypos(t *testing.T) {
	items := []protocol.ClothingItem{
		{ID: "1", Name: "Linen Shirt"},
		{ID: "2", Name: "Wool Socks"},
	}
	got := Items(items, "linen shrt")
	if len(got) == 0 || got[0].ID != "1" {
		t.Fatalf("fuzzy match failed: %+v", got)
	}
}

func TestItemsNoMatch(t *testing.T) {
	items := []protocol.ClothingItem{{ID: "1", Name: "Linen Shirt"}}
	if got := Items(items, "zzzzzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}
