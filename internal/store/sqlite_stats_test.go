package store

import (
	"testing"
	"time"

	"github.com/tailora-app/tailora/internal/config"
	"github.com/tailora-app/tailora/internal/protocol"
)

func TestWardrobeStats(t *testing.T) {
	s := openTestStore(t)
	if err := s.SeedCategories([]config.Category{{Name: "Tops"}}); err != nil {
		t.Fatalf("SeedCategories: %v", err)
	}
	cats, err := s.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	topsID := cats[0].ID

	shirt, err := s.CreateItem(protocol.CreateItemRequest{
		Name:       "Shirt",
		Color:      "Blue",
		CategoryID: topsID,
		Seasons:    []string{"summer"},
	})
	if err != nil {
		t.Fatalf("CreateItem shirt: %v", err)
	}
	if _, err := s.CreateItem(protocol.CreateItemRequest{
		Name:    "Sweater",
		Color:   "blue",
		Seasons: []string{"winter", "autumn"},
	}); err != nil {
		t.Fatalf("CreateItem sweater: %v", err)
	}

	if _, err := s.ToggleItemFavorite(shirt.ID); err != nil {
		t.Fatalf("ToggleItemFavorite: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := s.RecordItemWear(shirt.ID, time.Time{}); err != nil {
			t.Fatalf("RecordItemWear: %v", err)
		}
	}

	if _, err := s.CreateOutfit(protocol.CreateOutfitRequest{
		Name:    "Everyday",
		ItemIDs: []string{shirt.ID},
	}); err != nil {
		t.Fatalf("CreateOutfit: %v", err)
	}

	future := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	past := "2020-01-01"
	if _, err := s.CreateEvent(protocol.CreateEventRequest{Title: "Upcoming", Date: future}); err != nil {
		t.Fatalf("CreateEvent future: %v", err)
	}
	if _, err := s.CreateEvent(protocol.CreateEventRequest{Title: "Old", Date: past}); err != nil {
		t.Fatalf("CreateEvent past: %v", err)
	}

	stats, err := s.WardrobeStats(200)
	if err != nil {
		t.Fatalf("WardrobeStats: %v", err)
	}
	if stats.TotalItems != 2 || stats.TotalOutfits != 1 || stats.FavoriteItems != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.PlannedEvents != 1 {
		t.Fatalf("PlannedEvents = %d, want 1 (past events excluded)", stats.PlannedEvents)
	}
	if stats.ByCategory["Tops"] != 1 || stats.ByCategory["uncategorized"] != 1 {
		t.Fatalf("category counts: %+v", stats.ByCategory)
	}
	// Colors fold case so "Blue" and "blue" count together.
	if stats.ByColor["blue"] != 2 {
		t.Fatalf("color counts: %+v", stats.ByColor)
	}
	if stats.BySeason["summer"] != 1 || stats.BySeason["winter"] != 1 || stats.BySeason["autumn"] != 1 {
		t.Fatalf("season counts: %+v", stats.BySeason)
	}
	if stats.ByStatus[protocol.ItemStatusAvailable] != 2 {
		t.Fatalf("status counts: %+v", stats.ByStatus)
	}
	if len(stats.MostWorn) != 1 || stats.MostWorn[0].ID != shirt.ID || stats.MostWorn[0].TimesWorn != 2 {
		t.Fatalf("most worn: %+v", stats.MostWorn)
	}
	if len(stats.RecentAdditions) != 2 {
		t.Fatalf("recent additions: %+v", stats.RecentAdditions)
	}
	if stats.WardrobeLimit != 200 || stats.RemainingSlots != 198 {
		t.Fatalf("limit math: limit=%d remaining=%d", stats.WardrobeLimit, stats.RemainingSlots)
	}
}

func TestWardrobeStatsRemainingSlotsFloor(t *testing.T) {
	s := openTestStore(t)
	createTestItem(t, s, "One")
	createTestItem(t, s, "Two")

	stats, err := s.WardrobeStats(1)
	if err != nil {
		t.Fatalf("WardrobeStats: %v", err)
	}
	if stats.RemainingSlots != 0 {
		t.Fatalf("remaining slots should floor at zero, got %d", stats.RemainingSlots)
	}
}
