package store

import (
	"errors"
	"testing"
	"time"

	"github.com/tailora-app/tailora/internal/protocol"
)

func TestOutfitLifecycle(t *testing.T) {
	s := openTestStore(t)
	shirt := createTestItem(t, s, "Shirt")
	pants := createTestItem(t, s, "Pants")

	outfit, err := s.CreateOutfit(protocol.CreateOutfitRequest{
		Name:      "Office Monday",
		ItemIDs:   []string{shirt.ID, pants.ID, shirt.ID}, // duplicate must collapse
		Occasion:  "work",
		StyleTags: []string{"minimal"},
	})
	if err != nil {
		t.Fatalf("CreateOutfit: %v", err)
	}
	if len(outfit.Items) != 2 {
		t.Fatalf("expected 2 outfit items, got %+v", outfit.Items)
	}
	if outfit.Items[0].ItemID != shirt.ID || outfit.Items[0].Position != 0 {
		t.Fatalf("item order lost: %+v", outfit.Items)
	}
	if outfit.Source != protocol.OutfitSourceUser {
		t.Fatalf("outfit source = %q, want user", outfit.Source)
	}

	if _, err := s.CreateOutfit(protocol.CreateOutfitRequest{
		Name:    "Broken",
		ItemIDs: []string{"missing-item"},
	}); err == nil {
		t.Fatalf("outfit with unknown item should fail")
	}

	rating := 4
	updated, err := s.UpdateOutfit(outfit.ID, protocol.UpdateOutfitRequest{
		Rating:  &rating,
		ItemIDs: []string{pants.ID},
	})
	if err != nil {
		t.Fatalf("UpdateOutfit: %v", err)
	}
	if updated.Rating == nil || *updated.Rating != 4 {
		t.Fatalf("rating not applied: %+v", updated)
	}
	if len(updated.Items) != 1 || updated.Items[0].ItemID != pants.ID {
		t.Fatalf("item replacement failed: %+v", updated.Items)
	}

	on, err := s.ToggleOutfitFavorite(outfit.ID)
	if err != nil || !on {
		t.Fatalf("ToggleOutfitFavorite: on=%v err=%v", on, err)
	}

	if err := s.DeleteOutfit(outfit.ID); err != nil {
		t.Fatalf("DeleteOutfit: %v", err)
	}
	if _, err := s.GetOutfit(outfit.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetOutfit after delete: %v", err)
	}
}

func TestRecordOutfitWearSkipsUnavailableItems(t *testing.T) {
	s := openTestStore(t)
	shirt := createTestItem(t, s, "Shirt")
	jacket := createTestItem(t, s, "Jacket")
	if err := s.SetItemStatus(jacket.ID, protocol.ItemStatusWashing); err != nil {
		t.Fatalf("SetItemStatus: %v", err)
	}

	outfit, err := s.CreateOutfit(protocol.CreateOutfitRequest{
		Name:    "Layered",
		ItemIDs: []string{shirt.ID, jacket.ID},
	})
	if err != nil {
		t.Fatalf("CreateOutfit: %v", err)
	}

	if err := s.RecordOutfitWear(outfit.ID, time.Time{}); err != nil {
		t.Fatalf("RecordOutfitWear: %v", err)
	}

	gotOutfit, err := s.GetOutfit(outfit.ID)
	if err != nil {
		t.Fatalf("GetOutfit: %v", err)
	}
	if gotOutfit.TimesWorn != 1 || gotOutfit.LastWorn == "" {
		t.Fatalf("outfit wear not recorded: %+v", gotOutfit)
	}

	gotShirt, _ := s.GetItem(shirt.ID)
	if gotShirt.TimesWorn != 1 {
		t.Fatalf("available item should be worn with the outfit: %+v", gotShirt)
	}
	gotJacket, _ := s.GetItem(jacket.ID)
	if gotJacket.TimesWorn != 0 {
		t.Fatalf("washing item must not gain wears: %+v", gotJacket)
	}

	if err := s.RecordOutfitWear("missing", time.Time{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wearing unknown outfit: %v", err)
	}
}
