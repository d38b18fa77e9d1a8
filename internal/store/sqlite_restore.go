package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tailora-app/tailora/internal/protocol"
)

// RestoreItem inserts an item with its full history (wear counters, wash
// state) under a fresh id. Used by closet file import.
func (s *Store) RestoreItem(item protocol.ClothingItem) (protocol.ClothingItem, error) {
	id := uuid.NewString()
	now := nowUTC()

	status := protocol.NormalizeItemStatus(item.Status)
	if !protocol.IsValidItemStatus(status) {
		status = protocol.ItemStatusAvailable
	}
	condition := item.Condition
	if condition == "" {
		condition = protocol.ConditionGood
	}
	careType := item.CareType
	if careType == "" {
		careType = protocol.CareMachineWash
	}
	maxWears := item.MaxWearsBeforeWash
	if maxWears <= 0 {
		maxWears = 3
	}
	dryingHours := item.DryingTimeHours
	if dryingHours <= 0 {
		dryingHours = 24
	}

	_, err := s.db.Exec(`INSERT INTO clothing_items (
		id, name, description, category_id, image_path, color, color_hex, pattern,
		material, brand, seasons_json, occasions_json, tags_json,
		purchase_date, purchase_price, purchase_location, is_secondhand,
		status, condition, times_worn, last_worn, favorite,
		wears_since_wash, last_washed, max_wears_before_wash, care_type, drying_time_hours,
		created_utc, updated_utc
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, strings.TrimSpace(item.Name), item.Description, nullableString(strings.TrimSpace(item.CategoryID)),
		nullableString(item.ImagePath), item.Color, item.ColorHex, item.Pattern,
		item.Material, item.Brand, encodeJSONList(item.Seasons), encodeJSONList(item.Occasions), encodeJSONList(item.Tags),
		nullableString(item.PurchaseDate), nullableFloat(item.PurchasePrice), item.PurchaseLocation, boolToInt(item.IsSecondhand),
		status, condition, item.TimesWorn, nullableString(item.LastWorn), boolToInt(item.Favorite),
		item.WearsSinceWash, nullableString(item.LastWashed), maxWears, careType, dryingHours,
		now, now,
	)
	if err != nil {
		return protocol.ClothingItem{}, fmt.Errorf("restore item: %w", err)
	}
	return s.GetItem(id)
}

// RestoreOutfit inserts an outfit with its wear history under a fresh id.
// Item ids must already exist in this store.
func (s *Store) RestoreOutfit(outfit protocol.Outfit, itemIDs []string) (protocol.Outfit, error) {
	id := uuid.NewString()
	now := nowUTC()

	occasion := strings.ToLower(strings.TrimSpace(outfit.Occasion))
	if occasion == "" {
		occasion = "casual"
	}
	source := outfit.Source
	if source == "" {
		source = protocol.OutfitSourceUser
	}

	tx, err := s.db.Begin()
	if err != nil {
		return protocol.Outfit{}, fmt.Errorf("begin restore outfit: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO outfits (
		id, name, description, occasion, style_tags_json, source, rating,
		times_worn, last_worn, favorite, min_temperature, max_temperature,
		created_utc, updated_utc
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, strings.TrimSpace(outfit.Name), outfit.Description, occasion,
		encodeJSONList(outfit.StyleTags), source, nullableInt(outfit.Rating),
		outfit.TimesWorn, nullableString(outfit.LastWorn), boolToInt(outfit.Favorite),
		nullableInt(outfit.MinTemperature), nullableInt(outfit.MaxTemperature),
		now, now,
	)
	if err != nil {
		return protocol.Outfit{}, fmt.Errorf("restore outfit: %w", err)
	}
	if err := replaceOutfitItems(tx, id, itemIDs); err != nil {
		return protocol.Outfit{}, err
	}
	if err := tx.Commit(); err != nil {
		return protocol.Outfit{}, fmt.Errorf("commit restore outfit: %w", err)
	}
	return s.GetOutfit(id)
}
