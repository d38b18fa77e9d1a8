package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tailora-app/tailora/internal/protocol"
)

func (s *Store) CreateOutfit(req protocol.CreateOutfitRequest) (protocol.Outfit, error) {
	occasion := strings.ToLower(strings.TrimSpace(req.Occasion))
	if occasion == "" {
		occasion = "casual"
	}

	tx, err := s.db.Begin()
	if err != nil {
		return protocol.Outfit{}, fmt.Errorf("begin create outfit: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.NewString()
	now := nowUTC()
	_, err = tx.Exec(`INSERT INTO outfits (
		id, name, description, occasion, style_tags_json, source, rating,
		min_temperature, max_temperature, created_utc, updated_utc
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, strings.TrimSpace(req.Name), req.Description, occasion,
		encodeJSONList(req.StyleTags), protocol.OutfitSourceUser, nullableInt(req.Rating),
		nullableInt(req.MinTemperature), nullableInt(req.MaxTemperature), now, now,
	)
	if err != nil {
		return protocol.Outfit{}, fmt.Errorf("create outfit: %w", err)
	}

	if err := replaceOutfitItems(tx, id, req.ItemIDs); err != nil {
		return protocol.Outfit{}, err
	}
	if err := tx.Commit(); err != nil {
		return protocol.Outfit{}, fmt.Errorf("commit create outfit: %w", err)
	}
	return s.GetOutfit(id)
}

// replaceOutfitItems rewrites the outfit_items rows; item order in itemIDs is
// the layer order.
func replaceOutfitItems(tx *sql.Tx, outfitID string, itemIDs []string) error {
	if _, err := tx.Exec(`DELETE FROM outfit_items WHERE outfit_id = ?`, outfitID); err != nil {
		return fmt.Errorf("clear outfit items: %w", err)
	}
	seen := map[string]struct{}{}
	position := 0
	for _, itemID := range itemIDs {
		itemID = strings.TrimSpace(itemID)
		if itemID == "" {
			continue
		}
		if _, dup := seen[itemID]; dup {
			continue
		}
		seen[itemID] = struct{}{}

		var exists int
		if err := tx.QueryRow(`SELECT COUNT(1) FROM clothing_items WHERE id = ?`, itemID).Scan(&exists); err != nil {
			return fmt.Errorf("check outfit item: %w", err)
		}
		if exists == 0 {
			return fmt.Errorf("outfit references unknown item %q: %w", itemID, ErrNotFound)
		}
		if _, err := tx.Exec(
			`INSERT INTO outfit_items (outfit_id, item_id, position) VALUES (?, ?, ?)`,
			outfitID, itemID, position,
		); err != nil {
			return fmt.Errorf("add outfit item: %w", err)
		}
		position++
	}
	return nil
}

func (s *Store) GetOutfit(id string) (protocol.Outfit, error) {
	row := s.db.QueryRow(`SELECT id, name, description, occasion, style_tags_json, source, rating,
		times_worn, last_worn, favorite, min_temperature, max_temperature, created_utc, updated_utc
		FROM outfits WHERE id = ?`, id)
	outfit, err := scanOutfit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return protocol.Outfit{}, ErrNotFound
	}
	if err != nil {
		return protocol.Outfit{}, fmt.Errorf("get outfit: %w", err)
	}

	items, err := s.listOutfitItems(id)
	if err != nil {
		return protocol.Outfit{}, err
	}
	outfit.Items = items
	return outfit, nil
}

func (s *Store) ListOutfits() ([]protocol.Outfit, error) {
	rows, err := s.db.Query(`SELECT id, name, description, occasion, style_tags_json, source, rating,
		times_worn, last_worn, favorite, min_temperature, max_temperature, created_utc, updated_utc
		FROM outfits ORDER BY created_utc DESC`)
	if err != nil {
		return nil, fmt.Errorf("list outfits: %w", err)
	}
	defer rows.Close()

	var out []protocol.Outfit
	for rows.Next() {
		outfit, err := scanOutfit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan outfit: %w", err)
		}
		out = append(out, outfit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := s.listOutfitItems(out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (s *Store) listOutfitItems(outfitID string) ([]protocol.OutfitItem, error) {
	rows, err := s.db.Query(`SELECT oi.item_id, oi.position, i.name, i.color, i.status, c.name
		FROM outfit_items oi
		JOIN clothing_items i ON i.id = oi.item_id
		LEFT JOIN clothing_categories c ON c.id = i.category_id
		WHERE oi.outfit_id = ?
		ORDER BY oi.position`, outfitID)
	if err != nil {
		return nil, fmt.Errorf("list outfit items: %w", err)
	}
	defer rows.Close()

	var out []protocol.OutfitItem
	for rows.Next() {
		var (
			entry    protocol.OutfitItem
			category sql.NullString
		)
		if err := rows.Scan(&entry.ItemID, &entry.Position, &entry.Name, &entry.Color, &entry.Status, &category); err != nil {
			return nil, fmt.Errorf("scan outfit item: %w", err)
		}
		entry.Category = stringValue(category)
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (s *Store) UpdateOutfit(id string, req protocol.UpdateOutfitRequest) (protocol.Outfit, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return protocol.Outfit{}, fmt.Errorf("begin update outfit: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sets := []string{"updated_utc = ?"}
	args := []any{nowUTC()}
	appendSet := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if req.Name != nil {
		appendSet("name", strings.TrimSpace(*req.Name))
	}
	if req.Description != nil {
		appendSet("description", *req.Description)
	}
	if req.Occasion != nil {
		appendSet("occasion", strings.ToLower(strings.TrimSpace(*req.Occasion)))
	}
	if req.StyleTags != nil {
		appendSet("style_tags_json", encodeJSONList(req.StyleTags))
	}
	if req.Rating != nil {
		appendSet("rating", *req.Rating)
	}
	if req.Favorite != nil {
		appendSet("favorite", boolToInt(*req.Favorite))
	}
	if req.MinTemperature != nil {
		appendSet("min_temperature", *req.MinTemperature)
	}
	if req.MaxTemperature != nil {
		appendSet("max_temperature", *req.MaxTemperature)
	}

	args = append(args, id)
	res, err := tx.Exec(`UPDATE outfits SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return protocol.Outfit{}, fmt.Errorf("update outfit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return protocol.Outfit{}, ErrNotFound
	}

	if req.ItemIDs != nil {
		if err := replaceOutfitItems(tx, id, req.ItemIDs); err != nil {
			return protocol.Outfit{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return protocol.Outfit{}, fmt.Errorf("commit update outfit: %w", err)
	}
	return s.GetOutfit(id)
}

func (s *Store) DeleteOutfit(id string) error {
	res, err := s.db.Exec(`DELETE FROM outfits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete outfit: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ToggleOutfitFavorite(id string) (bool, error) {
	res, err := s.db.Exec(
		`UPDATE outfits SET favorite = 1 - favorite, updated_utc = ? WHERE id = ?`,
		nowUTC(), id,
	)
	if err != nil {
		return false, fmt.Errorf("toggle outfit favorite: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, ErrNotFound
	}

	var favorite int
	if err := s.db.QueryRow(`SELECT favorite FROM outfits WHERE id = ?`, id).Scan(&favorite); err != nil {
		return false, fmt.Errorf("read outfit favorite: %w", err)
	}
	return favorite != 0, nil
}

// RecordOutfitWear bumps the outfit's wear counters and those of every
// wearable item in it.
func (s *Store) RecordOutfitWear(id string, wornDate time.Time) error {
	if wornDate.IsZero() {
		wornDate = time.Now().UTC()
	}
	day := wornDate.Format("2006-01-02")

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin record outfit wear: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`UPDATE outfits SET
		times_worn = times_worn + 1, last_worn = ?, updated_utc = ?
		WHERE id = ?`, day, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("record outfit wear: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	_, err = tx.Exec(`UPDATE clothing_items SET
		times_worn = times_worn + 1,
		wears_since_wash = wears_since_wash + 1,
		last_worn = ?,
		updated_utc = ?
		WHERE status = ? AND id IN (SELECT item_id FROM outfit_items WHERE outfit_id = ?)`,
		day, nowUTC(), protocol.ItemStatusAvailable, id)
	if err != nil {
		return fmt.Errorf("record item wears: %w", err)
	}

	return tx.Commit()
}

func scanOutfit(scanner interface{ Scan(dest ...any) error }) (protocol.Outfit, error) {
	var (
		outfit                 protocol.Outfit
		description            sql.NullString
		styleTagsJSON          string
		rating                 sql.NullInt64
		lastWorn               sql.NullString
		favorite               int
		minTemp, maxTemp       sql.NullInt64
		createdUTC, updatedUTC string
	)
	if err := scanner.Scan(
		&outfit.ID, &outfit.Name, &description, &outfit.Occasion, &styleTagsJSON, &outfit.Source, &rating,
		&outfit.TimesWorn, &lastWorn, &favorite, &minTemp, &maxTemp, &createdUTC, &updatedUTC,
	); err != nil {
		return protocol.Outfit{}, err
	}
	outfit.Description = stringValue(description)
	outfit.StyleTags = decodeJSONList(styleTagsJSON)
	outfit.Rating = intPtrValue(rating)
	outfit.LastWorn = stringValue(lastWorn)
	outfit.Favorite = favorite != 0
	outfit.MinTemperature = intPtrValue(minTemp)
	outfit.MaxTemperature = intPtrValue(maxTemp)
	outfit.CreatedUTC = parseUTC(createdUTC)
	outfit.UpdatedUTC = parseUTC(updatedUTC)
	return outfit, nil
}
