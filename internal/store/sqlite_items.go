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

func (s *Store) CreateItem(req protocol.CreateItemRequest) (protocol.ClothingItem, error) {
	id := uuid.NewString()
	now := nowUTC()

	condition := strings.TrimSpace(req.Condition)
	if condition == "" {
		condition = protocol.ConditionGood
	}
	careType := strings.TrimSpace(req.CareType)
	if careType == "" {
		careType = protocol.CareMachineWash
	}
	maxWears := req.MaxWearsBeforeWash
	if maxWears <= 0 {
		maxWears = 3
	}
	dryingHours := req.DryingTimeHours
	if dryingHours <= 0 {
		dryingHours = 24
	}

	_, err := s.db.Exec(`INSERT INTO clothing_items (
		id, name, description, category_id, image_path, color, color_hex, pattern,
		material, brand, seasons_json, occasions_json, tags_json,
		purchase_date, purchase_price, purchase_location, is_secondhand,
		status, condition, max_wears_before_wash, care_type, drying_time_hours,
		created_utc, updated_utc
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, strings.TrimSpace(req.Name), req.Description, nullableString(strings.TrimSpace(req.CategoryID)),
		nullableString(req.ImagePath), strings.TrimSpace(req.Color), req.ColorHex, req.Pattern,
		req.Material, req.Brand, encodeJSONList(req.Seasons), encodeJSONList(req.Occasions), encodeJSONList(req.Tags),
		nullableString(req.PurchaseDate), nullableFloat(req.PurchasePrice), req.PurchaseLocation, boolToInt(req.IsSecondhand),
		protocol.ItemStatusAvailable, condition, maxWears, careType, dryingHours,
		now, now,
	)
	if err != nil {
		return protocol.ClothingItem{}, fmt.Errorf("create item: %w", err)
	}
	return s.GetItem(id)
}

func (s *Store) GetItem(id string) (protocol.ClothingItem, error) {
	row := s.db.QueryRow(`SELECT `+itemColumns+`
		FROM clothing_items i
		LEFT JOIN clothing_categories c ON c.id = i.category_id
		WHERE i.id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return protocol.ClothingItem{}, ErrNotFound
	}
	if err != nil {
		return protocol.ClothingItem{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *Store) ListItems() ([]protocol.ClothingItem, error) {
	rows, err := s.db.Query(`SELECT ` + itemColumns + `
		FROM clothing_items i
		LEFT JOIN clothing_categories c ON c.id = i.category_id
		ORDER BY i.created_utc DESC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (s *Store) ListItemsByStatus(status string) ([]protocol.ClothingItem, error) {
	rows, err := s.db.Query(`SELECT `+itemColumns+`
		FROM clothing_items i
		LEFT JOIN clothing_categories c ON c.id = i.category_id
		WHERE i.status = ?
		ORDER BY i.name COLLATE NOCASE`, protocol.NormalizeItemStatus(status))
	if err != nil {
		return nil, fmt.Errorf("list items by status: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (s *Store) CountItems() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM clothing_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (s *Store) UpdateItem(id string, req protocol.UpdateItemRequest) (protocol.ClothingItem, error) {
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
	if req.CategoryID != nil {
		appendSet("category_id", nullableString(strings.TrimSpace(*req.CategoryID)))
	}
	if req.ImagePath != nil {
		appendSet("image_path", nullableString(*req.ImagePath))
	}
	if req.Color != nil {
		appendSet("color", strings.TrimSpace(*req.Color))
	}
	if req.ColorHex != nil {
		appendSet("color_hex", *req.ColorHex)
	}
	if req.Pattern != nil {
		appendSet("pattern", *req.Pattern)
	}
	if req.Material != nil {
		appendSet("material", *req.Material)
	}
	if req.Brand != nil {
		appendSet("brand", *req.Brand)
	}
	if req.Seasons != nil {
		appendSet("seasons_json", encodeJSONList(req.Seasons))
	}
	if req.Occasions != nil {
		appendSet("occasions_json", encodeJSONList(req.Occasions))
	}
	if req.Tags != nil {
		appendSet("tags_json", encodeJSONList(req.Tags))
	}
	if req.Status != nil {
		appendSet("status", protocol.NormalizeItemStatus(*req.Status))
	}
	if req.Condition != nil {
		appendSet("condition", strings.ToLower(strings.TrimSpace(*req.Condition)))
	}
	if req.CareType != nil {
		appendSet("care_type", strings.ToLower(strings.TrimSpace(*req.CareType)))
	}
	if req.Favorite != nil {
		appendSet("favorite", boolToInt(*req.Favorite))
	}
	if req.MaxWearsBeforeWash != nil {
		appendSet("max_wears_before_wash", *req.MaxWearsBeforeWash)
	}
	if req.DryingTimeHours != nil {
		appendSet("drying_time_hours", *req.DryingTimeHours)
	}

	args = append(args, id)
	res, err := s.db.Exec(`UPDATE clothing_items SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return protocol.ClothingItem{}, fmt.Errorf("update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return protocol.ClothingItem{}, ErrNotFound
	}
	return s.GetItem(id)
}

func (s *Store) DeleteItem(id string) error {
	res, err := s.db.Exec(`DELETE FROM clothing_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleItemFavorite flips the favorite flag and returns the new state.
func (s *Store) ToggleItemFavorite(id string) (bool, error) {
	res, err := s.db.Exec(
		`UPDATE clothing_items SET favorite = 1 - favorite, updated_utc = ? WHERE id = ?`,
		nowUTC(), id,
	)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, ErrNotFound
	}

	var favorite int
	if err := s.db.QueryRow(`SELECT favorite FROM clothing_items WHERE id = ?`, id).Scan(&favorite); err != nil {
		return false, fmt.Errorf("read favorite: %w", err)
	}
	return favorite != 0, nil
}

// RecordItemWear bumps the wear counters. wornDate is a calendar date
// (YYYY-MM-DD); zero time means today.
func (s *Store) RecordItemWear(id string, wornDate time.Time) error {
	if wornDate.IsZero() {
		wornDate = time.Now().UTC()
	}
	res, err := s.db.Exec(`UPDATE clothing_items SET
		times_worn = times_worn + 1,
		wears_since_wash = wears_since_wash + 1,
		last_worn = ?,
		updated_utc = ?
		WHERE id = ?`,
		wornDate.Format("2006-01-02"), nowUTC(), id,
	)
	if err != nil {
		return fmt.Errorf("record wear: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkItemWashed resets the wash counter and moves the item into the drying
// state; the laundry engine decides when it is ready again.
func (s *Store) MarkItemWashed(id string, washedAt time.Time) error {
	if washedAt.IsZero() {
		washedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(`UPDATE clothing_items SET
		wears_since_wash = 0,
		last_washed = ?,
		status = ?,
		updated_utc = ?
		WHERE id = ?`,
		washedAt.Format("2006-01-02"), protocol.ItemStatusDrying, nowUTC(), id,
	)
	if err != nil {
		return fmt.Errorf("mark washed: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetItemStatus(id, status string) error {
	normalized := protocol.NormalizeItemStatus(status)
	if !protocol.IsValidItemStatus(normalized) {
		return fmt.Errorf("invalid item status %q", status)
	}
	res, err := s.db.Exec(
		`UPDATE clothing_items SET status = ?, updated_utc = ? WHERE id = ?`,
		normalized, nowUTC(), id,
	)
	if err != nil {
		return fmt.Errorf("set item status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func collectItems(rows *sql.Rows) ([]protocol.ClothingItem, error) {
	var out []protocol.ClothingItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
