package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tailora-app/tailora/internal/config"
	"github.com/tailora-app/tailora/internal/protocol"
)

// SeedCategories inserts the configured default categories, skipping names
// that already exist. Parents are resolved by name within the same pass.
func (s *Store) SeedCategories(categories []config.Category) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed categories: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	idByName := map[string]string{}
	rows, err := tx.Query(`SELECT id, name FROM clothing_categories`)
	if err != nil {
		return fmt.Errorf("list existing categories: %w", err)
	}
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan existing category: %w", err)
		}
		idByName[strings.ToLower(name)] = id
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return fmt.Errorf("iterate existing categories: %w", err)
	}
	_ = rows.Close()

	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			continue
		}
		if _, exists := idByName[strings.ToLower(name)]; exists {
			continue
		}
		id := uuid.NewString()
		if _, err := tx.Exec(
			`INSERT INTO clothing_categories (id, name, icon, is_custom) VALUES (?, ?, ?, 0)`,
			id, name, strings.TrimSpace(cat.Icon),
		); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		idByName[strings.ToLower(name)] = id
	}

	for _, cat := range categories {
		parent := strings.TrimSpace(cat.Parent)
		if parent == "" {
			continue
		}
		parentID, ok := idByName[strings.ToLower(parent)]
		if !ok {
			continue
		}
		childID, ok := idByName[strings.ToLower(strings.TrimSpace(cat.Name))]
		if !ok {
			continue
		}
		if _, err := tx.Exec(
			`UPDATE clothing_categories SET parent_id = ? WHERE id = ? AND parent_id IS NULL`,
			parentID, childID,
		); err != nil {
			return fmt.Errorf("link category %q: %w", cat.Name, err)
		}
	}

	return tx.Commit()
}

func (s *Store) ListCategories() ([]protocol.ClothingCategory, error) {
	rows, err := s.db.Query(
		`SELECT id, name, parent_id, icon, is_custom FROM clothing_categories ORDER BY name COLLATE NOCASE`,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []protocol.ClothingCategory
	for rows.Next() {
		var (
			cat      protocol.ClothingCategory
			parentID sql.NullString
			icon     sql.NullString
			custom   int
		)
		if err := rows.Scan(&cat.ID, &cat.Name, &parentID, &icon, &custom); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cat.ParentID = stringValue(parentID)
		cat.Icon = stringValue(icon)
		cat.IsCustom = custom != 0
		out = append(out, cat)
	}
	return out, rows.Err()
}

func (s *Store) CreateCategory(name, parentID, icon string) (protocol.ClothingCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return protocol.ClothingCategory{}, fmt.Errorf("category name is required")
	}

	cat := protocol.ClothingCategory{
		ID:       uuid.NewString(),
		Name:     name,
		ParentID: strings.TrimSpace(parentID),
		Icon:     strings.TrimSpace(icon),
		IsCustom: true,
	}
	_, err := s.db.Exec(
		`INSERT INTO clothing_categories (id, name, parent_id, icon, is_custom) VALUES (?, ?, ?, ?, 1)`,
		cat.ID, cat.Name, nullableString(cat.ParentID), cat.Icon,
	)
	if err != nil {
		return protocol.ClothingCategory{}, fmt.Errorf("create category %q: %w", name, err)
	}
	return cat, nil
}

// DeleteCategory removes a custom category. Predefined (seeded) categories and
// categories still referenced by items are refused.
func (s *Store) DeleteCategory(id string) error {
	var custom int
	err := s.db.QueryRow(`SELECT is_custom FROM clothing_categories WHERE id = ?`, id).Scan(&custom)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load category: %w", err)
	}
	if custom == 0 {
		return fmt.Errorf("predefined categories cannot be deleted")
	}

	var inUse int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM clothing_items WHERE category_id = ?`, id).Scan(&inUse); err != nil {
		return fmt.Errorf("count category items: %w", err)
	}
	if inUse > 0 {
		return fmt.Errorf("category still has %d item(s)", inUse)
	}

	_, err = s.db.Exec(`DELETE FROM clothing_categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
