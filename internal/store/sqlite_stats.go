package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/tailora-app/tailora/internal/protocol"
)

// WardrobeStats aggregates the dashboard numbers in one pass over the store.
// The wardrobe limit comes from config so the caller passes it in.
func (s *Store) WardrobeStats(wardrobeLimit int) (protocol.WardrobeStats, error) {
	stats := protocol.WardrobeStats{
		ByCategory:    map[string]int{},
		ByColor:       map[string]int{},
		BySeason:      map[string]int{},
		ByStatus:      map[string]int{},
		WardrobeLimit: wardrobeLimit,
	}

	if err := s.db.QueryRow(`SELECT COUNT(1) FROM clothing_items`).Scan(&stats.TotalItems); err != nil {
		return protocol.WardrobeStats{}, fmt.Errorf("count items: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM outfits`).Scan(&stats.TotalOutfits); err != nil {
		return protocol.WardrobeStats{}, fmt.Errorf("count outfits: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM clothing_items WHERE favorite = 1`).Scan(&stats.FavoriteItems); err != nil {
		return protocol.WardrobeStats{}, fmt.Errorf("count favorites: %w", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	if err := s.db.QueryRow(
		`SELECT COUNT(1) FROM events WHERE event_date >= ? AND is_completed = 0`, today,
	).Scan(&stats.PlannedEvents); err != nil {
		return protocol.WardrobeStats{}, fmt.Errorf("count planned events: %w", err)
	}

	if err := s.fillCategoryCounts(stats.ByCategory); err != nil {
		return protocol.WardrobeStats{}, err
	}
	if err := s.fillColorCounts(stats.ByColor); err != nil {
		return protocol.WardrobeStats{}, err
	}
	if err := s.fillSeasonAndStatusCounts(stats.BySeason, stats.ByStatus); err != nil {
		return protocol.WardrobeStats{}, err
	}

	mostWorn, err := s.mostWornItems(5)
	if err != nil {
		return protocol.WardrobeStats{}, err
	}
	stats.MostWorn = mostWorn

	recent, err := s.recentItems(5)
	if err != nil {
		return protocol.WardrobeStats{}, err
	}
	stats.RecentAdditions = recent

	stats.RemainingSlots = wardrobeLimit - stats.TotalItems
	if stats.RemainingSlots < 0 {
		stats.RemainingSlots = 0
	}
	return stats, nil
}

func (s *Store) fillCategoryCounts(counts map[string]int) error {
	rows, err := s.db.Query(`SELECT COALESCE(c.name, 'uncategorized'), COUNT(1)
		FROM clothing_items i
		LEFT JOIN clothing_categories c ON c.id = i.category_id
		GROUP BY 1`)
	if err != nil {
		return fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return fmt.Errorf("scan category count: %w", err)
		}
		counts[name] = n
	}
	return rows.Err()
}

func (s *Store) fillColorCounts(counts map[string]int) error {
	rows, err := s.db.Query(`SELECT color, COUNT(1) FROM clothing_items
		WHERE color != '' GROUP BY color`)
	if err != nil {
		return fmt.Errorf("count by color: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var color string
		var n int
		if err := rows.Scan(&color, &n); err != nil {
			return fmt.Errorf("scan color count: %w", err)
		}
		counts[strings.ToLower(color)] += n
	}
	return rows.Err()
}

// Seasons live in a JSON list column, so decode per row instead of GROUP BY.
func (s *Store) fillSeasonAndStatusCounts(bySeason, byStatus map[string]int) error {
	rows, err := s.db.Query(`SELECT seasons_json, status FROM clothing_items`)
	if err != nil {
		return fmt.Errorf("count by season: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var seasonsJSON, status string
		if err := rows.Scan(&seasonsJSON, &status); err != nil {
			return fmt.Errorf("scan season row: %w", err)
		}
		for _, season := range decodeJSONList(seasonsJSON) {
			bySeason[season]++
		}
		byStatus[status]++
	}
	return rows.Err()
}

func (s *Store) mostWornItems(limit int) ([]protocol.WornItemStat, error) {
	rows, err := s.db.Query(`SELECT id, name, times_worn FROM clothing_items
		WHERE times_worn > 0 ORDER BY times_worn DESC, name LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("most worn items: %w", err)
	}
	defer rows.Close()

	var out []protocol.WornItemStat
	for rows.Next() {
		var stat protocol.WornItemStat
		if err := rows.Scan(&stat.ID, &stat.Name, &stat.TimesWorn); err != nil {
			return nil, fmt.Errorf("scan worn stat: %w", err)
		}
		out = append(out, stat)
	}
	return out, rows.Err()
}

func (s *Store) recentItems(limit int) ([]protocol.ClothingItem, error) {
	rows, err := s.db.Query(`SELECT `+itemColumns+`
		FROM clothing_items i
		LEFT JOIN clothing_categories c ON c.id = i.category_id
		ORDER BY i.created_utc DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent items: %w", err)
	}
	defer rows.Close()
	return collectItems(rows)
}
