package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate() error {
	stmts := []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA foreign_keys=ON;`,
		`CREATE TABLE IF NOT EXISTS clothing_categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			parent_id TEXT,
			icon TEXT,
			is_custom INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY(parent_id) REFERENCES clothing_categories(id) ON DELETE SET NULL
		);`,
		`CREATE TABLE IF NOT EXISTS clothing_items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			category_id TEXT,
			image_path TEXT,
			color TEXT NOT NULL DEFAULT '',
			color_hex TEXT,
			pattern TEXT,
			material TEXT,
			brand TEXT,
			seasons_json TEXT NOT NULL DEFAULT '[]',
			occasions_json TEXT NOT NULL DEFAULT '[]',
			tags_json TEXT NOT NULL DEFAULT '[]',
			purchase_date TEXT,
			purchase_price REAL,
			purchase_location TEXT,
			is_secondhand INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			condition TEXT NOT NULL,
			times_worn INTEGER NOT NULL DEFAULT 0,
			last_worn TEXT,
			favorite INTEGER NOT NULL DEFAULT 0,
			wears_since_wash INTEGER NOT NULL DEFAULT 0,
			last_washed TEXT,
			max_wears_before_wash INTEGER NOT NULL DEFAULT 3,
			care_type TEXT NOT NULL,
			drying_time_hours INTEGER NOT NULL DEFAULT 24,
			created_utc TEXT NOT NULL,
			updated_utc TEXT NOT NULL,
			FOREIGN KEY(category_id) REFERENCES clothing_categories(id) ON DELETE SET NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_items_status ON clothing_items(status);`,
		`CREATE INDEX IF NOT EXISTS idx_items_category ON clothing_items(category_id);`,
		`CREATE TABLE IF NOT EXISTS outfits (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			occasion TEXT NOT NULL,
			style_tags_json TEXT NOT NULL DEFAULT '[]',
			source TEXT NOT NULL,
			rating INTEGER,
			times_worn INTEGER NOT NULL DEFAULT 0,
			last_worn TEXT,
			favorite INTEGER NOT NULL DEFAULT 0,
			min_temperature INTEGER,
			max_temperature INTEGER,
			created_utc TEXT NOT NULL,
			updated_utc TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS outfit_items (
			outfit_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY(outfit_id, item_id),
			FOREIGN KEY(outfit_id) REFERENCES outfits(id) ON DELETE CASCADE,
			FOREIGN KEY(item_id) REFERENCES clothing_items(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			event_date TEXT NOT NULL,
			time_of_day TEXT,
			occasion_type TEXT NOT NULL,
			location TEXT,
			notes TEXT,
			outfit_id TEXT,
			is_completed INTEGER NOT NULL DEFAULT 0,
			created_utc TEXT NOT NULL,
			updated_utc TEXT NOT NULL,
			FOREIGN KEY(outfit_id) REFERENCES outfits(id) ON DELETE SET NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(event_date);`,
		`CREATE TABLE IF NOT EXISTS outfit_plannings (
			id TEXT PRIMARY KEY,
			outfit_id TEXT NOT NULL,
			plan_date TEXT NOT NULL,
			event_name TEXT,
			event_description TEXT,
			location TEXT,
			notes TEXT,
			created_utc TEXT NOT NULL,
			updated_utc TEXT NOT NULL,
			FOREIGN KEY(outfit_id) REFERENCES outfits(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_plannings_date ON outfit_plannings(plan_date);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate store: %w", err)
		}
	}
	return nil
}
