package config

import (
	"strings"
	"testing"
)

const validYAML = `
version: 1
server:
  listen_addr: ":9000"
  db_path: closet.db
  media_dir: photos
wardrobe:
  item_limit: 50
  categories:
    - name: Tops
      icon: "👕"
    - name: T-Shirts
      parent: Tops
    - name: Bottoms
`

func TestParseValidConfig(t *testing.T) {
	cfg, err := Parse([]byte(validYAML), "tailora.yaml")
	if err != nil {
		t.Fatalf("parse valid config: %v", err)
	}
	if cfg.Server.ListenAddr != ":9000" {
		t.Fatalf("listen addr: got %q", cfg.Server.ListenAddr)
	}
	if cfg.Server.DBPath != "closet.db" || cfg.Server.MediaDir != "photos" {
		t.Fatalf("paths not parsed: %+v", cfg.Server)
	}
	if cfg.Wardrobe.ItemLimit != 50 {
		t.Fatalf("item limit: got %d", cfg.Wardrobe.ItemLimit)
	}
	if len(cfg.Wardrobe.Categories) != 3 {
		t.Fatalf("categories: got %d", len(cfg.Wardrobe.Categories))
	}
	if cfg.Wardrobe.Categories[1].Parent != "Tops" {
		t.Fatalf("parent category not parsed: %+v", cfg.Wardrobe.Categories[1])
	}
	if !cfg.MDNSEnabled() {
		t.Fatal("mdns should default to enabled")
	}
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("version: 1\n"), "tailora.yaml")
	if err != nil {
		t.Fatalf("parse minimal config: %v", err)
	}
	if cfg.Server.ListenAddr != DefaultListenAddr {
		t.Fatalf("default listen addr: got %q", cfg.Server.ListenAddr)
	}
	if cfg.Server.DBPath != DefaultDBPath || cfg.Server.MediaDir != DefaultMediaDir {
		t.Fatalf("default paths: %+v", cfg.Server)
	}
	if cfg.Wardrobe.ItemLimit != DefaultWardrobeLimit {
		t.Fatalf("default item limit: got %d", cfg.Wardrobe.ItemLimit)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("version: 1\nbogus: true\n"), "tailora.yaml")
	if err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "bad version",
			yaml: "version: 2\n",
			want: "unsupported config version",
		},
		{
			name: "empty category name",
			yaml: "version: 1\nwardrobe:\n  categories:\n    - name: \"\"\n",
			want: "name is required",
		},
		{
			name: "duplicate category",
			yaml: "version: 1\nwardrobe:\n  categories:\n    - name: Tops\n    - name: tops\n",
			want: "duplicate name",
		},
		{
			name: "unknown parent",
			yaml: "version: 1\nwardrobe:\n  categories:\n    - name: Tees\n      parent: Tops\n",
			want: "unknown category",
		},
		{
			name: "self parent",
			yaml: "version: 1\nwardrobe:\n  categories:\n    - name: Tops\n      parent: Tops\n",
			want: "its own parent",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml), "tailora.yaml")
			if err == nil {
				t.Fatalf("expected error containing %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Fatalf("default config should validate: %v", errs)
	}
	if cfg.Server.ListenAddr != DefaultListenAddr {
		t.Fatalf("default listen addr: got %q", cfg.Server.ListenAddr)
	}
	if len(cfg.Wardrobe.Categories) == 0 {
		t.Fatalf("default config should seed categories")
	}
}
