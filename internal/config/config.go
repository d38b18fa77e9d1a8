package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListenAddr    = ":8310"
	DefaultDBPath        = "tailora.db"
	DefaultMediaDir      = "media"
	DefaultWardrobeLimit = 200
)

type File struct {
	Version  int      `yaml:"version" json:"version"`
	Server   Server   `yaml:"server" json:"server"`
	Wardrobe Wardrobe `yaml:"wardrobe" json:"wardrobe"`
}

type Server struct {
	ListenAddr   string `yaml:"listen_addr,omitempty" json:"listen_addr,omitempty"`
	DBPath       string `yaml:"db_path,omitempty" json:"db_path,omitempty"`
	MediaDir     string `yaml:"media_dir,omitempty" json:"media_dir,omitempty"`
	MDNSEnable   *bool  `yaml:"mdns_enable,omitempty" json:"mdns_enable,omitempty"`
	MDNSInstance string `yaml:"mdns_instance,omitempty" json:"mdns_instance,omitempty"`
}

type Wardrobe struct {
	ItemLimit  int        `yaml:"item_limit,omitempty" json:"item_limit,omitempty"`
	Categories []Category `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// Category seeds a default clothing category at startup; Parent refers to
// another seeded category by name.
type Category struct {
	Name   string `yaml:"name" json:"name"`
	Parent string `yaml:"parent,omitempty" json:"parent,omitempty"`
	Icon   string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	return Parse(data, path)
}

func Parse(data []byte, source string) (File, error) {
	var cfg File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse YAML in %q: %w", source, err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return cfg, fmt.Errorf("invalid config in %q: %s", source, strings.Join(errs, "; "))
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() File {
	cfg := File{Version: 1}
	cfg.Wardrobe.Categories = DefaultCategories()
	cfg.applyDefaults()
	return cfg
}

// DefaultCategories is the predefined category tree seeded into an empty
// wardrobe.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Tops", Icon: "👕"},
		{Name: "T-Shirts", Parent: "Tops"},
		{Name: "Shirts", Parent: "Tops"},
		{Name: "Sweaters", Parent: "Tops"},
		{Name: "Bottoms", Icon: "👖"},
		{Name: "Jeans", Parent: "Bottoms"},
		{Name: "Trousers", Parent: "Bottoms"},
		{Name: "Skirts", Parent: "Bottoms"},
		{Name: "Dresses", Icon: "👗"},
		{Name: "Outerwear", Icon: "🧥"},
		{Name: "Jackets", Parent: "Outerwear"},
		{Name: "Coats", Parent: "Outerwear"},
		{Name: "Shoes", Icon: "👟"},
		{Name: "Accessories", Icon: "🧣"},
		{Name: "Underwear", Icon: "🩲"},
		{Name: "Sportswear", Icon: "🏃"},
	}
}

func (cfg *File) applyDefaults() {
	if strings.TrimSpace(cfg.Server.ListenAddr) == "" {
		cfg.Server.ListenAddr = DefaultListenAddr
	}
	if strings.TrimSpace(cfg.Server.DBPath) == "" {
		cfg.Server.DBPath = DefaultDBPath
	}
	if strings.TrimSpace(cfg.Server.MediaDir) == "" {
		cfg.Server.MediaDir = DefaultMediaDir
	}
	if cfg.Wardrobe.ItemLimit <= 0 {
		cfg.Wardrobe.ItemLimit = DefaultWardrobeLimit
	}
}

func (cfg File) MDNSEnabled() bool {
	if cfg.Server.MDNSEnable == nil {
		return true
	}
	return *cfg.Server.MDNSEnable
}

func (cfg File) Validate() []string {
	var errs []string

	if cfg.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported config version %d", cfg.Version))
	}
	if cfg.Wardrobe.ItemLimit < 0 {
		errs = append(errs, "wardrobe.item_limit must be >= 0")
	}

	seen := map[string]struct{}{}
	for i, cat := range cfg.Wardrobe.Categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("wardrobe.categories[%d].name is required", i))
			continue
		}
		key := strings.ToLower(name)
		if _, exists := seen[key]; exists {
			errs = append(errs, fmt.Sprintf("wardrobe.categories[%d] duplicate name %q", i, name))
		}
		seen[key] = struct{}{}
	}
	for i, cat := range cfg.Wardrobe.Categories {
		parent := strings.TrimSpace(cat.Parent)
		if parent == "" {
			continue
		}
		if strings.EqualFold(parent, cat.Name) {
			errs = append(errs, fmt.Sprintf("wardrobe.categories[%d] cannot be its own parent", i))
			continue
		}
		if _, ok := seen[strings.ToLower(parent)]; !ok {
			errs = append(errs, fmt.Sprintf("wardrobe.categories[%d].parent references unknown category %q", i, parent))
		}
	}

	return errs
}
