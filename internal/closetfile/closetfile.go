// Package closetfile reads and writes the portable wardrobe document: a YAML
// snapshot of categories, items, outfits and planner data that can move a
// closet between Tailora installs.
package closetfile

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/tailora-app/tailora/internal/protocol"
	"github.com/tailora-app/tailora/internal/store"
)

// SchemaVersion is the document format written by this build. Import accepts
// any document whose major version is not newer than this one.
const SchemaVersion = "v1.0.0"

type Document struct {
	Schema      string `yaml:"schema"`
	ExportedUTC string `yaml:"exported_utc,omitempty"`

	Categories []Category `yaml:"categories,omitempty"`
	Items      []Item     `yaml:"items,omitempty"`
	Outfits    []Outfit   `yaml:"outfits,omitempty"`
	Events     []Event    `yaml:"events,omitempty"`
	Plannings  []Planning `yaml:"plannings,omitempty"`
}

type Category struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
	Icon   string `yaml:"icon,omitempty"`
	Custom bool   `yaml:"custom,omitempty"`
}

type Item struct {
	Ref         string `yaml:"ref"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category,omitempty"`

	ImagePath string `yaml:"image_path,omitempty"`
	Color     string `yaml:"color,omitempty"`
	ColorHex  string `yaml:"color_hex,omitempty"`
	Pattern   string `yaml:"pattern,omitempty"`
	Material  string `yaml:"material,omitempty"`
	Brand     string `yaml:"brand,omitempty"`

	Seasons   []string `yaml:"seasons,omitempty"`
	Occasions []string `yaml:"occasions,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`

	PurchaseDate     string   `yaml:"purchase_date,omitempty"`
	PurchasePrice    *float64 `yaml:"purchase_price,omitempty"`
	PurchaseLocation string   `yaml:"purchase_location,omitempty"`
	IsSecondhand     bool     `yaml:"is_secondhand,omitempty"`

	Status    string `yaml:"status,omitempty"`
	Condition string `yaml:"condition,omitempty"`

	TimesWorn int    `yaml:"times_worn,omitempty"`
	LastWorn  string `yaml:"last_worn,omitempty"`
	Favorite  bool   `yaml:"favorite,omitempty"`

	WearsSinceWash     int    `yaml:"wears_since_wash,omitempty"`
	LastWashed         string `yaml:"last_washed,omitempty"`
	MaxWearsBeforeWash int    `yaml:"max_wears_before_wash,omitempty"`
	CareType           string `yaml:"care_type,omitempty"`
	DryingTimeHours    int    `yaml:"drying_time_hours,omitempty"`
}

type Outfit struct {
	Ref         string   `yaml:"ref"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	ItemRefs    []string `yaml:"item_refs,omitempty"`
	Occasion    string   `yaml:"occasion,omitempty"`
	StyleTags   []string `yaml:"style_tags,omitempty"`
	Rating      *int     `yaml:"rating,omitempty"`
	TimesWorn   int      `yaml:"times_worn,omitempty"`
	LastWorn    string   `yaml:"last_worn,omitempty"`
	Favorite    bool     `yaml:"favorite,omitempty"`
}

type Event struct {
	Title        string `yaml:"title"`
	Date         string `yaml:"date"`
	Time         string `yaml:"time,omitempty"`
	OccasionType string `yaml:"occasion_type,omitempty"`
	Location     string `yaml:"location,omitempty"`
	Notes        string `yaml:"notes,omitempty"`
	OutfitRef    string `yaml:"outfit_ref,omitempty"`
}

type Planning struct {
	OutfitRef        string `yaml:"outfit_ref"`
	Date             string `yaml:"date"`
	EventName        string `yaml:"event_name,omitempty"`
	EventDescription string `yaml:"event_description,omitempty"`
	Location         string `yaml:"location,omitempty"`
	Notes            string `yaml:"notes,omitempty"`
}

// Parse decodes a closet document, rejecting unknown fields so a typo in a
// hand-edited file fails loudly.
func Parse(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parse closet file: %w", err)
	}
	return doc, nil
}

// Validate returns a list of problems; an empty list means the document can
// be imported.
func (d Document) Validate() []string {
	var problems []string

	schema := normalizeSchema(d.Schema)
	switch {
	case strings.TrimSpace(d.Schema) == "":
		problems = append(problems, "schema is required (e.g. schema: "+SchemaVersion+")")
	case schema == "":
		problems = append(problems, fmt.Sprintf("schema %q is not a valid version", d.Schema))
	case semver.Compare(semver.Major(schema), semver.Major(SchemaVersion)) > 0:
		problems = append(problems, fmt.Sprintf("schema %s is newer than supported %s", d.Schema, SchemaVersion))
	}

	itemRefs := map[string]bool{}
	for i, item := range d.Items {
		if strings.TrimSpace(item.Ref) == "" {
			problems = append(problems, fmt.Sprintf("items[%d]: ref is required", i))
			continue
		}
		if itemRefs[item.Ref] {
			problems = append(problems, fmt.Sprintf("items[%d]: duplicate ref %q", i, item.Ref))
		}
		itemRefs[item.Ref] = true
		if strings.TrimSpace(item.Name) == "" {
			problems = append(problems, fmt.Sprintf("items[%d]: name is required", i))
		}
	}

	outfitRefs := map[string]bool{}
	for i, outfit := range d.Outfits {
		if strings.TrimSpace(outfit.Ref) == "" {
			problems = append(problems, fmt.Sprintf("outfits[%d]: ref is required", i))
			continue
		}
		if outfitRefs[outfit.Ref] {
			problems = append(problems, fmt.Sprintf("outfits[%d]: duplicate ref %q", i, outfit.Ref))
		}
		outfitRefs[outfit.Ref] = true
		if strings.TrimSpace(outfit.Name) == "" {
			problems = append(problems, fmt.Sprintf("outfits[%d]: name is required", i))
		}
		for _, ref := range outfit.ItemRefs {
			if !itemRefs[ref] {
				problems = append(problems, fmt.Sprintf("outfits[%d]: unknown item ref %q", i, ref))
			}
		}
	}

	for i, event := range d.Events {
		if !protocol.IsValidPlannerDate(event.Date) {
			problems = append(problems, fmt.Sprintf("events[%d]: invalid date %q", i, event.Date))
		}
		if event.OutfitRef != "" && !outfitRefs[event.OutfitRef] {
			problems = append(problems, fmt.Sprintf("events[%d]: unknown outfit ref %q", i, event.OutfitRef))
		}
	}
	for i, planning := range d.Plannings {
		if !protocol.IsValidPlannerDate(planning.Date) {
			problems = append(problems, fmt.Sprintf("plannings[%d]: invalid date %q", i, planning.Date))
		}
		if !outfitRefs[planning.OutfitRef] {
			problems = append(problems, fmt.Sprintf("plannings[%d]: unknown outfit ref %q", i, planning.OutfitRef))
		}
	}

	return problems
}

func normalizeSchema(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// Export snapshots the whole store into a document.
func Export(s *store.Store) (Document, error) {
	doc := Document{
		Schema:      SchemaVersion,
		ExportedUTC: time.Now().UTC().Format(time.RFC3339),
	}

	categories, err := s.ListCategories()
	if err != nil {
		return Document{}, err
	}
	categoryName := map[string]string{}
	for _, c := range categories {
		categoryName[c.ID] = c.Name
	}
	for _, c := range categories {
		doc.Categories = append(doc.Categories, Category{
			Name:   c.Name,
			Parent: categoryName[c.ParentID],
			Icon:   c.Icon,
			Custom: c.IsCustom,
		})
	}

	items, err := s.ListItems()
	if err != nil {
		return Document{}, err
	}
	for _, item := range items {
		doc.Items = append(doc.Items, Item{
			Ref:                item.ID,
			Name:               item.Name,
			Description:        item.Description,
			Category:           item.Category,
			ImagePath:          item.ImagePath,
			Color:              item.Color,
			ColorHex:           item.ColorHex,
			Pattern:            item.Pattern,
			Material:           item.Material,
			Brand:              item.Brand,
			Seasons:            item.Seasons,
			Occasions:          item.Occasions,
			Tags:               item.Tags,
			PurchaseDate:       item.PurchaseDate,
			PurchasePrice:      item.PurchasePrice,
			PurchaseLocation:   item.PurchaseLocation,
			IsSecondhand:       item.IsSecondhand,
			Status:             item.Status,
			Condition:          item.Condition,
			TimesWorn:          item.TimesWorn,
			LastWorn:           item.LastWorn,
			Favorite:           item.Favorite,
			WearsSinceWash:     item.WearsSinceWash,
			LastWashed:         item.LastWashed,
			MaxWearsBeforeWash: item.MaxWearsBeforeWash,
			CareType:           item.CareType,
			DryingTimeHours:    item.DryingTimeHours,
		})
	}

	outfits, err := s.ListOutfits()
	if err != nil {
		return Document{}, err
	}
	for _, outfit := range outfits {
		entry := Outfit{
			Ref:         outfit.ID,
			Name:        outfit.Name,
			Description: outfit.Description,
			Occasion:    outfit.Occasion,
			StyleTags:   outfit.StyleTags,
			Rating:      outfit.Rating,
			TimesWorn:   outfit.TimesWorn,
			LastWorn:    outfit.LastWorn,
			Favorite:    outfit.Favorite,
		}
		for _, oi := range outfit.Items {
			entry.ItemRefs = append(entry.ItemRefs, oi.ItemID)
		}
		doc.Outfits = append(doc.Outfits, entry)
	}

	events, err := s.ListEvents("", "")
	if err != nil {
		return Document{}, err
	}
	for _, event := range events {
		doc.Events = append(doc.Events, Event{
			Title:        event.Title,
			Date:         event.Date,
			Time:         event.Time,
			OccasionType: event.OccasionType,
			Location:     event.Location,
			Notes:        event.Notes,
			OutfitRef:    event.OutfitID,
		})
	}

	plannings, err := s.ListPlannings("", "")
	if err != nil {
		return Document{}, err
	}
	for _, planning := range plannings {
		doc.Plannings = append(doc.Plannings, Planning{
			OutfitRef:        planning.OutfitID,
			Date:             planning.Date,
			EventName:        planning.EventName,
			EventDescription: planning.EventDescription,
			Location:         planning.Location,
			Notes:            planning.Notes,
		})
	}

	return doc, nil
}

// Marshal renders a document as YAML.
func Marshal(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal closet file: %w", err)
	}
	return data, nil
}

// ImportSummary reports what an import created.
type ImportSummary struct {
	Categories int `json:"categories"`
	Items      int `json:"items"`
	Outfits    int `json:"outfits"`
	Events     int `json:"events"`
	Plannings  int `json:"plannings"`
}

// Import creates everything in the document, remapping refs to fresh ids.
// Existing data is left alone; imported entries are added alongside it.
func Import(s *store.Store, doc Document) (ImportSummary, error) {
	if problems := doc.Validate(); len(problems) > 0 {
		return ImportSummary{}, fmt.Errorf("invalid closet file: %s", strings.Join(problems, "; "))
	}

	var summary ImportSummary

	existing, err := s.ListCategories()
	if err != nil {
		return summary, err
	}
	categoryID := map[string]string{}
	for _, c := range existing {
		categoryID[strings.ToLower(c.Name)] = c.ID
	}
	for _, c := range doc.Categories {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if key == "" || categoryID[key] != "" {
			continue
		}
		created, err := s.CreateCategory(c.Name, categoryID[strings.ToLower(c.Parent)], c.Icon)
		if err != nil {
			return summary, fmt.Errorf("import category %q: %w", c.Name, err)
		}
		categoryID[key] = created.ID
		summary.Categories++
	}

	itemID := map[string]string{}
	for _, item := range doc.Items {
		created, err := s.RestoreItem(protocol.ClothingItem{
			Name:               item.Name,
			Description:        item.Description,
			CategoryID:         categoryID[strings.ToLower(item.Category)],
			ImagePath:          item.ImagePath,
			Color:              item.Color,
			ColorHex:           item.ColorHex,
			Pattern:            item.Pattern,
			Material:           item.Material,
			Brand:              item.Brand,
			Seasons:            item.Seasons,
			Occasions:          item.Occasions,
			Tags:               item.Tags,
			PurchaseDate:       item.PurchaseDate,
			PurchasePrice:      item.PurchasePrice,
			PurchaseLocation:   item.PurchaseLocation,
			IsSecondhand:       item.IsSecondhand,
			Status:             item.Status,
			Condition:          item.Condition,
			TimesWorn:          item.TimesWorn,
			LastWorn:           item.LastWorn,
			Favorite:           item.Favorite,
			WearsSinceWash:     item.WearsSinceWash,
			LastWashed:         item.LastWashed,
			MaxWearsBeforeWash: item.MaxWearsBeforeWash,
			CareType:           item.CareType,
			DryingTimeHours:    item.DryingTimeHours,
		})
		if err != nil {
			return summary, fmt.Errorf("import item %q: %w", item.Name, err)
		}
		itemID[item.Ref] = created.ID
		summary.Items++
	}

	outfitID := map[string]string{}
	for _, outfit := range doc.Outfits {
		itemIDs := make([]string, 0, len(outfit.ItemRefs))
		for _, ref := range outfit.ItemRefs {
			itemIDs = append(itemIDs, itemID[ref])
		}
		created, err := s.RestoreOutfit(protocol.Outfit{
			Name:        outfit.Name,
			Description: outfit.Description,
			Occasion:    outfit.Occasion,
			StyleTags:   outfit.StyleTags,
			Rating:      outfit.Rating,
			TimesWorn:   outfit.TimesWorn,
			LastWorn:    outfit.LastWorn,
			Favorite:    outfit.Favorite,
		}, itemIDs)
		if err != nil {
			return summary, fmt.Errorf("import outfit %q: %w", outfit.Name, err)
		}
		outfitID[outfit.Ref] = created.ID
		summary.Outfits++
	}

	for _, event := range doc.Events {
		if _, err := s.CreateEvent(protocol.CreateEventRequest{
			Title:        event.Title,
			Date:         event.Date,
			Time:         event.Time,
			OccasionType: event.OccasionType,
			Location:     event.Location,
			Notes:        event.Notes,
			OutfitID:     outfitID[event.OutfitRef],
		}); err != nil {
			return summary, fmt.Errorf("import event %q: %w", event.Title, err)
		}
		summary.Events++
	}

	for _, planning := range doc.Plannings {
		if _, err := s.CreatePlanning(protocol.CreatePlanningRequest{
			OutfitID:         outfitID[planning.OutfitRef],
			Date:             planning.Date,
			EventName:        planning.EventName,
			EventDescription: planning.EventDescription,
			Location:         planning.Location,
			Notes:            planning.Notes,
		}); err != nil {
			return summary, fmt.Errorf("import planning for %s: %w", planning.Date, err)
		}
		summary.Plannings++
	}

	return summary, nil
}
