package closetfile

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tailora-app/tailora/internal/config"
	"github.com/tailora-app/tailora/internal/protocol"
	"github.com/tailora-app/tailora/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "closet-test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("schema: v1.0.0\nbogus: true\n"))
	if err == nil {
		t.Fatalf("unknown field should be rejected")
	}
}

func TestValidateSchemaGate(t *testing.T) {
	cases := []struct {
		schema string
		ok     bool
	}{
		{"v1.0.0", true},
		{"1.0.0", true}, // missing v prefix is tolerated
		{"v0.9.0", true},
		{"v2.0.0", false},
		{"", false},
		{"banana", false},
	}
	for _, tc := range cases {
		doc := Document{Schema: tc.schema}
		problems := doc.Validate()
		if tc.ok && len(problems) != 0 {
			t.Fatalf("schema %q: unexpected problems %v", tc.schema, problems)
		}
		if !tc.ok && len(problems) == 0 {
			t.Fatalf("schema %q should be rejected", tc.schema)
		}
	}
}

func TestValidateRefIntegrity(t *testing.T) {
	doc := Document{
		Schema: SchemaVersion,
		Items:  []Item{{Ref: "i1", Name: "Shirt"}, {Ref: "i1", Name: "Dup"}},
		Outfits: []Outfit{
			{Ref: "o1", Name: "Look", ItemRefs: []string{"i1", "missing"}},
		},
		Events:    []Event{{Title: "E", Date: "not-a-date"}},
		Plannings: []Planning{{OutfitRef: "nope", Date: "2026-09-01"}},
	}
	problems := doc.Validate()
	for _, want := range []string{"duplicate ref", "unknown item ref", "invalid date", "unknown outfit ref"} {
		found := false
		for _, p := range problems {
			if strings.Contains(p, want) {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected a %q problem in %v", want, problems)
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)
	if err := src.SeedCategories([]config.Category{{Name: "Tops"}}); err != nil {
		t.Fatalf("SeedCategories: %v", err)
	}
	cats, _ := src.ListCategories()

	shirt, err := src.CreateItem(protocol.CreateItemRequest{
		Name:       "Linen Shirt",
		Color:      "white",
		CategoryID: cats[0].ID,
		Seasons:    []string{"summer"},
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := src.RecordItemWear(shirt.ID, time.Time{}); err != nil {
			t.Fatalf("RecordItemWear: %v", err)
		}
	}
	outfit, err := src.CreateOutfit(protocol.CreateOutfitRequest{
		Name:    "Summer look",
		ItemIDs: []string{shirt.ID},
	})
	if err != nil {
		t.Fatalf("CreateOutfit: %v", err)
	}
	if _, err := src.CreateEvent(protocol.CreateEventRequest{
		Title:    "Picnic",
		Date:     "2026-09-05",
		OutfitID: outfit.ID,
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := src.CreatePlanning(protocol.CreatePlanningRequest{
		OutfitID: outfit.ID,
		Date:     "2026-09-06",
	}); err != nil {
		t.Fatalf("CreatePlanning: %v", err)
	}

	doc, err := Export(src)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if doc.Schema != SchemaVersion {
		t.Fatalf("exported schema = %q", doc.Schema)
	}

	// Through YAML and back, into a fresh store.
	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	dst := openTestStore(t)
	summary, err := Import(dst, parsed)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if summary.Items != 1 || summary.Outfits != 1 || summary.Events != 1 || summary.Plannings != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Categories != 1 {
		t.Fatalf("category should be created in empty store: %+v", summary)
	}

	items, err := dst.ListItems()
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 imported item, got %d", len(items))
	}
	got := items[0]
	if got.Name != "Linen Shirt" || got.Category != "Tops" {
		t.Fatalf("imported item: %+v", got)
	}
	if got.TimesWorn != 4 || got.WearsSinceWash != 4 {
		t.Fatalf("wear history lost: %+v", got)
	}
	if got.ID == shirt.ID {
		t.Fatalf("import must assign fresh ids")
	}

	outfits, err := dst.ListOutfits()
	if err != nil {
		t.Fatalf("ListOutfits: %v", err)
	}
	if len(outfits) != 1 || len(outfits[0].Items) != 1 || outfits[0].Items[0].ItemID != got.ID {
		t.Fatalf("outfit item refs not remapped: %+v", outfits)
	}

	events, err := dst.ListEvents("", "")
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 || events[0].OutfitID != outfits[0].ID {
		t.Fatalf("event outfit ref not remapped: %+v", events)
	}
}

func TestImportRejectsInvalidDocument(t *testing.T) {
	dst := openTestStore(t)
	_, err := Import(dst, Document{Schema: "v9.0.0"})
	if err == nil {
		t.Fatalf("future schema must be rejected")
	}
}
