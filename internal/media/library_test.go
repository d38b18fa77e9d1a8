package media

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := NewLibrary(filepath.Join(t.TempDir(), "media"), 8)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return lib
}

func TestScanAndOrphans(t *testing.T) {
	lib := newTestLibrary(t)

	files := []string{"items/shirt.jpg", "items/pants.webp", "outfits/gala.png"}
	for _, rel := range files {
		if err := lib.SaveFile(rel, []byte("img")); err != nil {
			t.Fatalf("SaveFile %s: %v", rel, err)
		}
	}
	// Non-image files are ignored by the scan.
	if err := os.WriteFile(filepath.Join(lib.Root(), "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write notes.txt: %v", err)
	}

	photos, err := lib.Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(photos) != 3 {
		t.Fatalf("expected 3 photos, got %v", photos)
	}
	if photos[0] != "items/pants.webp" {
		t.Fatalf("scan not sorted: %v", photos)
	}

	orphans, err := lib.Orphans([]string{"items/shirt.jpg", "outfits/gala.png"})
	if err != nil {
		t.Fatalf("Orphans: %v", err)
	}
	if len(orphans) != 1 || orphans[0] != "items/pants.webp" {
		t.Fatalf("unexpected orphans: %v", orphans)
	}
}

func TestReadFileUsesCache(t *testing.T) {
	lib := newTestLibrary(t)
	if err := lib.SaveFile("a.jpg", []byte("original")); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	first, err := lib.ReadFile("a.jpg")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(first) != "original" {
		t.Fatalf("unexpected content: %q", first)
	}

	// Mutate the file behind the library's back; the cached copy should be
	// served until the path is invalidated.
	full, err := lib.SafePath("a.jpg")
	if err != nil {
		t.Fatalf("SafePath: %v", err)
	}
	if err := os.WriteFile(full, []byte("changed"), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	second, err := lib.ReadFile("a.jpg")
	if err != nil {
		t.Fatalf("ReadFile cached: %v", err)
	}
	if string(second) != "original" {
		t.Fatalf("expected cached content, got %q", second)
	}

	if err := lib.SaveFile("a.jpg", []byte("fresh")); err != nil {
		t.Fatalf("SaveFile again: %v", err)
	}
	third, err := lib.ReadFile("a.jpg")
	if err != nil {
		t.Fatalf("ReadFile after save: %v", err)
	}
	if string(third) != "fresh" {
		t.Fatalf("save should invalidate cache, got %q", third)
	}
}

func TestSafePathRejectsTraversal(t *testing.T) {
	lib := newTestLibrary(t)
	for _, bad := range []string{"../secret.jpg", "a/../../b.png"} {
		if _, err := lib.SafePath(bad); err == nil {
			t.Fatalf("SafePath(%q) should fail", bad)
		}
	}
	if _, err := lib.SafePath("/items/ok.jpg"); err != nil {
		t.Fatalf("leading slash should be tolerated: %v", err)
	}
}

func TestRemoveFileIdempotent(t *testing.T) {
	lib := newTestLibrary(t)
	if err := lib.SaveFile("x.jpg", []byte("img")); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if err := lib.RemoveFile("x.jpg"); err != nil {
		t.Fatalf("RemoveFile: %v", err)
	}
	if err := lib.RemoveFile("x.jpg"); err != nil {
		t.Fatalf("second RemoveFile should be a no-op: %v", err)
	}
}

func TestContentType(t *testing.T) {
	cases := map[string]string{
		"a.jpg":  "image/jpeg",
		"b.JPEG": "image/jpeg",
		"c.png":  "image/png",
		"d.webp": "image/webp",
		"e.gif":  "application/octet-stream",
	}
	for name, want := range cases {
		if got := ContentType(name); got != want {
			t.Fatalf("ContentType(%s) = %s, want %s", name, got, want)
		}
	}
}
