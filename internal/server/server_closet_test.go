package server

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/tailora-app/tailora/internal/protocol"
)

func TestClosetExportImportRoundTrip(t *testing.T) {
	source := newTestHTTPServer(t)
	client := source.Client()

	shirt := createTestItemAPI(t, client, source.URL, "Linen shirt")
	jeans := createTestItemAPI(t, client, source.URL, "Jeans")
	createTestOutfitAPI(t, client, source.URL, "Friday", []string{shirt.ID, jeans.ID})

	resp := mustJSONRequest(t, client, http.MethodGet, source.URL+"/api/v1/closet/export", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status=%d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/yaml") {
		t.Fatalf("export content type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "tailora-closet.yaml") {
		t.Fatalf("export disposition = %q", cd)
	}
	exported := readBody(t, resp)
	requireContainsAll(t, exported, "export document", "schema:", "Linen shirt", "Friday")

	target := newTestHTTPServer(t)
	importResp, err := target.Client().Post(target.URL+"/api/v1/closet/import", "application/yaml", bytes.NewReader([]byte(exported)))
	if err != nil {
		t.Fatalf("import request: %v", err)
	}
	if importResp.StatusCode != http.StatusOK {
		t.Fatalf("import status=%d body=%s", importResp.StatusCode, readBody(t, importResp))
	}
	var summary struct {
		Imported struct {
			Items   int `json:"items"`
			Outfits int `json:"outfits"`
		} `json:"imported"`
	}
	decodeJSONBody(t, importResp, &summary)
	if summary.Imported.Items != 2 || summary.Imported.Outfits != 1 {
		t.Fatalf("import summary: %+v", summary)
	}

	var items protocol.ItemListResponse
	resp = mustJSONRequest(t, target.Client(), http.MethodGet, target.URL+"/api/v1/items", nil)
	decodeJSONBody(t, resp, &items)
	if items.Total != 2 {
		t.Fatalf("imported wardrobe has %d items", items.Total)
	}
}

func TestClosetImportRejectsBadDocuments(t *testing.T) {
	ts := newTestHTTPServer(t)

	resp, err := ts.Client().Post(ts.URL+"/api/v1/closet/import", "application/yaml", strings.NewReader("schema: v9.0.0\n"))
	if err != nil {
		t.Fatalf("import request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("future schema status=%d body=%s", resp.StatusCode, readBody(t, resp))
	}
	_ = readBody(t, resp)

	resp, err = ts.Client().Post(ts.URL+"/api/v1/closet/import", "application/yaml", strings.NewReader("not: [valid"))
	if err != nil {
		t.Fatalf("import request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed yaml status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)
}
