package server

import (
	"net/http"
	"testing"

	"github.com/tailora-app/tailora/internal/protocol"
)

func createTestOutfitAPI(t *testing.T, client *http.Client, baseURL, name string, itemIDs []string) protocol.Outfit {
	t.Helper()
	resp := mustJSONRequest(t, client, http.MethodPost, baseURL+"/api/v1/outfits", protocol.CreateOutfitRequest{
		Name:    name,
		ItemIDs: itemIDs,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create outfit status=%d body=%s", resp.StatusCode, readBody(t, resp))
	}
	var payload protocol.OutfitResponse
	decodeJSONBody(t, resp, &payload)
	return payload.Outfit
}

func TestOutfitCRUDOverHTTP(t *testing.T) {
	ts := newTestHTTPServer(t)
	client := ts.Client()

	shirt := createTestItemAPI(t, client, ts.URL, "Shirt")
	jeans := createTestItemAPI(t, client, ts.URL, "Jeans")

	outfit := createTestOutfitAPI(t, client, ts.URL, "Friday", []string{shirt.ID, jeans.ID})
	if len(outfit.Items) != 2 {
		t.Fatalf("outfit has %d items", len(outfit.Items))
	}

	var listed protocol.OutfitListResponse
	resp := mustJSONRequest(t, client, http.MethodGet, ts.URL+"/api/v1/outfits", nil)
	decodeJSONBody(t, resp, &listed)
	if listed.Total != 1 {
		t.Fatalf("listed %d outfits", listed.Total)
	}

	rating := 4
	resp = mustJSONRequest(t, client, http.MethodPatch, ts.URL+"/api/v1/outfits/"+outfit.ID, protocol.UpdateOutfitRequest{Rating: &rating})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update outfit status=%d body=%s", resp.StatusCode, readBody(t, resp))
	}
	var updated protocol.OutfitResponse
	decodeJSONBody(t, resp, &updated)
	if updated.Outfit.Rating == nil || *updated.Outfit.Rating != 4 {
		t.Fatalf("rating after update: %+v", updated.Outfit.Rating)
	}

	resp = mustJSONRequest(t, client, http.MethodDelete, ts.URL+"/api/v1/outfits/"+outfit.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete outfit status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)

	resp = mustJSONRequest(t, client, http.MethodGet, ts.URL+"/api/v1/outfits/"+outfit.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get deleted outfit status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)
}

func TestOutfitValidationOverHTTP(t *testing.T) {
	ts := newTestHTTPServer(t)
	client := ts.Client()

	item := createTestItemAPI(t, client, ts.URL, "Shirt")

	resp := mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/outfits", protocol.CreateOutfitRequest{Name: "No items"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty outfit status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)

	bad := 9
	resp = mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/outfits", protocol.CreateOutfitRequest{
		Name:    "Overrated",
		ItemIDs: []string{item.ID},
		Rating:  &bad,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad rating status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)

	resp = mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/outfits", protocol.CreateOutfitRequest{
		Name:     "Gala",
		ItemIDs:  []string{item.ID},
		Occasion: "apocalypse",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad occasion status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)
}

func TestOutfitLaundryCheckOverHTTP(t *testing.T) {
	ts := newTestHTTPServer(t)
	client := ts.Client()

	shirt := createTestItemAPI(t, client, ts.URL, "Shirt")
	jeans := createTestItemAPI(t, client, ts.URL, "Jeans")
	outfit := createTestOutfitAPI(t, client, ts.URL, "Weekend", []string{shirt.ID, jeans.ID})

	var check outfitLaundryCheckResponse
	resp := mustJSONRequest(t, client, http.MethodGet, ts.URL+"/api/v1/outfits/"+outfit.ID+"/laundry-check", nil)
	decodeJSONBody(t, resp, &check)
	if !check.Clear {
		t.Fatalf("fresh outfit should be clear: %+v", check)
	}

	resp = mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/items/"+shirt.ID+"/wash", nil)
	_ = readBody(t, resp)

	resp = mustJSONRequest(t, client, http.MethodGet, ts.URL+"/api/v1/outfits/"+outfit.ID+"/laundry-check", nil)
	decodeJSONBody(t, resp, &check)
	if check.Clear {
		t.Fatalf("outfit with a washing item should not be clear")
	}
	if len(check.Unavailable) != 1 || check.Unavailable[0].ID != shirt.ID {
		t.Fatalf("unavailable items: %+v", check.Unavailable)
	}
}

func TestOutfitWearSkipsWashingItemOverHTTP(t *testing.T) {
	ts := newTestHTTPServer(t)
	client := ts.Client()

	shirt := createTestItemAPI(t, client, ts.URL, "Shirt")
	jeans := createTestItemAPI(t, client, ts.URL, "Jeans")
	outfit := createTestOutfitAPI(t, client, ts.URL, "Weekend", []string{shirt.ID, jeans.ID})

	resp := mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/items/"+shirt.ID+"/wash", nil)
	_ = readBody(t, resp)

	var worn protocol.OutfitResponse
	resp = mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/outfits/"+outfit.ID+"/wear", nil)
	decodeJSONBody(t, resp, &worn)
	if worn.Outfit.TimesWorn != 1 {
		t.Fatalf("outfit times worn = %d", worn.Outfit.TimesWorn)
	}

	var shirtAfter protocol.ItemResponse
	resp = mustJSONRequest(t, client, http.MethodGet, ts.URL+"/api/v1/items/"+shirt.ID, nil)
	decodeJSONBody(t, resp, &shirtAfter)
	if shirtAfter.Item.TimesWorn != 0 {
		t.Fatalf("washing shirt gained a wear: %+v", shirtAfter.Item)
	}

	var jeansAfter protocol.ItemResponse
	resp = mustJSONRequest(t, client, http.MethodGet, ts.URL+"/api/v1/items/"+jeans.ID, nil)
	decodeJSONBody(t, resp, &jeansAfter)
	if jeansAfter.Item.TimesWorn != 1 {
		t.Fatalf("available jeans should gain a wear: %+v", jeansAfter.Item)
	}
}
