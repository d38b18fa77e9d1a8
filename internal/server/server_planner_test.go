package server

import (
	"net/http"
	"testing"

	"github.com/tailora-app/tailora/internal/protocol"
)

func TestEventEndpoints(t *testing.T) {
	ts := newTestHTTPServer(t)
	client := ts.Client()

	resp := mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/events", protocol.CreateEventRequest{
		Title: "Dinner",
		Date:  "2026-09-12",
		Time:  "19:30",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create event status=%d body=%s", resp.StatusCode, readBody(t, resp))
	}
	var created protocol.EventResponse
	decodeJSONBody(t, resp, &created)
	if created.Event.OccasionType != "casual" {
		t.Fatalf("default occasion type = %q", created.Event.OccasionType)
	}

	var completed struct {
		IsCompleted bool `json:"is_completed"`
	}
	resp = mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/events/"+created.Event.ID+"/complete", nil)
	decodeJSONBody(t, resp, &completed)
	if !completed.IsCompleted {
		t.Fatalf("event should be completed after toggle")
	}

	var listed protocol.EventListResponse
	resp = mustJSONRequest(t, client, http.MethodGet, ts.URL+"/api/v1/events?from=2026-09-01&to=2026-09-30", nil)
	decodeJSONBody(t, resp, &listed)
	if listed.Total != 1 {
		t.Fatalf("range list total = %d", listed.Total)
	}

	resp = mustJSONRequest(t, client, http.MethodGet, ts.URL+"/api/v1/events?from=not-a-date", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad from date status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)

	resp = mustJSONRequest(t, client, http.MethodDelete, ts.URL+"/api/v1/events/"+created.Event.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete event status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)
}

func TestEventValidationOverHTTP(t *testing.T) {
	ts := newTestHTTPServer(t)
	client := ts.Client()

	resp := mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/events", protocol.CreateEventRequest{
		Title: "No date",
		Date:  "12/09/2026",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad date status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)

	resp = mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/events", protocol.CreateEventRequest{
		Title:        "Gala",
		Date:         "2026-09-12",
		OccasionType: "intergalactic",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad occasion type status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)
}

func TestPlanningEndpoints(t *testing.T) {
	ts := newTestHTTPServer(t)
	client := ts.Client()

	item := createTestItemAPI(t, client, ts.URL, "Shirt")
	outfit := createTestOutfitAPI(t, client, ts.URL, "Friday", []string{item.ID})

	resp := mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/plannings", protocol.CreatePlanningRequest{
		OutfitID: outfit.ID,
		Date:     "2026-09-18",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create planning status=%d body=%s", resp.StatusCode, readBody(t, resp))
	}
	var created protocol.PlanningResponse
	decodeJSONBody(t, resp, &created)
	if created.Planning.OutfitName != "Friday" {
		t.Fatalf("planning outfit name = %q", created.Planning.OutfitName)
	}

	resp = mustJSONRequest(t, client, http.MethodPost, ts.URL+"/api/v1/plannings", protocol.CreatePlanningRequest{
		OutfitID: "missing",
		Date:     "2026-09-18",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("planning for unknown outfit status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)

	var listed protocol.PlanningListResponse
	resp = mustJSONRequest(t, client, http.MethodGet, ts.URL+"/api/v1/plannings", nil)
	decodeJSONBody(t, resp, &listed)
	if listed.Total != 1 {
		t.Fatalf("planning list total = %d", listed.Total)
	}

	resp = mustJSONRequest(t, client, http.MethodDelete, ts.URL+"/api/v1/plannings/"+created.Planning.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete planning status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)
}
