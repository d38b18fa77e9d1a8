package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tailora-app/tailora/internal/protocol"
	"github.com/tailora-app/tailora/internal/server/httpx"
)

// dateRangeParams pulls the optional ?from= / ?to= bounds off a planner list
// request. Either bound may be empty; a malformed one is reported back.
func dateRangeParams(w http.ResponseWriter, r *http.Request) (from, to string, ok bool) {
	from = strings.TrimSpace(r.URL.Query().Get("from"))
	to = strings.TrimSpace(r.URL.Query().Get("to"))
	if from != "" && !protocol.IsValidPlannerDate(from) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid from date "+from)
		return "", "", false
	}
	if to != "" && !protocol.IsValidPlannerDate(to) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid to date "+to)
		return "", "", false
	}
	return from, to, true
}

func (a *app) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRangeParams(w, r)
	if !ok {
		return
	}
	events, err := a.db.ListEvents(from, to)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.EventListResponse{Events: events, Total: len(events)})
}

func (a *app) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var req protocol.CreateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}
	if !protocol.IsValidPlannerDate(req.Date) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid event date "+req.Date)
		return
	}
	if req.OccasionType != "" && !protocol.IsValidEventOccasionType(req.OccasionType) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown occasion type "+req.OccasionType)
		return
	}

	event, err := a.db.CreateEvent(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, protocol.EventResponse{Event: event})
}

func (a *app) getEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := a.db.GetEvent(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.EventResponse{Event: event})
}

func (a *app) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	var req protocol.UpdateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Date != nil && !protocol.IsValidPlannerDate(*req.Date) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid event date "+*req.Date)
		return
	}
	if req.OccasionType != nil && !protocol.IsValidEventOccasionType(*req.OccasionType) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown occasion type "+*req.OccasionType)
		return
	}
	event, err := a.db.UpdateEvent(chi.URLParam(r, "id"), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.EventResponse{Event: event})
}

func (a *app) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.DeleteEvent(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *app) toggleEventCompleteHandler(w http.ResponseWriter, r *http.Request) {
	completed, err := a.db.ToggleEventComplete(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"is_completed": completed})
}

func (a *app) listPlanningsHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := dateRangeParams(w, r)
	if !ok {
		return
	}
	plannings, err := a.db.ListPlannings(from, to)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.PlanningListResponse{Plannings: plannings, Total: len(plannings)})
}

func (a *app) createPlanningHandler(w http.ResponseWriter, r *http.Request) {
	var req protocol.CreatePlanningRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.OutfitID) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "outfit_id is required")
		return
	}
	if !protocol.IsValidPlannerDate(req.Date) {
		httpx.WriteError(w, http.StatusBadRequest, "invalid planning date "+req.Date)
		return
	}

	planning, err := a.db.CreatePlanning(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, protocol.PlanningResponse{Planning: planning})
}

func (a *app) deletePlanningHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.DeletePlanning(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
