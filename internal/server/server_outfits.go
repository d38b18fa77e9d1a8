package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tailora-app/tailora/internal/laundry"
	"github.com/tailora-app/tailora/internal/protocol"
	"github.com/tailora-app/tailora/internal/server/httpx"
)

func (a *app) listOutfitsHandler(w http.ResponseWriter, r *http.Request) {
	outfits, err := a.db.ListOutfits()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.OutfitListResponse{Outfits: outfits, Total: len(outfits)})
}

func (a *app) createOutfitHandler(w http.ResponseWriter, r *http.Request) {
	var req protocol.CreateOutfitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.ItemIDs) == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "an outfit needs at least one item")
		return
	}
	if req.Occasion != "" && !protocol.IsValidOutfitOccasion(req.Occasion) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown occasion "+req.Occasion)
		return
	}
	if req.Rating != nil && !protocol.IsValidOutfitRating(*req.Rating) {
		httpx.WriteError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	outfit, err := a.db.CreateOutfit(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, protocol.OutfitResponse{Outfit: outfit})
}

func (a *app) getOutfitHandler(w http.ResponseWriter, r *http.Request) {
	outfit, err := a.db.GetOutfit(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.OutfitResponse{Outfit: outfit})
}

func (a *app) updateOutfitHandler(w http.ResponseWriter, r *http.Request) {
	var req protocol.UpdateOutfitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Occasion != nil && !protocol.IsValidOutfitOccasion(*req.Occasion) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown occasion "+*req.Occasion)
		return
	}
	if req.Rating != nil && !protocol.IsValidOutfitRating(*req.Rating) {
		httpx.WriteError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	outfit, err := a.db.UpdateOutfit(chi.URLParam(r, "id"), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.OutfitResponse{Outfit: outfit})
}

func (a *app) deleteOutfitHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.DeleteOutfit(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *app) toggleOutfitFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	favorite, err := a.db.ToggleOutfitFavorite(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"favorite": favorite})
}

func (a *app) recordOutfitWearHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.RecordOutfitWear(chi.URLParam(r, "id"), time.Time{}); err != nil {
		writeStoreError(w, err)
		return
	}
	outfit, err := a.db.GetOutfit(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.OutfitResponse{Outfit: outfit})
}

type outfitLaundryCheckResponse struct {
	OutfitID    string                 `json:"outfit_id"`
	Clear       bool                   `json:"clear"`
	NeedsWash   []protocol.LaundryItem `json:"needs_wash,omitempty"`
	Approaching []protocol.LaundryItem `json:"approaching_wash,omitempty"`
	Unavailable []protocol.LaundryItem `json:"unavailable,omitempty"`
}

// outfitLaundryCheckHandler reports whether an outfit can be worn right now,
// or which of its pieces are in the laundry loop or due for a wash.
func (a *app) outfitLaundryCheckHandler(w http.ResponseWriter, r *http.Request) {
	a.releaseDriedItems(time.Now().UTC())

	outfit, err := a.db.GetOutfit(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	items := make([]protocol.ClothingItem, 0, len(outfit.Items))
	for _, oi := range outfit.Items {
		item, err := a.db.GetItem(oi.ItemID)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		items = append(items, item)
	}

	check := laundry.CheckOutfit(items)
	httpx.WriteJSON(w, http.StatusOK, outfitLaundryCheckResponse{
		OutfitID:    outfit.ID,
		Clear:       check.Clear,
		NeedsWash:   check.NeedsWash,
		Approaching: check.Approaching,
		Unavailable: check.Unavailable,
	})
}
