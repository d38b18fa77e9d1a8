package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tailora-app/tailora/internal/laundry"
	"github.com/tailora-app/tailora/internal/protocol"
	"github.com/tailora-app/tailora/internal/search"
	"github.com/tailora-app/tailora/internal/server/httpx"
)

// releaseDriedItems returns drying items whose drying window has passed to
// the available rack. Runs before listings so the UI never shows an item as
// drying after it is wearable again.
func (a *app) releaseDriedItems(now time.Time) {
	items, err := a.db.ListItemsByStatus(protocol.ItemStatusDrying)
	if err != nil {
		slog.Error("list drying items", "error", err)
		return
	}
	for _, item := range items {
		if !laundry.IsDry(item, now) {
			continue
		}
		if err := a.db.SetItemStatus(item.ID, protocol.ItemStatusAvailable); err != nil {
			slog.Error("release dried item", "id", item.ID, "error", err)
		}
	}
}

func (a *app) listItemsHandler(w http.ResponseWriter, r *http.Request) {
	a.releaseDriedItems(time.Now().UTC())

	var (
		items []protocol.ClothingItem
		err   error
	)
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		if !protocol.IsValidItemStatus(protocol.NormalizeItemStatus(status)) {
			httpx.WriteError(w, http.StatusBadRequest, "unknown status "+status)
			return
		}
		items, err = a.db.ListItemsByStatus(status)
	} else {
		items, err = a.db.ListItems()
	}
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if q := r.URL.Query().Get("q"); strings.TrimSpace(q) != "" {
		items = search.Items(items, q)
	}

	httpx.WriteJSON(w, http.StatusOK, protocol.ItemListResponse{Items: items, Total: len(items)})
}

func (a *app) createItemHandler(w http.ResponseWriter, r *http.Request) {
	var req protocol.CreateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Condition != "" && !protocol.IsValidCondition(req.Condition) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown condition "+req.Condition)
		return
	}
	if req.CareType != "" && !protocol.IsValidCareType(req.CareType) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown care type "+req.CareType)
		return
	}
	for _, season := range req.Seasons {
		if !protocol.IsValidSeason(season) {
			httpx.WriteError(w, http.StatusBadRequest, "unknown season "+season)
			return
		}
	}

	count, err := a.db.CountItems()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if limit := a.cfg.Wardrobe.ItemLimit; limit > 0 && count >= limit {
		httpx.WriteError(w, http.StatusConflict, "wardrobe is full")
		return
	}

	item, err := a.db.CreateItem(req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, protocol.ItemResponse{Item: item})
}

func (a *app) getItemHandler(w http.ResponseWriter, r *http.Request) {
	item, err := a.db.GetItem(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.ItemResponse{Item: item})
}

func (a *app) updateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req protocol.UpdateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Status != nil && !protocol.IsValidItemStatus(protocol.NormalizeItemStatus(*req.Status)) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown status "+*req.Status)
		return
	}
	if req.Condition != nil && !protocol.IsValidCondition(*req.Condition) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown condition "+*req.Condition)
		return
	}
	item, err := a.db.UpdateItem(chi.URLParam(r, "id"), req)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.ItemResponse{Item: item})
}

func (a *app) deleteItemHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.removeItem(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// removeItem deletes the row and its photo in one go.
func (a *app) removeItem(id string) error {
	item, err := a.db.GetItem(id)
	if err != nil {
		return err
	}
	if err := a.db.DeleteItem(id); err != nil {
		return err
	}
	if item.ImagePath != "" {
		_ = a.media.RemoveFile(item.ImagePath)
	}
	return nil
}

func (a *app) toggleItemFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	favorite, err := a.db.ToggleItemFavorite(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]bool{"favorite": favorite})
}

func (a *app) recordItemWearHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.RecordItemWear(chi.URLParam(r, "id"), time.Time{}); err != nil {
		writeStoreError(w, err)
		return
	}
	item, err := a.db.GetItem(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.ItemResponse{Item: item})
}

func (a *app) markItemWashedHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.MarkItemWashed(chi.URLParam(r, "id"), time.Time{}); err != nil {
		writeStoreError(w, err)
		return
	}
	item, err := a.db.GetItem(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.ItemResponse{Item: item})
}

func (a *app) setItemStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	status := protocol.NormalizeItemStatus(req.Status)
	if !protocol.IsValidItemStatus(status) {
		httpx.WriteError(w, http.StatusBadRequest, "unknown status "+req.Status)
		return
	}
	if err := a.db.SetItemStatus(chi.URLParam(r, "id"), status); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (a *app) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := a.db.ListCategories()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.CategoryListResponse{Categories: categories})
}

func (a *app) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		ParentID string `json:"parent_id,omitempty"`
		Icon     string `json:"icon,omitempty"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	category, err := a.db.CreateCategory(req.Name, req.ParentID, req.Icon)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]protocol.ClothingCategory{"category": category})
}

func (a *app) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.DeleteCategory(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
