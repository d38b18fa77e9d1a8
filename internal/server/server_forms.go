package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Form handlers back the plain <form> posts on the UI pages. Failures keep the
// redirect flow going; the page shows fresh state either way.

func (a *app) deleteItemFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.removeItem(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	redirectBack(w, r, "/wardrobe")
}

func (a *app) toggleItemFavoriteFormHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := a.db.ToggleItemFavorite(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	redirectBack(w, r, "/wardrobe")
}

func (a *app) recordItemWearFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.RecordItemWear(chi.URLParam(r, "id"), time.Time{}); err != nil {
		writeStoreError(w, err)
		return
	}
	redirectBack(w, r, "/wardrobe")
}

func (a *app) markItemWashedFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.MarkItemWashed(chi.URLParam(r, "id"), time.Time{}); err != nil {
		writeStoreError(w, err)
		return
	}
	redirectBack(w, r, "/laundry")
}

func (a *app) deleteOutfitFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.DeleteOutfit(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	redirectBack(w, r, "/outfits")
}

func (a *app) deleteEventFormHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.db.DeleteEvent(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	redirectBack(w, r, "/planner")
}
