package server

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/tailora-app/tailora/internal/media"
	"github.com/tailora-app/tailora/internal/server/httpx"
)

// mediaFileHandler serves item photos out of the media library. Photos are
// immutable once uploaded, so clients may cache them for a day.
func (a *app) mediaFileHandler(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	data, err := a.media.ReadFile(rel)
	if os.IsNotExist(err) {
		httpx.WriteError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", media.ContentType(rel))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
