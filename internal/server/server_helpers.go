package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tailora-app/tailora/internal/server/httpx"
	"github.com/tailora-app/tailora/internal/store"
)

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeBody reads a JSON request body into v; returns false after replying
// 400 on malformed input.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// writeStoreError maps store failures onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "not found")
		return
	}
	httpx.WriteError(w, http.StatusInternalServerError, err.Error())
}

// redirectBack sends the browser to the form's return page. Only relative
// paths are honored so a crafted return_to cannot bounce users off-site.
func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := strings.TrimSpace(r.FormValue("return_to"))
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		target = fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
