package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/tailora-app/tailora/internal/closetfile"
	"github.com/tailora-app/tailora/internal/server/httpx"
)

// maxClosetImportBytes caps the accepted upload; a full closet document is a
// few hundred kilobytes at most.
const maxClosetImportBytes = 16 << 20

func (a *app) closetExportHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := closetfile.Export(a.db)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	data, err := closetfile.Marshal(doc)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Content-Disposition", `attachment; filename="tailora-closet.yaml"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (a *app) closetImportHandler(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxClosetImportBytes))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	doc, err := closetfile.Parse(data)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, fmt.Sprintf("invalid closet file: %v", err))
		return
	}
	if problems := doc.Validate(); len(problems) > 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, map[string]any{
			"error":    "closet file failed validation",
			"problems": problems,
		})
		return
	}

	summary, err := closetfile.Import(a.db, doc)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"imported": summary})
}
