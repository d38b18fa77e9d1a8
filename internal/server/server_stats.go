package server

import (
	"net/http"
	"time"

	"github.com/tailora-app/tailora/internal/laundry"
	"github.com/tailora-app/tailora/internal/protocol"
	"github.com/tailora-app/tailora/internal/server/httpx"
)

func (a *app) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := a.db.WardrobeStats(a.cfg.Wardrobe.ItemLimit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, protocol.StatsResponse{Stats: stats})
}

func (a *app) laundryOverviewHandler(w http.ResponseWriter, r *http.Request) {
	a.releaseDriedItems(time.Now().UTC())

	items, err := a.db.ListItems()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	overview := laundry.BuildOverview(items)
	httpx.WriteJSON(w, http.StatusOK, protocol.LaundryOverviewResponse{Overview: overview})
}
