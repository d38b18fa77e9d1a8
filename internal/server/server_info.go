package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/tailora-app/tailora/internal/server/httpx"
	"github.com/tailora-app/tailora/internal/version"
)

type serverInfoResponse struct {
	Name       string `json:"name"`
	APIVersion int    `json:"api_version"`
	Version    string `json:"version"`
	Hostname   string `json:"hostname,omitempty"`
}

func serverInfoHandler(w http.ResponseWriter, r *http.Request) {
	host, _ := os.Hostname()
	httpx.WriteJSON(w, http.StatusOK, serverInfoResponse{
		Name:       "tailora",
		APIVersion: 1,
		Version:    version.Current(),
		Hostname:   strings.TrimSpace(host),
	})
}
