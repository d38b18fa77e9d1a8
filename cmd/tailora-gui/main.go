package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/tailora-app/tailora/internal/version"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

type connectionPhase string

const (
	phaseDisconnected connectionPhase = "disconnected"
	phaseConnecting   connectionPhase = "connecting"
	phaseConnected    connectionPhase = "connected"
	phaseReconnecting connectionPhase = "reconnecting"
)

type pollUpdate struct {
	phase      connectionPhase
	statusText string
	errText    string
	snap       *snapshot
}

type snapshot struct {
	serverName string
	serverVer  string
	hostname   string

	totalItems     int
	totalOutfits   int
	favoriteItems  int
	plannedEvents  int
	remainingSlots int
	needsWash      int

	fetchedUTC string
}

type guiApp struct {
	theme *material.Theme
	ops   op.Ops

	addrEditor widget.Editor
	connectBtn widget.Clickable
	disconnBtn widget.Clickable

	window *app.Window

	pollMu     sync.Mutex
	pollCancel context.CancelFunc
	polling    bool

	updates chan pollUpdate

	phase      connectionPhase
	statusText string
	lastError  string
	snap       snapshot
}

func main() {
	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("tailora-gui"),
			app.Size(unit.Dp(760), unit.Dp(560)),
		)
		if err := run(w); err != nil {
			log.Printf("tailora-gui: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

func run(w *app.Window) error {
	model := &guiApp{
		theme:      material.NewTheme(),
		updates:    make(chan pollUpdate, 256),
		window:     w,
		phase:      phaseDisconnected,
		statusText: "Disconnected",
	}
	model.addrEditor.SingleLine = true
	model.addrEditor.Submit = true
	model.addrEditor.SetText(defaultServerAddr())
	model.startPolling()

	for {
		e := w.Event()
		switch e := e.(type) {
		case app.DestroyEvent:
			model.stopPolling("Disconnected")
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&model.ops, e)
			model.processUpdates()
			model.processActions(gtx)
			model.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func defaultServerAddr() string {
	if v := strings.TrimSpace(os.Getenv("TAILORA_GUI_SERVER_ADDR")); v != "" {
		return normalizeServerAddr(v)
	}
	return "127.0.0.1:8310"
}

func normalizeServerAddr(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err == nil && strings.TrimSpace(u.Host) != "" {
			return strings.TrimSpace(u.Host)
		}
	}
	return raw
}

func (m *guiApp) processActions(gtx C) {
	for m.connectBtn.Clicked(gtx) {
		m.startPolling()
	}
	for m.disconnBtn.Clicked(gtx) {
		m.stopPolling("Disconnected")
	}
}

func (m *guiApp) startPolling() {
	addr := normalizeServerAddr(m.addrEditor.Text())
	if addr == "" {
		m.phase = phaseDisconnected
		m.statusText = "Enter a server address"
		m.lastError = "empty address"
		return
	}
	m.addrEditor.SetText(addr)

	m.pollMu.Lock()
	if m.polling {
		m.pollMu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.pollCancel = cancel
	m.polling = true
	m.pollMu.Unlock()

	m.phase = phaseConnecting
	m.statusText = "Connecting"
	m.lastError = ""
	if m.window != nil {
		m.window.Invalidate()
	}

	go m.pollLoop(ctx, addr)
}

func (m *guiApp) stopPolling(reason string) {
	m.pollMu.Lock()
	cancel := m.pollCancel
	m.pollCancel = nil
	m.polling = false
	m.pollMu.Unlock()
	if cancel != nil {
		cancel()
	}
	if strings.TrimSpace(reason) != "" {
		m.phase = phaseDisconnected
		m.statusText = reason
	}
	if m.window != nil {
		m.window.Invalidate()
	}
}

func (m *guiApp) pollLoop(ctx context.Context, addr string) {
	defer func() {
		m.enqueueUpdate(pollUpdate{phase: phaseDisconnected, statusText: "Disconnected"})
		m.pollMu.Lock()
		m.pollCancel = nil
		m.polling = false
		m.pollMu.Unlock()
	}()

	client := &http.Client{Timeout: 6 * time.Second}
	backoff := time.Second
	connected := false

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		snap, err := fetchSnapshot(ctx, client, addr)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			phase := phaseConnecting
			if connected {
				phase = phaseReconnecting
			}
			connected = false
			m.enqueueUpdate(pollUpdate{phase: phase, statusText: "Connection failed", errText: err.Error()})
			if !sleepWithContext(ctx, backoff) {
				return
			}
			if backoff < 10*time.Second {
				backoff *= 2
			}
			continue
		}

		if !connected {
			m.enqueueUpdate(pollUpdate{phase: phaseConnected, statusText: fmt.Sprintf("Connected to %s", addr)})
			connected = true
		}
		backoff = time.Second
		m.enqueueUpdate(pollUpdate{snap: snap})

		if !sleepWithContext(ctx, 2*time.Second) {
			return
		}
	}
}

func fetchSnapshot(ctx context.Context, client *http.Client, addr string) (*snapshot, error) {
	var info struct {
		Name     string `json:"name"`
		Version  string `json:"version"`
		Hostname string `json:"hostname"`
	}
	if err := getJSON(ctx, client, "http://"+addr+"/api/v1/server-info", &info); err != nil {
		return nil, err
	}

	var statsBody struct {
		Stats struct {
			TotalItems     int `json:"total_items"`
			TotalOutfits   int `json:"total_outfits"`
			FavoriteItems  int `json:"favorite_items"`
			PlannedEvents  int `json:"planned_events"`
			RemainingSlots int `json:"remaining_slots"`
		} `json:"stats"`
	}
	if err := getJSON(ctx, client, "http://"+addr+"/api/v1/stats", &statsBody); err != nil {
		return nil, err
	}

	var laundryBody struct {
		Overview struct {
			NeedsWash []json.RawMessage `json:"needs_wash"`
		} `json:"overview"`
	}
	if err := getJSON(ctx, client, "http://"+addr+"/api/v1/laundry", &laundryBody); err != nil {
		return nil, err
	}

	return &snapshot{
		serverName:     info.Name,
		serverVer:      info.Version,
		hostname:       info.Hostname,
		totalItems:     statsBody.Stats.TotalItems,
		totalOutfits:   statsBody.Stats.TotalOutfits,
		favoriteItems:  statsBody.Stats.FavoriteItems,
		plannedEvents:  statsBody.Stats.PlannedEvents,
		remainingSlots: statsBody.Stats.RemainingSlots,
		needsWash:      len(laundryBody.Overview.NeedsWash),
		fetchedUTC:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func getJSON(ctx context.Context, client *http.Client, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", version.UserAgent())
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", target, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (m *guiApp) enqueueUpdate(u pollUpdate) {
	select {
	case m.updates <- u:
	default:
		select {
		case <-m.updates:
		default:
		}
		select {
		case m.updates <- u:
		default:
		}
	}
	if m.window != nil {
		m.window.Invalidate()
	}
}

func (m *guiApp) processUpdates() {
	for {
		select {
		case u := <-m.updates:
			if u.phase != "" {
				m.phase = u.phase
			}
			if strings.TrimSpace(u.statusText) != "" {
				m.statusText = u.statusText
			}
			if strings.TrimSpace(u.errText) != "" {
				m.lastError = u.errText
			}
			if u.snap != nil {
				m.snap = *u.snap
			}
		default:
			return
		}
	}
}

func (m *guiApp) layout(gtx C) D {
	in := layout.UniformInset(unit.Dp(16))
	return in.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				label := material.H5(m.theme, "tailora-gui")
				return label.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				lbl := material.Body1(m.theme, "Live wardrobe stats from a tailora server")
				return lbl.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(14)}.Layout),
			layout.Rigid(m.layoutConnectionRow),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(m.layoutStatusPanel),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(m.layoutSnapshotPanel),
		)
	})
}

func (m *guiApp) layoutConnectionRow(gtx C) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			ed := material.Editor(m.theme, &m.addrEditor, "127.0.0.1:8310")
			return ed.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			btn := material.Button(m.theme, &m.connectBtn, "Connect")
			return btn.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			btn := material.Button(m.theme, &m.disconnBtn, "Disconnect")
			return btn.Layout(gtx)
		}),
	)
}

func (m *guiApp) layoutStatusPanel(gtx C) D {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			l := material.Body1(m.theme, "Status: "+string(m.phase)+" - "+m.statusText)
			return l.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx C) D {
			err := strings.TrimSpace(m.lastError)
			if err == "" {
				err = "none"
			}
			l := material.Body2(m.theme, "Last error: "+err)
			return l.Layout(gtx)
		}),
	)
}

func (m *guiApp) layoutSnapshotPanel(gtx C) D {
	s := m.snap
	server := strings.TrimSpace(s.serverName)
	if server == "" {
		server = "(unknown)"
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			l := material.H6(m.theme, "Latest Snapshot")
			return l.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
		layout.Rigid(func(gtx C) D {
			l := material.Body2(m.theme, fmt.Sprintf("server=%s version=%s host=%s", server, s.serverVer, s.hostname))
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			l := material.Body2(m.theme, fmt.Sprintf("items=%d outfits=%d favorites=%d", s.totalItems, s.totalOutfits, s.favoriteItems))
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			l := material.Body2(m.theme, fmt.Sprintf("planned events=%d free slots=%d needs wash=%d", s.plannedEvents, s.remainingSlots, s.needsWash))
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			l := material.Body2(m.theme, "fetched: "+s.fetchedUTC)
			return l.Layout(gtx)
		}),
	)
}
