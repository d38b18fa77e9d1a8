package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestHTTPServerWithUI(t *testing.T) *httptest.Server {
	t.Helper()
	a := newTestApp(t)
	ts := httptest.NewServer(a.buildRouter())
	t.Cleanup(ts.Close)
	return ts
}

func requireContainsAll(t *testing.T, content, subject string, needles ...string) {
	t.Helper()
	for _, needle := range needles {
		if strings.Contains(content, needle) {
			continue
		}
		t.Fatalf("%s missing %q", subject, needle)
	}
}

func requireNotContainsAll(t *testing.T, content, subject string, needles ...string) {
	t.Helper()
	for _, needle := range needles {
		if !strings.Contains(content, needle) {
			continue
		}
		t.Fatalf("%s should not contain %q", subject, needle)
	}
}

func fetchUIContent(t *testing.T, ts *httptest.Server, path, wantContentType string) string {
	t.Helper()
	resp, err := ts.Client().Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s status=%d", path, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, wantContentType) {
		t.Fatalf("GET %s content type = %q, want prefix %q", path, ct, wantContentType)
	}
	return readBody(t, resp)
}

func TestUIPagesServed(t *testing.T) {
	ts := newTestHTTPServerWithUI(t)

	rootHTML := fetchUIContent(t, ts, "/", "text/html")
	requireContainsAll(t, rootHTML, "root page",
		"<h1>tailora</h1>",
		`<script src="/ui/shared.js"></script>`,
		`<script src="/ui/confirm.js"></script>`,
		`<script src="/ui/animations.js"></script>`,
		`href="/wardrobe"`,
		`href="/outfits"`,
		`href="/planner"`,
		`href="/laundry"`,
		"data-count",
		"replaceSkeleton",
	)

	wardrobe := fetchUIContent(t, ts, "/wardrobe", "text/html")
	requireContainsAll(t, wardrobe, "wardrobe page",
		"confirm-delete",
		"data-form-id",
		"data-item-name",
		"tilt-card",
		"data-stagger",
		"like-button",
		"/api/v1/items",
		"seasonEmojis(item)",
		"formatPrice(item.purchase_price)",
		"isAvailableItemStatus(item.status)",
		"showSnackbar",
	)

	outfits := fetchUIContent(t, ts, "/outfits", "text/html")
	requireContainsAll(t, outfits, "outfits page",
		"confirm-delete",
		"laundry-check",
		"/api/v1/outfits",
	)

	planner := fetchUIContent(t, ts, "/planner", "text/html")
	requireContainsAll(t, planner, "planner page",
		"/api/v1/events",
		"/api/v1/plannings",
		"confirm-delete",
	)

	laundry := fetchUIContent(t, ts, "/laundry", "text/html")
	requireContainsAll(t, laundry, "laundry page",
		"/api/v1/laundry",
		"needs_wash",
		"showSnackbar",
	)

	resp, err := ts.Client().Get(ts.URL + "/no-such-page")
	if err != nil {
		t.Fatalf("GET unknown page: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown page status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)
}

func TestUIConfirmScriptContract(t *testing.T) {
	ts := newTestHTTPServerWithUI(t)

	content := fetchUIContent(t, ts, "/ui/confirm.js", "application/javascript")

	requireContainsAll(t, content, "confirm script",
		// Document-level delegation resolving the trigger and its form.
		"document.addEventListener('click'",
		".closest('.confirm-delete')",
		"ev.preventDefault()",
		"data-form-id",
		"trigger.closest('form')",
		"data-item-name",
		"'this item'",
		// Lazy singleton modal.
		"getElementById('__tailoraConfirmOverlay')",
		"document.body.appendChild(overlay)",
		// All four listeners detach on close.
		"overlay.removeEventListener('click', onOverlayClick)",
		"document.removeEventListener('keydown', onKeyDown)",
		"cancelBtn.removeEventListener('click', onCancel)",
		"okBtn.removeEventListener('click', onConfirm)",
		// Escape only acts while the modal is showing.
		"ev.key !== 'Escape'",
		"overlay.style.display !== 'flex'",
		// A re-trigger while open tears the old invocation down first.
		"if (pendingConfirm) closeConfirm()",
		"target.submit()",
	)
	requireNotContainsAll(t, content, "confirm script",
		"window.confirm",
		"alert(",
	)
}

func TestUIAnimationsScriptContract(t *testing.T) {
	ts := newTestHTTPServerWithUI(t)

	content := fetchUIContent(t, ts, "/ui/animations.js", "application/javascript")

	requireContainsAll(t, content, "animations script",
		// Scroll reveal: one-shot observation with early-fire margin.
		"threshold: 0.1",
		"'0px 0px -50px 0px'",
		"observer.unobserve(el)",
		"dataset.delay",
		// Counters: exponential ease-out driven by animation frames,
		// landing exactly on the target.
		"data-count",
		"1500",
		"Math.pow(2, -10 * progress)",
		"Math.floor(target * eased)",
		"toLocaleString()",
		"requestAnimationFrame(step)",
		"el.textContent = target.toLocaleString()",
		// Invalid counter targets fall back without animating.
		"el.textContent = '0'",
		// Ripple sized to the larger button dimension, self-removing.
		"Math.max(rect.width, rect.height)",
		"ev.clientX - rect.left - size / 2",
		"animationend",
		// Stagger: 50ms per child, once at init.
		"(i * 50) + 'ms'",
		// Tilt: fixed divisor and slight scale-up, reset on leave.
		"/ 20",
		"scale(1.02)",
		"pointerleave",
		// Like burst: exactly 8 particles on the like transition only.
		"i < 8",
		"(i / 8) * Math.PI * 2",
		"50 + Math.random() * 30",
		"if (liked) spawnLikeBurst(heart)",
		// Toasts: severity styling, exit animation cleans up.
		"toast-error",
		"toast-success",
		"toast-exit",
		// Skeleton swap: fade, replace after 200ms, fade back.
		"}, 200)",
		"if (!el) return",
	)
}

func TestUISharedScriptContract(t *testing.T) {
	ts := newTestHTTPServerWithUI(t)

	content := fetchUIContent(t, ts, "/ui/shared.js", "application/javascript")

	requireContainsAll(t, content, "shared script",
		"function escapeHtml",
		"function apiJSON",
		"cache: 'no-store'",
		"function wearBadge",
		"function showSnackbar",
		"function formatCalendarDate",
		"fall: '🍂'",
		"all_seasons: '🔄'",
	)
}
