package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMediaFileServing(t *testing.T) {
	a := newTestApp(t)
	if err := a.media.SaveFile("items/shirt.png", []byte("not-really-a-png")); err != nil {
		t.Fatalf("save media file: %v", err)
	}
	ts := httptest.NewServer(a.buildRouter())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/media/items/shirt.png")
	if err != nil {
		t.Fatalf("GET media: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("media status=%d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("media content type = %q", ct)
	}
	if body := readBody(t, resp); body != "not-really-a-png" {
		t.Fatalf("media body = %q", body)
	}

	resp, err = ts.Client().Get(ts.URL + "/media/items/missing.png")
	if err != nil {
		t.Fatalf("GET missing media: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing media status=%d", resp.StatusCode)
	}
	_ = readBody(t, resp)
}

func TestMDNSHelpers(t *testing.T) {
	if got := listenPortFromAddr(":8310"); got != "8310" {
		t.Fatalf("port from :8310 = %q", got)
	}
	if got := listenPortFromAddr("0.0.0.0:9000"); got != "9000" {
		t.Fatalf("port from host:port = %q", got)
	}
	if got := listenPortFromAddr(""); got != "8310" {
		t.Fatalf("port from empty addr = %q", got)
	}
}
