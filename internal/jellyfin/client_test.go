package jellyfin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tgrenier/jellysub/internal/cue"
)

func TestSubtitleStreamURL(t *testing.T) {
	c := NewClient("http://server:8096/", "secret", nil)

	got := c.SubtitleStreamURL("item1", "source2", 3, cue.FormatVTT)
	want := "http://server:8096/Videos/item1/source2/Subtitles/3/Stream.vtt?api_key=secret"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if strings.Count(got, "api_key") != 1 {
		t.Errorf("api_key must appear exactly once: %q", got)
	}
}

func TestFetchSubtitleText(t *testing.T) {
	const payload = "1\n00:00:01,000 --> 00:00:02,500\nHello\n\n"

	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", nil)
	text, err := c.FetchSubtitleText(context.Background(), "item1", "source2", 3, cue.FormatSRT)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if text != payload {
		t.Errorf("body altered: got %q", text)
	}
	if gotPath != "/Videos/item1/source2/Subtitles/3/Stream.srt" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("unexpected api_key %q", gotKey)
	}
}

func TestFetchSubtitleTextServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret", nil)
	if _, err := c.FetchSubtitleText(context.Background(), "i", "m", 0, cue.FormatVTT); err == nil {
		t.Error("expected error on 500 response")
	}
}

func TestFetchSubtitleTextMissingAPIKey(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	c := NewClient(server.URL, "   ", nil)
	_, err := c.FetchSubtitleText(context.Background(), "i", "m", 0, cue.FormatVTT)
	if err != ErrMissingAPIKey {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
	if requests != 0 {
		t.Errorf("load must abort before any network call, saw %d requests", requests)
	}
}
