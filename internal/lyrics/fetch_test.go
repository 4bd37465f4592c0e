package lyrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pink  Floyd", "Pink Floyd"},
		{"  spaced   out  ", "spaced out"},
		{"tab\tand\nnewline", "tab and newline"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeString(tt.in); got != tt.want {
			t.Errorf("normalizeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripVersionInfo(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Time (2011 Remastered)", "Time"},
		{"Song [Live]", "Song"},
		{"Name (feat. X) [Remix]", "Name"},
		{"Plain Title", "Plain Title"},
		{"Broken ) paren (", "Broken ) paren ("},
	}
	for _, tt := range tests {
		if got := stripVersionInfo(tt.in); got != tt.want {
			t.Errorf("stripVersionInfo(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFetchFallsBackThroughStrategies(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		// miss while the album parameter is still present
		if r.URL.Query().Get("album_name") != "" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"trackName":"Time","artistName":"Pink Floyd","syncedLyrics":"[00:01.00]Ticking away"}`))
	}))
	defer server.Close()

	payload, err := Fetch(context.Background(), server.URL, &TrackParams{
		Title:  "Time",
		Artist: "Pink Floyd",
		Album:  "The Dark Side of the Moon",
	})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if payload.TrackName != "Time" {
		t.Errorf("TrackName = %q", payload.TrackName)
	}
	if calls.Load() < 2 {
		t.Errorf("expected a fallback request, got %d calls", calls.Load())
	}

	text, synced := payload.Lyrics()
	if !synced || text == "" {
		t.Errorf("Lyrics() = %q synced=%v, want synced text", text, synced)
	}
}

func TestFetchAllStrategiesMiss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL, &TrackParams{
		Title:  "Nonexistent",
		Artist: "Nobody",
	})
	if err == nil {
		t.Fatal("expected an error when every strategy misses")
	}
	if IsTimeoutError(err) {
		t.Errorf("a 404 chain should not look like a timeout: %v", err)
	}
}

func TestFetchRejectsBadParams(t *testing.T) {
	if _, err := Fetch(context.Background(), DefaultLrclibGetURL, nil); err == nil {
		t.Error("nil params should fail")
	}
	if _, err := Fetch(context.Background(), DefaultLrclibGetURL, &TrackParams{Title: "x"}); err == nil {
		t.Error("missing artist should fail")
	}
	if _, err := Fetch(context.Background(), "", &TrackParams{Title: "x", Artist: "y"}); err == nil {
		t.Error("empty base url should fail")
	}
}

func TestIsTimeoutError(t *testing.T) {
	if IsTimeoutError(nil) {
		t.Error("nil is not a timeout")
	}
	if !IsTimeoutError(context.DeadlineExceeded) {
		t.Error("deadline exceeded is a timeout")
	}
}
