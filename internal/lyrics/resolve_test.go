package lyrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	// keep the global cache away from the real user cache dir
	dir, err := os.MkdirTemp("", "lyrics-test-cache")
	if err != nil {
		os.Exit(1)
	}
	os.Setenv("XDG_CACHE_HOME", dir)

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func writeSongFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("fake audio"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveOffline(t *testing.T) {
	path := writeSongFile(t, "Nobody - Nothing.mp3")

	res := Resolve(context.Background(), path, 100, ResolveOptions{Offline: true, NoCache: true})
	if res.Text != SentinelOfflineMode {
		t.Errorf("Text = %q, want the offline sentinel", res.Text)
	}
	if res.Source != SourceSentinel {
		t.Errorf("Source = %q, want sentinel", res.Source)
	}
	if res.Info.Artist != "Nobody" || res.Info.Title != "Nothing" {
		t.Errorf("Info = %q / %q", res.Info.Artist, res.Info.Title)
	}
}

func TestResolveNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	path := writeSongFile(t, "Nobody - Unknown Song.mp3")
	res := Resolve(context.Background(), path, 100, ResolveOptions{
		LrclibURL: server.URL,
		NoCache:   true,
	})
	if res.Text != SentinelNotFound {
		t.Errorf("Text = %q, want the not-found sentinel", res.Text)
	}
}

func TestResolveFetchesAndCaches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"trackName":"Hit","artistName":"Band","syncedLyrics":"[00:01.00]la la"}`))
	}))
	defer server.Close()

	path := writeSongFile(t, "Band - Hit.mp3")
	res := Resolve(context.Background(), path, 100, ResolveOptions{LrclibURL: server.URL})
	if res.Source != SourceLrclib {
		t.Fatalf("Source = %q, want lrclib", res.Source)
	}
	if !res.Synced {
		t.Error("synced lyrics should be flagged synced")
	}

	// second resolution hits the cache, not the server
	server.Close()
	res = Resolve(context.Background(), path, 100, ResolveOptions{LrclibURL: server.URL})
	if res.Source != SourceCache {
		t.Errorf("Source = %q, want cache", res.Source)
	}
	if res.Text != "[00:01.00]la la" {
		t.Errorf("Text = %q", res.Text)
	}
}
