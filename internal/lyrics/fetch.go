package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	DefaultLrclibGetURL = "https://lrclib.net/api/get"
	httpTimeout         = 10 * time.Second
)

var (
	httpClient     *http.Client
	httpClientOnce sync.Once
)

// LrclibResponse is the lrclib.net /api/get payload.
type LrclibResponse struct {
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	AlbumName    string  `json:"albumName"`
	Duration     float64 `json:"duration"`
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  string  `json:"plainLyrics"`
	SyncedLyrics string  `json:"syncedLyrics"`
}

// Lyrics returns the best text from the response, preferring synced.
func (r *LrclibResponse) Lyrics() (text string, synced bool) {
	if r.SyncedLyrics != "" {
		return r.SyncedLyrics, true
	}
	return r.PlainLyrics, false
}

// TrackParams identifies the song to search for.
type TrackParams struct {
	Title        string
	Artist       string
	Album        string
	DurationSecs int64
}

func getHTTPClient() *http.Client {
	httpClientOnce.Do(func() {
		transport := &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   2 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     60 * time.Second,
			TLSHandshakeTimeout: 2 * time.Second,
		}
		httpClient = &http.Client{
			Transport: transport,
			Timeout:   httpTimeout,
		}
	})
	return httpClient
}

// normalizeString collapses repeated whitespace for better matching
func normalizeString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripVersionInfo removes text in parentheses and brackets (remixes, versions, etc)
func stripVersionInfo(s string) string {
	for strings.Contains(s, "(") && strings.Contains(s, ")") {
		start := strings.Index(s, "(")
		end := strings.Index(s, ")")
		if end > start {
			s = s[:start] + " " + s[end+1:]
		} else {
			break
		}
	}

	for strings.Contains(s, "[") && strings.Contains(s, "]") {
		start := strings.Index(s, "[")
		end := strings.Index(s, "]")
		if end > start {
			s = s[:start] + " " + s[end+1:]
		} else {
			break
		}
	}

	return normalizeString(s)
}

// Fetch queries lrclib for the song, trying progressively looser search
// parameters before giving up.
func Fetch(parentCtx context.Context, baseURL string, params *TrackParams) (*LrclibResponse, error) {
	if params == nil {
		return nil, errors.New("nil track params")
	}
	if params.Title == "" || params.Artist == "" {
		return nil, errors.New("track title or artist is empty")
	}
	if baseURL == "" {
		return nil, errors.New("lrclib base url is empty")
	}

	normalizedArtist := normalizeString(params.Artist)
	normalizedTitle := normalizeString(params.Title)
	strippedArtist := stripVersionInfo(params.Artist)
	strippedTitle := stripVersionInfo(params.Title)

	if normalizedTitle == "" || normalizedArtist == "" {
		return nil, errors.New("track title or artist is empty after normalization")
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid lrclib url %q: %w", baseURL, err)
	}

	searchStrategies := []struct {
		artist   string
		title    string
		album    string
		duration int64
	}{
		// exact match first, then drop album and duration, then drop
		// version suffixes like "(Remastered)"
		{normalizedArtist, normalizedTitle, params.Album, params.DurationSecs},
		{normalizedArtist, normalizedTitle, "", params.DurationSecs},
		{normalizedArtist, normalizedTitle, "", 0},
		{strippedArtist, strippedTitle, "", 0},
	}

	seen := make(map[string]bool)
	var lastErr error

	for strategyIdx, strategy := range searchStrategies {
		if strategy.artist == "" || strategy.title == "" {
			continue
		}

		key := fmt.Sprintf("%s|%s|%s|%d", strategy.artist, strategy.title, strategy.album, strategy.duration)
		if seen[key] {
			continue
		}
		seen[key] = true

		query := parsedURL.Query()
		query.Set("artist_name", strategy.artist)
		query.Set("track_name", strategy.title)
		if strategy.album != "" {
			query.Set("album_name", strategy.album)
		} else {
			query.Del("album_name")
		}
		if strategy.duration > 0 {
			query.Set("duration", fmt.Sprintf("%d", strategy.duration))
		} else {
			query.Del("duration")
		}
		parsedURL.RawQuery = query.Encode()

		// small delay between strategies to avoid hammering the server
		if strategyIdx > 0 {
			select {
			case <-parentCtx.Done():
				return nil, parentCtx.Err()
			case <-time.After(100 * time.Millisecond):
			}
		}

		payload, err := doFetchRequest(parentCtx, parsedURL.String())
		if err == nil {
			if payload.PlainLyrics == "" && payload.SyncedLyrics == "" && !payload.Instrumental {
				lastErr = errors.New("no lyrics in response")
				continue
			}
			return payload, nil
		}

		lastErr = err

		// a 404 just means this search variation missed, only actual
		// network timeouts abort the chain
		if IsTimeoutError(err) {
			return nil, err
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("no lyrics found for %s - %s: %w", params.Artist, params.Title, lastErr)
	}
	return nil, fmt.Errorf("no lyrics found for %s - %s", params.Artist, params.Title)
}

// IsTimeoutError reports whether err looks like an unreachable network
// rather than a miss on the lyrics database.
func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "deadline exceeded") ||
		strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "no such host")
}

func doFetchRequest(parentCtx context.Context, requestURL string) (*LrclibResponse, error) {
	ctx, cancel := context.WithTimeout(parentCtx, httpTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build http request: %w", err)
	}

	req.Header.Set("User-Agent", "cmus-auto-lyrics/1.0")

	client := getHTTPClient()
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("status 404: lyrics not found")
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("lrclib returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read lrclib response: %w", err)
	}

	var payload LrclibResponse
	err = json.Unmarshal(body, &payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode lrclib json: %w", err)
	}

	return &payload, nil
}
