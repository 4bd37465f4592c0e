package lyrics

import (
	"context"

	"github.com/mzivic7/cmus-auto-lyrics/internal/cache"
	"github.com/mzivic7/cmus-auto-lyrics/internal/tags"
	"github.com/mzivic7/cmus-auto-lyrics/internal/track"
)

// Resolution sources, in the order the chain consults them.
const (
	SourceTag      = "tag"
	SourceCache    = "cache"
	SourceLrclib   = "lrclib"
	SourceSentinel = "sentinel"
)

type ResolveOptions struct {
	LrclibURL string
	Offline   bool
	NoCache   bool
	SaveTags  bool
}

// Resolution is the outcome of the lyric resolution chain. Text is always
// renderable: failures surface as sentinel placeholder lines, never errors.
type Resolution struct {
	Info   *track.Info
	Text   string
	Source string
	Synced bool
}

// Resolve finds lyrics for the song at songPath: file tags first, then the
// disk cache, then lrclib. Freshly fetched lyrics are cached and, when
// requested, written back to the file's tags.
func Resolve(ctx context.Context, songPath string, durationSecs int64, opts ResolveOptions) *Resolution {
	info, tagLyrics, _ := tags.Read(songPath)
	info.DurationSecs = durationSecs

	if tagLyrics != "" {
		return &Resolution{
			Info:   info,
			Text:   tagLyrics,
			Source: SourceTag,
			Synced: Parse(tagLyrics).Timestamped,
		}
	}

	diskCache := cache.GetGlobalCache()

	if !opts.NoCache {
		if entry, err := diskCache.Get(info.Artist, info.Title); err == nil && entry != nil {
			return &Resolution{
				Info:   info,
				Text:   entry.Lyrics,
				Source: SourceCache,
				Synced: entry.Synced,
			}
		}
	}

	if opts.Offline {
		return &Resolution{Info: info, Text: SentinelOfflineMode, Source: SourceSentinel}
	}

	baseURL := opts.LrclibURL
	if baseURL == "" {
		baseURL = DefaultLrclibGetURL
	}

	payload, err := Fetch(ctx, baseURL, &TrackParams{
		Title:        info.Title,
		Artist:       info.Artist,
		Album:        info.Album,
		DurationSecs: durationSecs,
	})
	if err != nil {
		if IsTimeoutError(err) {
			return &Resolution{Info: info, Text: SentinelNoInternet, Source: SourceSentinel}
		}
		return &Resolution{Info: info, Text: SentinelNotFound, Source: SourceSentinel}
	}

	text, synced := payload.Lyrics()
	if text == "" {
		return &Resolution{Info: info, Text: SentinelNotFound, Source: SourceSentinel}
	}

	_ = diskCache.Set(info.Artist, info.Title, &cache.Entry{
		Lyrics: text,
		Synced: synced,
		Source: SourceLrclib,
	})

	// write-back is best effort, a failure never blocks display
	if opts.SaveTags && !IsSentinel(text) {
		_ = tags.Fill(songPath, text, info.Artist, info.Title)
	}

	return &Resolution{
		Info:   info,
		Text:   text,
		Source: SourceLrclib,
		Synced: synced,
	}
}
