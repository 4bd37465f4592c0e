package track

import (
	"path/filepath"
	"strings"
)

type Info struct {
	SongPath     string
	Title        string
	Artist       string
	Album        string
	DurationSecs int64
	TrackID      string
}

func (t *Info) IsValid() bool {
	if t == nil {
		return false
	}
	return t.Title != "" && t.Artist != ""
}

func (t *Info) IsSameTrack(other *Info) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.SongPath != "" && other.SongPath != "" {
		return t.SongPath == other.SongPath
	}
	if t.TrackID != "" && other.TrackID != "" {
		return t.TrackID == other.TrackID
	}
	return t.Title == other.Title && t.Artist == other.Artist
}

// GuessFromPath derives artist and title from a song file path, for files
// with no usable tags. An "Artist - Title" file name wins over directory layout.
func GuessFromPath(path string) (artist string, title string) {
	trimmed := strings.TrimSuffix(path, filepath.Ext(path))
	trimmed = strings.Trim(trimmed, "/")
	parts := strings.Split(trimmed, "/")

	name := parts[len(parts)-1]
	split := strings.SplitN(name, " - ", 2)
	if len(split) < 2 {
		split = strings.SplitN(name, "-", 2)
	}
	if len(split) >= 2 {
		return strings.TrimSpace(split[0]), strings.TrimSpace(split[1])
	}

	// no separator in the file name, use the parent directory as artist
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[len(parts)-2]), strings.TrimSpace(name)
	}

	return "", strings.TrimSpace(name)
}
