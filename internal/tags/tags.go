package tags

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"

	"github.com/mzivic7/cmus-auto-lyrics/internal/track"
)

// minLyricsTagLen filters out junk values like "None" or a stray newline
// that some taggers leave in an otherwise empty lyrics field.
const minLyricsTagLen = 12

var ErrUnsupportedFormat = errors.New("tag write-back is only supported for mp3 files")

// Read loads artist, title, album and the lyrics tag from an audio file.
// missing artist or title degrade to a guess from the file path; a missing
// or junk lyrics tag yields an empty string, not an error.
func Read(songPath string) (*track.Info, string, error) {
	info := &track.Info{SongPath: songPath}

	file, err := os.Open(songPath)
	if err != nil {
		return info, "", fmt.Errorf("failed to open song file: %w", err)
	}
	defer file.Close()

	var lyricsText string

	metadata, err := tag.ReadFrom(file)
	if err == nil {
		info.Title = strings.TrimSpace(metadata.Title())
		info.Artist = strings.TrimSpace(metadata.Artist())
		info.Album = strings.TrimSpace(metadata.Album())

		if text := metadata.Lyrics(); len(text) > minLyricsTagLen {
			lyricsText = text
		}
	}

	// unreadable tags are not fatal, the path still names the song
	if info.Artist == "" || info.Title == "" {
		guessedArtist, guessedTitle := track.GuessFromPath(songPath)
		if info.Artist == "" {
			info.Artist = guessedArtist
		}
		if info.Title == "" {
			info.Title = guessedTitle
		}
	}

	return info, lyricsText, nil
}

// HasLyrics reports whether the file already carries a usable lyrics tag.
func HasLyrics(songPath string) bool {
	file, err := os.Open(songPath)
	if err != nil {
		return false
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return false
	}

	return len(metadata.Lyrics()) > minLyricsTagLen
}

// Fill writes the lyrics tag, plus artist and title when missing, to an mp3
// file. Existing lyrics tags are left untouched. Callers must not pass
// sentinel placeholder text.
func Fill(songPath string, lyricsText string, artist string, title string) error {
	if strings.ToLower(filepath.Ext(songPath)) != ".mp3" {
		return ErrUnsupportedFormat
	}
	if lyricsText == "" {
		return errors.New("empty lyrics text")
	}

	if HasLyrics(songPath) {
		return nil
	}

	id3Tag, err := id3v2.Open(songPath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open id3 tag: %w", err)
	}
	defer id3Tag.Close()

	id3Tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF8,
		Language:          "eng",
		ContentDescriptor: "",
		Lyrics:            lyricsText,
	})

	if artist != "" && id3Tag.Artist() == "" {
		id3Tag.SetArtist(artist)
	}
	if title != "" && id3Tag.Title() == "" {
		id3Tag.SetTitle(title)
	}

	if err := id3Tag.Save(); err != nil {
		return fmt.Errorf("failed to save id3 tag: %w", err)
	}

	return nil
}
