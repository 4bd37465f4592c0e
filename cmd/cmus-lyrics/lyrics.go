package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mzivic7/cmus-auto-lyrics/internal/cache"
	"github.com/mzivic7/cmus-auto-lyrics/internal/lyrics"
)

var lyricsCmd = &cobra.Command{
	Use:   "lyrics",
	Short: "lyrics search and management",
	Long:  `search for lyrics, pre-fetch them into the cache, or print them.`,
}

var lyricsSearchCmd = &cobra.Command{
	Use:   "search <artist> <title>",
	Short: "search for lyrics on lrclib",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artist := args[0]
		title := args[1]

		baseURL := lrclibURL
		if baseURL == "" {
			baseURL = lyrics.DefaultLrclibGetURL
		}

		fmt.Printf("searching for: %s - %s\n\n", artist, title)

		payload, err := lyrics.Fetch(context.Background(), baseURL, &lyrics.TrackParams{
			Title:  title,
			Artist: artist,
		})
		if err != nil {
			return fmt.Errorf("lyrics not found: %w", err)
		}

		fmt.Printf("found lyrics:\n")
		fmt.Printf("  track:        %s\n", payload.TrackName)
		fmt.Printf("  artist:       %s\n", payload.ArtistName)
		if payload.AlbumName != "" {
			fmt.Printf("  album:        %s\n", payload.AlbumName)
		}
		if payload.Duration > 0 {
			fmt.Printf("  duration:     %.0fs\n", payload.Duration)
		}
		fmt.Printf("  instrumental: %v\n", payload.Instrumental)

		if payload.SyncedLyrics != "" {
			fmt.Printf("  synced lines: %d\n", len(strings.Split(payload.SyncedLyrics, "\n")))
		} else {
			fmt.Printf("  synced lines: none\n")
		}

		if payload.PlainLyrics != "" {
			fmt.Printf("  plain lines:  %d\n", len(strings.Split(payload.PlainLyrics, "\n")))
		} else {
			fmt.Printf("  plain lines:  none\n")
		}

		fmt.Println("\nuse 'cmus-lyrics lyrics fetch' to save to cache")

		return nil
	},
}

var lyricsFetchCmd = &cobra.Command{
	Use:   "fetch <artist> <title>",
	Short: "pre-fetch and cache lyrics",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artist := args[0]
		title := args[1]

		baseURL := lrclibURL
		if baseURL == "" {
			baseURL = lyrics.DefaultLrclibGetURL
		}

		diskCache := cache.GetGlobalCache()
		if cached, err := diskCache.Get(artist, title); err == nil && cached != nil && !noCache {
			fmt.Printf("'%s - %s' is already cached\n", artist, title)
			return nil
		}

		fmt.Printf("fetching: %s - %s\n", artist, title)

		payload, err := lyrics.Fetch(context.Background(), baseURL, &lyrics.TrackParams{
			Title:  title,
			Artist: artist,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch lyrics: %w", err)
		}

		text, synced := payload.Lyrics()
		if text == "" {
			return fmt.Errorf("no lyrics available for this song")
		}

		err = diskCache.Set(artist, title, &cache.Entry{
			Lyrics: text,
			Synced: synced,
			Source: lyrics.SourceLrclib,
		})
		if err != nil {
			return fmt.Errorf("failed to cache lyrics: %w", err)
		}

		fmt.Printf("cached successfully: %s - %s\n", payload.ArtistName, payload.TrackName)

		return nil
	},
}

var lyricsShowCmd = &cobra.Command{
	Use:   "show <artist> <title>",
	Short: "print lyrics to stdout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		artist := args[0]
		title := args[1]

		if !noCache {
			if cached, err := cache.GetGlobalCache().Get(artist, title); err == nil && cached != nil {
				printParsed(cached.Lyrics)
				return nil
			}
		}

		baseURL := lrclibURL
		if baseURL == "" {
			baseURL = lyrics.DefaultLrclibGetURL
		}

		payload, err := lyrics.Fetch(context.Background(), baseURL, &lyrics.TrackParams{
			Title:  title,
			Artist: artist,
		})
		if err != nil {
			return fmt.Errorf("lyrics not found: %w", err)
		}

		text, _ := payload.Lyrics()
		printParsed(text)

		return nil
	},
}

// printParsed strips timestamp tokens so the output reads as plain text.
func printParsed(text string) {
	for _, line := range lyrics.Parse(text).Lines {
		fmt.Println(line.Text)
	}
}

func init() {
	lyricsCmd.AddCommand(lyricsSearchCmd)
	lyricsCmd.AddCommand(lyricsFetchCmd)
	lyricsCmd.AddCommand(lyricsShowCmd)
	rootCmd.AddCommand(lyricsCmd)
}
