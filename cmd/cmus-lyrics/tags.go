package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mzivic7/cmus-auto-lyrics/internal/lyrics"
	"github.com/mzivic7/cmus-auto-lyrics/internal/tags"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "inspect and fill song file tags",
	Long:  `read lyrics from audio file tags or write fetched lyrics back into them.`,
}

var tagsShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "print metadata and embedded lyrics from a song file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, lyricsText, err := tags.Read(args[0])
		if err != nil {
			return fmt.Errorf("failed to read tags: %w", err)
		}

		fmt.Printf("artist: %s\n", info.Artist)
		fmt.Printf("title:  %s\n", info.Title)
		if info.Album != "" {
			fmt.Printf("album:  %s\n", info.Album)
		}

		if lyricsText == "" {
			fmt.Println("\nno embedded lyrics")
			return nil
		}

		fmt.Println()
		for _, line := range lyrics.Parse(lyricsText).Lines {
			fmt.Println(line.Text)
		}

		return nil
	},
}

var tagsFillCmd = &cobra.Command{
	Use:   "fill <file>",
	Short: "fetch lyrics and write them into the file's lyrics tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		songPath := args[0]

		if tags.HasLyrics(songPath) {
			fmt.Println("file already has a lyrics tag, nothing to do")
			return nil
		}

		info, _, err := tags.Read(songPath)
		if err != nil {
			return fmt.Errorf("failed to read tags: %w", err)
		}
		if info.Artist == "" || info.Title == "" {
			return fmt.Errorf("file has no artist/title tags to search with")
		}

		baseURL := lrclibURL
		if baseURL == "" {
			baseURL = lyrics.DefaultLrclibGetURL
		}

		fmt.Printf("fetching: %s - %s\n", info.Artist, info.Title)

		payload, err := lyrics.Fetch(context.Background(), baseURL, &lyrics.TrackParams{
			Title:  info.Title,
			Artist: info.Artist,
			Album:  info.Album,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch lyrics: %w", err)
		}

		text, _ := payload.Lyrics()
		if text == "" {
			return fmt.Errorf("no lyrics available for this song")
		}

		err = tags.Fill(songPath, text, info.Artist, info.Title)
		if err != nil {
			return fmt.Errorf("failed to write lyrics tag: %w", err)
		}

		fmt.Println("lyrics tag written")

		return nil
	},
}

func init() {
	tagsCmd.AddCommand(tagsShowCmd)
	tagsCmd.AddCommand(tagsFillCmd)
	rootCmd.AddCommand(tagsCmd)
}
