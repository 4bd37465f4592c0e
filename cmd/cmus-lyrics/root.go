package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// global flags
	configPath   string
	lrclibURL    string
	noCache      bool
	offline      bool
	saveTags     bool
	mprisService string

	// display flags
	centerLyrics bool
	limitHeight  int
	colorNormal  string
	colorCurrent string
	minimalMode  bool
	noAutoScroll bool
	debugLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "cmus-lyrics",
	Short: "synchronized lyrics viewer for cmus",
	Long: `cmus-lyrics displays the lyrics of the song playing in cmus, scrolled in
sync with playback. lyrics come from the file's tags when present, then from
lrclib.net, with a local disk cache in between.

when run without a subcommand, it starts the viewer.`,
	Version: "1.0.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runViewer(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&lrclibURL, "lrclib-url", "", "custom lrclib api url")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "disable cache reads (always fetch fresh)")
	rootCmd.PersistentFlags().BoolVarP(&offline, "offline", "o", false, "offline mode - only read lyrics from tags")
	rootCmd.PersistentFlags().StringVarP(&mprisService, "mpris-service", "m", "", "query an mpris player instead of cmus (e.g. org.mpris.MediaPlayer2.spotify)")

	addViewerFlags(rootCmd)
}

// addViewerFlags registers the viewer-only flags. Both the bare root
// command and the explicit run subcommand start the viewer, so both carry
// them; they share the same backing variables.
func addViewerFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&saveTags, "save-tags", "s", false, "save lyrics, artist, and title tags when the lyrics tag is missing")
	cmd.Flags().BoolVarP(&centerLyrics, "center", "e", false, "center lyrics horizontally")
	cmd.Flags().IntVarP(&limitHeight, "limit-height", "l", 0, "limit visible lyrics lines, vertically centered")
	cmd.Flags().StringVar(&colorNormal, "color", "", "color for lyrics lines (ansi code or hex)")
	cmd.Flags().StringVar(&colorCurrent, "color-current", "", "color for the current line")
	cmd.Flags().BoolVar(&minimalMode, "minimal", false, "show only previous, current, and next lines")
	cmd.Flags().BoolVar(&noAutoScroll, "no-auto-scroll", false, "disable automatic scrolling")
	cmd.Flags().StringVar(&debugLogFile, "debug-log", "", "write a debug log to this file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
