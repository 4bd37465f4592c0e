package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"

	"github.com/mzivic7/cmus-auto-lyrics/internal/config"
	"github.com/mzivic7/cmus-auto-lyrics/internal/player"
	"github.com/mzivic7/cmus-auto-lyrics/internal/terminal"
	"github.com/mzivic7/cmus-auto-lyrics/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "start the lyrics viewer",
	Long:  `starts the viewer, scrolling lyrics in sync with cmus playback.`,
	RunE:  runViewer,
}

func init() {
	addViewerFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func loadConfig(cmd *cobra.Command) config.Config {
	path := configPath
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
	}

	// flags override config file and environment
	if lrclibURL != "" {
		cfg.Lyrics.LrclibURL = lrclibURL
	}
	if mprisService != "" {
		cfg.Player.Backend = "mpris"
		cfg.Player.MprisService = mprisService
	}
	if cmd.Flags().Changed("no-cache") {
		cfg.Lyrics.NoCache = noCache
	}
	if cmd.Flags().Changed("offline") {
		cfg.Lyrics.Offline = offline
	}
	if cmd.Flags().Changed("save-tags") {
		cfg.Lyrics.SaveTags = saveTags
	}
	if cmd.Flags().Changed("center") {
		cfg.Display.Center = centerLyrics
	}
	if cmd.Flags().Changed("limit-height") {
		cfg.Display.LimitHeight = limitHeight
	}
	if cmd.Flags().Changed("color") {
		cfg.Display.Color = colorNormal
	}
	if cmd.Flags().Changed("color-current") {
		cfg.Display.ColorCurrent = colorCurrent
	}
	if cmd.Flags().Changed("minimal") {
		cfg.Display.Minimal = minimalMode
	}
	if cmd.Flags().Changed("no-auto-scroll") {
		cfg.Display.AutoScroll = !noAutoScroll
	}

	return cfg
}

func newPlayer(cfg config.Config) (player.Player, func(), error) {
	if cfg.Player.Backend == "mpris" {
		bus, err := dbus.ConnectSessionBus()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to session bus: %w", err)
		}

		mpris, err := player.NewMpris(bus, cfg.Player.MprisService)
		if err != nil {
			bus.Close()
			return nil, nil, err
		}

		return mpris, func() { bus.Close() }, nil
	}

	return player.NewCmus(), func() {}, nil
}

func setupDebugLog(path string) (*log.Logger, func(), error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return log.New(file, "", log.LstdFlags|log.Lmicroseconds), func() { file.Close() }, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		cancel()
		terminal.Reset()
		os.Exit(0)
	}()

	defer terminal.Reset()

	cfg := loadConfig(cmd)

	var debugLog *log.Logger
	if debugLogFile != "" {
		logger, closeLog, err := setupDebugLog(debugLogFile)
		if err != nil {
			return err
		}
		defer closeLog()
		debugLog = logger
	}

	p, closePlayer, err := newPlayer(cfg)
	if err != nil {
		return err
	}
	defer closePlayer()

	model := ui.NewModel(ui.ModelConfig{
		Player:   p,
		Config:   cfg,
		DebugLog: debugLog,
	})

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	// live reload for display options, fed into the normal update path
	watchPath := configPath
	if watchPath == "" {
		watchPath = config.Path()
	}
	watcher, err := config.Watch(watchPath, func(newCfg config.Config) {
		program.Send(ui.ConfigReloadedMsg{Config: newCfg})
	})
	if err == nil {
		defer watcher.Close()
	}

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}

	if m, ok := finalModel.(ui.Model); ok && m.Err() != nil {
		return m.Err()
	}

	return nil
}
