package main

import (
	"fmt"
	"path/filepath"

	"github.com/godbus/dbus/v5"
	"github.com/spf13/cobra"

	"github.com/mzivic7/cmus-auto-lyrics/internal/player"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "query the music player",
	Long:  `query playback state from cmus or an mpris player.`,
}

var playerStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "print the current playback status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		p, cleanup, err := newPlayer(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		status, err := p.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to query %s: %w", p.Name(), err)
		}

		if !status.HasSong() {
			fmt.Printf("%s: nothing playing\n", p.Name())
			return nil
		}

		state := "paused"
		if status.Playing {
			state = "playing"
		}

		fmt.Printf("backend:  %s\n", p.Name())
		fmt.Printf("state:    %s\n", state)
		fmt.Printf("song:     %s\n", filepath.Base(status.SongPath))
		fmt.Printf("position: %ds / %ds\n", status.PositionSecs, status.DurationSecs)

		return nil
	},
}

var playerListCmd = &cobra.Command{
	Use:   "list",
	Short: "list available mpris players on the session bus",
	RunE: func(cmd *cobra.Command, args []string) error {
		bus, err := dbus.ConnectSessionBus()
		if err != nil {
			return fmt.Errorf("failed to connect to session bus: %w", err)
		}
		defer bus.Close()

		services, err := player.ListServices(bus)
		if err != nil {
			return fmt.Errorf("failed to list mpris services: %w", err)
		}

		if len(services) == 0 {
			fmt.Println("no mpris players found")
			return nil
		}

		for _, service := range services {
			fmt.Println(service)
		}

		return nil
	},
}

func init() {
	playerCmd.AddCommand(playerStatusCmd)
	playerCmd.AddCommand(playerListCmd)
	rootCmd.AddCommand(playerCmd)
}
