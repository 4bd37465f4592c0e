package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// TickInterval is the reconciliation loop cadence.
	TickInterval = 50 * time.Millisecond
	// CheckIntervalTicks is how many ticks pass between player polls (~1s).
	CheckIntervalTicks = 20

	configDirName  = "cmus-auto-lyrics"
	configFileName = "config.toml"
)

type Config struct {
	Player  PlayerConfig  `toml:"player"`
	Lyrics  LyricsConfig  `toml:"lyrics"`
	Display DisplayConfig `toml:"display"`
}

type PlayerConfig struct {
	// Backend is "cmus" or "mpris".
	Backend      string `toml:"backend"`
	MprisService string `toml:"mpris_service"`
}

type LyricsConfig struct {
	LrclibURL string `toml:"lrclib_url"`
	Offline   bool   `toml:"offline"`
	SaveTags  bool   `toml:"save_tags"`
	NoCache   bool   `toml:"no_cache"`
}

type DisplayConfig struct {
	Center       bool   `toml:"center"`
	LimitHeight  int    `toml:"limit_height"`
	Color        string `toml:"color"`
	ColorCurrent string `toml:"color_current"`
	Minimal      bool   `toml:"minimal"`
	AutoScroll   bool   `toml:"auto_scroll"`
}

func Default() Config {
	return Config{
		Player: PlayerConfig{
			Backend: "cmus",
		},
		Lyrics: LyricsConfig{},
		Display: DisplayConfig{
			ColorCurrent: "3",
			AutoScroll:   true,
		},
	}
}

// Path returns the config file location, preferring XDG_CONFIG_HOME.
func Path() string {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig != "" {
		return filepath.Join(xdgConfig, configDirName, configFileName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}

	return filepath.Join(home, ".config", configDirName, configFileName)
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. Environment variables override file values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if value := os.Getenv("CMUS_LYRICS_LRCLIB_URL"); value != "" {
		cfg.Lyrics.LrclibURL = value
	}
	if value := os.Getenv("CMUS_LYRICS_MPRIS_SERVICE"); value != "" {
		cfg.Player.Backend = "mpris"
		cfg.Player.MprisService = value
	}
	if value := os.Getenv("CMUS_LYRICS_OFFLINE"); value != "" {
		cfg.Lyrics.Offline = parseBool(value)
	}
	if value := os.Getenv("CMUS_LYRICS_CENTER"); value != "" {
		cfg.Display.Center = parseBool(value)
	}
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return value == "yes" || value == "on"
	}
	return parsed
}
