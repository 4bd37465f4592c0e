package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzivic7/cmus-auto-lyrics/internal/config"
	"github.com/mzivic7/cmus-auto-lyrics/internal/lyrics"
	"github.com/mzivic7/cmus-auto-lyrics/internal/player"
)

type TickMsg time.Time

type StatusMsg struct {
	Status *player.Status
	Err    error
}

type LyricsResolvedMsg struct {
	SongPath   string
	Resolution *lyrics.Resolution
}

type ConfigReloadedMsg struct {
	Config config.Config
}

// ForcePollMsg injects an immediate player poll through the same
// reconciliation path as the timed poll.
type ForcePollMsg struct{}

type Model struct {
	player   player.Player
	cfg      config.Config
	keys     keyMap
	styles   Styles
	debugLog *log.Logger

	status     *player.Status
	set        *lyrics.Set
	resolution *lyrics.Resolution
	viewport   Viewport

	tickCount  int
	pollTicker int
	polled     bool
	loading    bool
	quitting   bool
	err        error
	width      int
	height     int
}

type ModelConfig struct {
	Player   player.Player
	Config   config.Config
	DebugLog *log.Logger
}

func NewModel(mc ModelConfig) Model {
	return Model{
		player:   mc.Player,
		cfg:      mc.Config,
		keys:     defaultKeys,
		styles:   NewStyles(mc.Config.Display.Color, mc.Config.Display.ColorCurrent),
		debugLog: mc.DebugLog,
		viewport: NewViewport(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		pollCmd(m.player),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func pollCmd(p player.Player) tea.Cmd {
	return func() tea.Msg {
		status, err := p.Status(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func resolveCmd(songPath string, durationSecs int64, opts lyrics.ResolveOptions) tea.Cmd {
	return func() tea.Msg {
		resolution := lyrics.Resolve(context.Background(), songPath, durationSecs, opts)
		return LyricsResolvedMsg{SongPath: songPath, Resolution: resolution}
	}
}

func (m *Model) resolveOptions() lyrics.ResolveOptions {
	return lyrics.ResolveOptions{
		LrclibURL: m.cfg.Lyrics.LrclibURL,
		Offline:   m.cfg.Lyrics.Offline,
		NoCache:   m.cfg.Lyrics.NoCache,
		SaveTags:  m.cfg.Lyrics.SaveTags,
	}
}

func (m *Model) logf(format string, args ...any) {
	if m.debugLog != nil {
		m.debugLog.Printf(format, args...)
	}
}

// reconcile recomputes the current line and viewport from the latest
// playback snapshot. Returns true when anything visible changed.
func (m *Model) reconcile() bool {
	if m.set == nil || m.status == nil {
		return false
	}
	if !m.cfg.Display.AutoScroll {
		return false
	}

	index, timeToNext, ok := lyrics.Locate(m.set, m.status.DurationSecs, m.status.PositionSecs)
	if ok {
		m.logf("locate: line %d, %.2fs to next", index, timeToNext)
	}

	// highlighting a pseudo-line would suggest precision the proportional
	// mode does not have, so only timestamped sets highlight
	return m.viewport.CenterOn(index, m.set.Len(), m.set.Timestamped)
}

func (m Model) Viewport() Viewport { return m.viewport }

func (m Model) Set() *lyrics.Set { return m.set }

func (m Model) Resolution() *lyrics.Resolution { return m.resolution }

func (m Model) Err() error { return m.err }

func (m Model) IsQuitting() bool { return m.quitting }
