package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzivic7/cmus-auto-lyrics/internal/config"
	"github.com/mzivic7/cmus-auto-lyrics/internal/lyrics"
	"github.com/mzivic7/cmus-auto-lyrics/internal/player"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// recompute geometry without touching the scroll offset
		m.viewport.SetSize(msg.Height, msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()

	case ForcePollMsg:
		return m, pollCmd(m.player)

	case StatusMsg:
		return m.handleStatus(msg)

	case LyricsResolvedMsg:
		return m.handleLyricsResolved(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tickCount++
	m.pollTicker++

	if m.pollTicker >= config.CheckIntervalTicks {
		m.pollTicker = 0
		return m, tea.Batch(tickCmd(), pollCmd(m.player))
	}

	return m, tickCmd()
}

func (m Model) handleStatus(msg StatusMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// the player going away ends the session; a transient query
		// failure mid-session keeps the last known state for this tick
		if !m.polled || errors.Is(msg.Err, player.ErrCmusNotRunning) {
			m.err = msg.Err
			m.quitting = true
			return m, tea.Quit
		}
		m.logf("poll error: %v", msg.Err)
		return m, nil
	}

	m.polled = true
	prev := m.status
	m.status = msg.Status

	if !msg.Status.HasSong() {
		m.quitting = true
		return m, tea.Quit
	}

	if prev == nil || prev.SongPath != msg.Status.SongPath {
		// new song: scroll state resets before any queued input applies
		m.set = nil
		m.resolution = nil
		m.loading = true
		m.viewport.ResetForNewSong()
		m.logf("song change: %s", msg.Status.SongPath)
		return m, resolveCmd(msg.Status.SongPath, msg.Status.DurationSecs, m.resolveOptions())
	}

	if prev.PositionSecs != msg.Status.PositionSecs {
		m.reconcile()
	}

	return m, nil
}

func (m Model) handleLyricsResolved(msg LyricsResolvedMsg) (tea.Model, tea.Cmd) {
	// a stale resolution for a song that is no longer playing is dropped
	if m.status == nil || m.status.SongPath != msg.SongPath {
		return m, nil
	}

	m.loading = false
	m.resolution = msg.Resolution
	m.set = lyrics.Parse(msg.Resolution.Text)
	m.logf("lyrics resolved from %s: %d lines, timestamped=%v",
		msg.Resolution.Source, m.set.Len(), m.set.Timestamped)

	m.reconcile()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.set.Len() > 0 {
			m.viewport.ScrollUp()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.set.Len() > 0 {
			m.viewport.ScrollDown(m.set.Len())
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.status == nil || !m.status.HasSong() {
			return m, nil
		}
		// re-resolve from scratch, skipping the cache
		m.loading = true
		opts := m.resolveOptions()
		opts.NoCache = true
		return m, resolveCmd(m.status.SongPath, m.status.DurationSecs, opts)
	}

	return m, nil
}

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	// only display options reload live; player and lyrics sources are
	// fixed for the session
	m.cfg.Display = msg.Config.Display
	m.styles = NewStyles(m.cfg.Display.Color, m.cfg.Display.ColorCurrent)
	m.reconcile()
	return m, nil
}
