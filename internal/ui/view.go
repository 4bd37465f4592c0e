package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	width := m.width
	height := m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	if m.quitting {
		return ""
	}

	if m.status == nil {
		return m.renderWaitingScreen(width, height)
	}

	if m.loading || m.set == nil {
		return m.renderLoadingScreen(width, height)
	}

	mode := ModeFull
	if m.cfg.Display.Minimal {
		mode = ModeMinimal
	}

	rows := RenderGrid(RenderParams{
		Set:         m.set,
		ScrollTop:   m.viewport.ScrollTop,
		Current:     m.viewport.Current,
		Highlighted: m.viewport.Highlighted,
		Rows:        height,
		Cols:        width,
		Center:      m.cfg.Display.Center,
		LimitHeight: m.cfg.Display.LimitHeight,
		Mode:        mode,
		Styles:      m.styles,
	})

	return strings.Join(rows, "\n")
}

func (m Model) renderWaitingScreen(width int, height int) string {
	lines := make([]string, height)

	centerY := height / 2
	if centerY > 0 {
		lines[centerY-1] = centerLine("awaiting playback", width)
	}

	pulseChars := []string{"·", "•", "●", "•"}
	pulseIdx := (m.tickCount / 4) % len(pulseChars)
	if centerY < height {
		lines[centerY] = centerLine(pulseChars[pulseIdx], width)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderLoadingScreen(width int, height int) string {
	lines := make([]string, height)

	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	idx := m.tickCount % len(frames)

	centerY := height / 2
	if centerY < height {
		lines[centerY] = centerLine(frames[idx]+" loading lyrics", width)
	}

	return strings.Join(lines, "\n")
}

func centerLine(text string, width int) string {
	padding := (width - runewidth.StringWidth(text)) / 2
	if padding <= 0 {
		return text
	}
	return strings.Repeat(" ", padding) + text
}
