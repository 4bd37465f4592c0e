package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mzivic7/cmus-auto-lyrics/internal/lyrics"
)

// RenderMode selects between the scrolling window and the three-line
// (previous / current / next) presentation. Both share one renderer.
type RenderMode int

const (
	ModeFull RenderMode = iota
	ModeMinimal
)

type Styles struct {
	Normal    lipgloss.Style
	Highlight lipgloss.Style
}

// NewStyles builds the line styles from color values as they appear in
// config: an ANSI number ("3"), a hex color, or empty for the terminal
// default.
func NewStyles(normal string, current string) Styles {
	normalStyle := lipgloss.NewStyle()
	if normal != "" {
		normalStyle = normalStyle.Foreground(lipgloss.Color(normal))
	}

	highlightStyle := lipgloss.NewStyle().Bold(true)
	if current != "" {
		highlightStyle = highlightStyle.Foreground(lipgloss.Color(current))
	}

	return Styles{Normal: normalStyle, Highlight: highlightStyle}
}

// WrapLine splits a logical line into display segments no wider than limit.
// The split lands on the last space at or before the limit; a long word
// with no space is hard-cut. The consumed split spaces aside, concatenating
// the segments reproduces the input exactly.
func WrapLine(text string, limit int) []string {
	if limit <= 0 || runewidth.StringWidth(text) <= limit {
		return []string{text}
	}

	var segments []string
	remaining := text

	for runewidth.StringWidth(remaining) > limit {
		cut, atSpace := findWrapPoint(remaining, limit)
		if cut <= 0 {
			break
		}

		segments = append(segments, remaining[:cut])
		if atSpace {
			remaining = remaining[cut+1:]
		} else {
			remaining = remaining[cut:]
		}
	}

	return append(segments, remaining)
}

// findWrapPoint returns the byte offset to cut at: the last space within
// the width limit when one exists, otherwise the widest prefix that fits.
func findWrapPoint(text string, limit int) (cut int, atSpace bool) {
	width := 0
	lastSpace := -1
	fit := 0

	for i, r := range text {
		runeWidth := runewidth.RuneWidth(r)
		if width+runeWidth > limit {
			break
		}
		width += runeWidth
		fit = i + len(string(r))
		if r == ' ' {
			lastSpace = i
		}
	}

	if lastSpace > 0 {
		return lastSpace, true
	}
	return fit, false
}

// RenderParams is the read-only snapshot the renderer works from.
type RenderParams struct {
	Set         *lyrics.Set
	ScrollTop   int
	Current     int
	Highlighted int
	Rows        int
	Cols        int
	Center      bool
	LimitHeight int
	Mode        RenderMode
	Styles      Styles
}

// RenderGrid renders the lyric set into exactly Rows styled text rows.
// Overflowing segments are truncated, missing content is blank-filled;
// it never fails.
func RenderGrid(p RenderParams) []string {
	rows := make([]string, p.Rows)
	if p.Rows <= 0 || p.Cols <= 1 {
		return rows
	}

	if p.Mode == ModeMinimal {
		renderMinimal(p, rows)
		return rows
	}

	renderFull(p, rows)
	return rows
}

// renderFull draws the scrolling window: lines from ScrollTop down, word
// wrapped, until the row budget runs out. A configured height limit
// shrinks the budget to a band vertically centered in the viewport.
func renderFull(p RenderParams, rows []string) {
	startRow := 0
	endRow := p.Rows

	if p.LimitHeight > 0 && p.LimitHeight < p.Rows {
		startRow = (p.Rows - p.LimitHeight) / 2
		endRow = startRow + p.LimitHeight
	}

	row := startRow
	limit := p.Cols - 1

	for index := p.ScrollTop; index < p.Set.Len() && row < endRow; index++ {
		style := p.Styles.Normal
		if index == p.Highlighted {
			style = p.Styles.Highlight
		}

		for _, segment := range WrapLine(p.Set.Lines[index].Text, limit) {
			if row >= endRow {
				break
			}
			rows[row] = styleSegment(segment, style, p.Center, p.Cols)
			row++
		}
	}
}

// renderMinimal draws only the previous, current and next logical lines,
// vertically centered, with the current line emphasized. Current comes from
// the locator, whichever mode produced it.
func renderMinimal(p RenderParams, rows []string) {
	current := p.Current
	if current < 0 {
		current = 0
	}
	if current >= p.Set.Len() {
		return
	}

	limit := p.Cols - 1

	type block struct {
		segments []string
		current  bool
	}

	var blocks []block
	for offset := -1; offset <= 1; offset++ {
		index := current + offset
		if index < 0 || index >= p.Set.Len() {
			continue
		}
		blocks = append(blocks, block{
			segments: WrapLine(p.Set.Lines[index].Text, limit),
			current:  offset == 0,
		})
	}

	totalRows := 0
	for _, b := range blocks {
		totalRows += len(b.segments)
	}

	row := (p.Rows - totalRows) / 2
	if row < 0 {
		row = 0
	}

	for _, b := range blocks {
		style := p.Styles.Normal
		if b.current {
			style = p.Styles.Highlight
		}
		for _, segment := range b.segments {
			if row >= p.Rows {
				return
			}
			rows[row] = styleSegment(segment, style, p.Center, p.Cols)
			row++
		}
	}
}

func styleSegment(segment string, style lipgloss.Style, center bool, cols int) string {
	rendered := style.Render(segment)
	if center {
		padding := (cols - runewidth.StringWidth(segment)) / 2
		if padding > 0 {
			return strings.Repeat(" ", padding) + rendered
		}
	}
	return rendered
}
