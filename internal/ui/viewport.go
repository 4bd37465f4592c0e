package ui

// FollowState is the scroll controller state: automatic centering driven
// by playback, or a manual override that sticks until the song changes.
type FollowState int

const (
	Following FollowState = iota
	ManualOverride
)

// Viewport holds the scroll offset and visible-window geometry for one
// lyric set. It is a plain value owned by the model; every mutation goes
// through a method so the clamping invariants hold everywhere.
type Viewport struct {
	ScrollTop int
	// Current is the locator's current line. Highlighted is the line drawn
	// emphasized; it stays -1 for untimestamped sets, where the current
	// index is an estimate.
	Current     int
	Highlighted int
	Rows        int
	Cols        int
	Follow      FollowState
}

func NewViewport() Viewport {
	return Viewport{Highlighted: -1, Follow: Following}
}

// ResetForNewSong returns the viewport to the top in Following state.
// this is the only transition out of ManualOverride.
func (v *Viewport) ResetForNewSong() {
	v.ScrollTop = 0
	v.Current = 0
	v.Highlighted = -1
	v.Follow = Following
}

func (v *Viewport) SetSize(rows, cols int) {
	v.Rows = rows
	v.Cols = cols
}

// CenterOn scrolls so that index sits in the middle of the viewport and
// highlights it. It does nothing under manual override. The returned flag
// reports whether anything visible changed, so callers can skip identical
// redraws.
func (v *Viewport) CenterOn(index int, total int, highlight bool) bool {
	// the current line tracks playback even under manual override, so the
	// minimal view stays on the right line when the override is released
	v.Current = index

	if v.Follow != Following {
		return false
	}

	newTop := index - v.Rows/2
	newTop = clampScroll(newTop, total)

	newHighlight := -1
	if highlight {
		newHighlight = index
	}

	if newTop == v.ScrollTop && newHighlight == v.Highlighted {
		return false
	}

	v.ScrollTop = newTop
	v.Highlighted = newHighlight
	return true
}

// ScrollUp handles a manual scroll-up input. Any manual input switches the
// controller to ManualOverride, even when the offset cannot move further.
func (v *Viewport) ScrollUp() bool {
	v.Follow = ManualOverride

	if v.ScrollTop <= 0 {
		return false
	}
	v.ScrollTop--
	return true
}

// ScrollDown handles a manual scroll-down input, clamped so the tail of
// the lyric set stays reachable but the view never scrolls past it.
func (v *Viewport) ScrollDown(total int) bool {
	v.Follow = ManualOverride

	limit := manualScrollLimit(total, v.Rows)
	if v.ScrollTop >= limit {
		return false
	}
	v.ScrollTop++
	return true
}

// VisibleWindow returns the half-open range of line indices that may be
// drawn. Wrapped segments can exhaust the row budget earlier; the renderer
// truncates within this range.
func (v *Viewport) VisibleWindow(total int) (start int, end int) {
	start = clampScroll(v.ScrollTop, total)
	end = start + v.Rows
	if end > total {
		end = total
	}
	return start, end
}

func clampScroll(top int, total int) int {
	if top < 0 {
		return 0
	}
	max := total - 1
	if max < 0 {
		max = 0
	}
	if top > max {
		return max
	}
	return top
}

func manualScrollLimit(total int, rows int) int {
	limit := total - rows/2
	if limit < 0 {
		limit = 0
	}
	// the scroll offset invariant caps at the last line regardless of rows
	if max := total - 1; max >= 0 && limit > max {
		limit = max
	}
	return limit
}
