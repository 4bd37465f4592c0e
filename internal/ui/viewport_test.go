package ui

import "testing"

func TestCenterOn(t *testing.T) {
	v := NewViewport()
	v.SetSize(10, 80)

	changed := v.CenterOn(20, 50, true)
	if !changed {
		t.Fatal("expected a visible change")
	}
	if v.ScrollTop != 15 {
		t.Errorf("ScrollTop = %d, want 15", v.ScrollTop)
	}
	if v.Highlighted != 20 {
		t.Errorf("Highlighted = %d, want 20", v.Highlighted)
	}

	// same target again is a no-op
	if v.CenterOn(20, 50, true) {
		t.Error("identical center should report no change")
	}
}

func TestCenterOnClamps(t *testing.T) {
	v := NewViewport()
	v.SetSize(10, 80)

	v.CenterOn(1, 50, true)
	if v.ScrollTop != 0 {
		t.Errorf("near the top: ScrollTop = %d, want 0", v.ScrollTop)
	}

	v.CenterOn(49, 50, true)
	if v.ScrollTop > 49 {
		t.Errorf("near the bottom: ScrollTop = %d exceeds last line", v.ScrollTop)
	}
}

func TestCenterOnWithoutHighlight(t *testing.T) {
	v := NewViewport()
	v.SetSize(10, 80)

	v.CenterOn(20, 50, false)
	if v.Highlighted != -1 {
		t.Errorf("Highlighted = %d, want -1", v.Highlighted)
	}
}

func TestManualOverrideBlocksCentering(t *testing.T) {
	v := NewViewport()
	v.SetSize(10, 80)
	v.CenterOn(20, 50, true)

	v.ScrollDown(50)
	top := v.ScrollTop

	if v.CenterOn(30, 50, true) {
		t.Error("centering under manual override should be a no-op")
	}
	if v.ScrollTop != top {
		t.Errorf("ScrollTop moved under override: %d -> %d", top, v.ScrollTop)
	}
}

func TestCurrentTracksLocator(t *testing.T) {
	v := NewViewport()
	v.SetSize(10, 80)

	// without highlight the current line is still recorded
	v.CenterOn(5, 50, false)
	if v.Current != 5 {
		t.Errorf("Current = %d, want 5", v.Current)
	}
	if v.Highlighted != -1 {
		t.Errorf("Highlighted = %d, want -1", v.Highlighted)
	}

	// manual override freezes the scroll offset, not the current line
	v.ScrollDown(50)
	top := v.ScrollTop
	v.CenterOn(9, 50, false)
	if v.Current != 9 {
		t.Errorf("Current = %d under override, want 9", v.Current)
	}
	if v.ScrollTop != top {
		t.Errorf("ScrollTop moved under override: %d -> %d", top, v.ScrollTop)
	}

	v.ResetForNewSong()
	if v.Current != 0 {
		t.Errorf("Current = %d after reset, want 0", v.Current)
	}
}

func TestManualInputAlwaysOverrides(t *testing.T) {
	v := NewViewport()
	v.SetSize(10, 80)

	// at the top, scroll up cannot move but still takes over
	if v.ScrollUp() {
		t.Error("scroll up at the top should not move")
	}
	if v.Follow != ManualOverride {
		t.Error("clamped scroll up must still enter manual override")
	}

	v = NewViewport()
	v.SetSize(10, 80)
	v.ScrollTop = manualScrollLimit(50, 10)
	if v.ScrollDown(50) {
		t.Error("scroll down at the limit should not move")
	}
	if v.Follow != ManualOverride {
		t.Error("clamped scroll down must still enter manual override")
	}
}

func TestScrollDownLimit(t *testing.T) {
	v := NewViewport()
	v.SetSize(10, 80)

	total := 20
	for i := 0; i < 100; i++ {
		v.ScrollDown(total)
	}
	if v.ScrollTop != 15 {
		t.Errorf("ScrollTop = %d, want 15 (total - rows/2)", v.ScrollTop)
	}

	// a tiny set can never scroll past its last line
	v = NewViewport()
	v.SetSize(2, 80)
	for i := 0; i < 100; i++ {
		v.ScrollDown(3)
	}
	if v.ScrollTop > 2 {
		t.Errorf("ScrollTop = %d exceeds last line of a 3-line set", v.ScrollTop)
	}
}

func TestResetForNewSong(t *testing.T) {
	v := NewViewport()
	v.SetSize(10, 80)
	v.CenterOn(20, 50, true)
	v.ScrollDown(50)

	v.ResetForNewSong()

	if v.ScrollTop != 0 || v.Highlighted != -1 || v.Follow != Following {
		t.Errorf("after reset: top=%d highlighted=%d follow=%v", v.ScrollTop, v.Highlighted, v.Follow)
	}
	if !v.CenterOn(5, 50, true) {
		t.Error("centering should work again after reset")
	}
}

func TestVisibleWindow(t *testing.T) {
	v := NewViewport()
	v.SetSize(10, 80)

	start, end := v.VisibleWindow(50)
	if start != 0 || end != 10 {
		t.Errorf("window = [%d,%d), want [0,10)", start, end)
	}

	v.ScrollTop = 45
	start, end = v.VisibleWindow(50)
	if start != 45 || end != 50 {
		t.Errorf("window = [%d,%d), want [45,50)", start, end)
	}

	// fewer lines than rows
	v.ScrollTop = 0
	start, end = v.VisibleWindow(3)
	if start != 0 || end != 3 {
		t.Errorf("window = [%d,%d), want [0,3)", start, end)
	}
}

func TestClampScroll(t *testing.T) {
	tests := []struct {
		top, total, want int
	}{
		{-5, 10, 0},
		{0, 10, 0},
		{9, 10, 9},
		{15, 10, 9},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := clampScroll(tt.top, tt.total); got != tt.want {
			t.Errorf("clampScroll(%d, %d) = %d, want %d", tt.top, tt.total, got, tt.want)
		}
	}
}
