package lyrics

import "testing"

func timestampedSet(stamps ...float64) *Set {
	set := &Set{Timestamped: true}
	for _, stamp := range stamps {
		s := stamp
		set.Lines = append(set.Lines, Line{Timestamp: &s})
	}
	return set
}

func plainSet(n int) *Set {
	set := &Set{}
	for i := 0; i < n; i++ {
		set.Lines = append(set.Lines, Line{Text: "line"})
	}
	return set
}

func TestLocateTimestamped(t *testing.T) {
	tests := []struct {
		name      string
		set       *Set
		duration  int64
		position  int64
		wantIndex int
		wantNext  float64
		wantOK    bool
	}{
		{
			name:      "between two stamps",
			set:       timestampedSet(0, 5, 10),
			duration:  20,
			position:  7,
			wantIndex: 1,
			wantNext:  3,
			wantOK:    true,
		},
		{
			name:      "exactly on a stamp",
			set:       timestampedSet(0, 5, 10),
			duration:  20,
			position:  5,
			wantIndex: 1,
			wantNext:  5,
			wantOK:    true,
		},
		{
			name:      "before the first stamp",
			set:       timestampedSet(3, 5, 10),
			duration:  20,
			position:  1,
			wantIndex: 0,
			wantNext:  2,
			wantOK:    true,
		},
		{
			name:      "beyond the last stamp",
			set:       timestampedSet(0, 5, 10),
			duration:  20,
			position:  15,
			wantIndex: 2,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, next, ok := Locate(tt.set, tt.duration, tt.position)
			if index != tt.wantIndex {
				t.Errorf("index = %d, want %d", index, tt.wantIndex)
			}
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && !almostEqual(next, tt.wantNext) {
				t.Errorf("timeToNext = %v, want %v", next, tt.wantNext)
			}
		})
	}
}

func TestLocateTimestampedSkipsPlainLines(t *testing.T) {
	two := 2.0
	ten := 10.0
	set := &Set{
		Timestamped: true,
		Lines: []Line{
			{Timestamp: &two},
			{Text: "no stamp"},
			{Timestamp: &ten},
		},
	}

	index, next, ok := Locate(set, 20, 5)
	if index != 0 {
		t.Errorf("index = %d, want 0 (plain lines are transparent)", index)
	}
	if !ok || !almostEqual(next, 5) {
		t.Errorf("timeToNext = %v ok=%v, want 5 true", next, ok)
	}
}

func TestLocateProportional(t *testing.T) {
	tests := []struct {
		name      string
		lines     int
		duration  int64
		position  int64
		wantIndex int
		wantNext  float64
		wantOK    bool
	}{
		{
			name:      "midway through the song",
			lines:     10,
			duration:  100,
			position:  55,
			wantIndex: 5,
			wantNext:  5,
			wantOK:    true,
		},
		{
			name:      "at the start",
			lines:     10,
			duration:  100,
			position:  0,
			wantIndex: 0,
			wantNext:  10,
			wantOK:    true,
		},
		{
			name:      "four lines forty seconds",
			lines:     4,
			duration:  40,
			position:  30,
			wantIndex: 3,
			wantOK:    false,
		},
		{
			name:      "position past duration clamps to last",
			lines:     4,
			duration:  40,
			position:  90,
			wantIndex: 3,
			wantOK:    false,
		},
		{
			name:      "single line",
			lines:     1,
			duration:  100,
			position:  50,
			wantIndex: 0,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, next, ok := Locate(plainSet(tt.lines), tt.duration, tt.position)
			if index != tt.wantIndex {
				t.Errorf("index = %d, want %d", index, tt.wantIndex)
			}
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if tt.wantOK && !almostEqual(next, tt.wantNext) {
				t.Errorf("timeToNext = %v, want %v", next, tt.wantNext)
			}
		})
	}
}

func TestLocateDegenerateInputs(t *testing.T) {
	if index, _, ok := Locate(&Set{}, 100, 10); index != 0 || ok {
		t.Errorf("empty set: index=%d ok=%v, want 0 false", index, ok)
	}
	if index, _, ok := Locate(plainSet(5), 0, 10); index != 0 || ok {
		t.Errorf("zero duration: index=%d ok=%v, want 0 false", index, ok)
	}
	if index, _, ok := Locate(plainSet(5), -3, 10); index != 0 || ok {
		t.Errorf("negative duration: index=%d ok=%v, want 0 false", index, ok)
	}
}

func TestLocateEndToEnd(t *testing.T) {
	set := Parse("[00:01.00]Hello\n[00:03.00]World")

	index, next, ok := Locate(set, 10, 2)
	if index != 0 {
		t.Fatalf("index = %d, want 0", index)
	}
	if set.Lines[index].Text != "Hello" {
		t.Errorf("current line = %q, want Hello", set.Lines[index].Text)
	}
	if !ok || !almostEqual(next, 1) {
		t.Errorf("timeToNext = %v ok=%v, want 1 true", next, ok)
	}
}

func TestLocateIsPure(t *testing.T) {
	set := plainSet(7)
	i1, n1, o1 := Locate(set, 70, 33)
	i2, n2, o2 := Locate(set, 70, 33)
	if i1 != i2 || n1 != n2 || o1 != o2 {
		t.Errorf("repeated calls disagree: (%d %v %v) vs (%d %v %v)", i1, n1, o1, i2, n2, o2)
	}
}
