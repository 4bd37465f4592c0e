package lyrics

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// timestampPattern matches a leading LRC time token like [02:48.93].
// the sub-second field may carry one to three digits.
var timestampPattern = regexp.MustCompile(`^\[(\d{1,2}):(\d{1,2})\.(\d{1,3})\]`)

// Line is one lyric line. Timestamp is nil for untimestamped lines.
type Line struct {
	Raw       string
	Text      string
	Timestamp *float64
}

// Set is an immutable, ordered lyric set for one song.
type Set struct {
	Lines       []Line
	Timestamped bool
}

// Len returns the number of lines in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Lines)
}

// ParseLine extracts an optional leading timestamp from a raw lyric line.
// malformed timestamps degrade to "no timestamp", never to an error.
func ParseLine(raw string) (text string, timestamp *float64) {
	trimmed := strings.TrimSpace(raw)

	match := timestampPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return trimmed, nil
	}

	minutes, err := strconv.Atoi(match[1])
	if err != nil {
		return trimmed, nil
	}
	seconds, err := strconv.Atoi(match[2])
	if err != nil {
		return trimmed, nil
	}
	subSecond, err := strconv.Atoi(match[3])
	if err != nil {
		return trimmed, nil
	}

	// scale the sub-second field by its digit count so it is always a
	// fraction of one second: "9" -> 0.9, "93" -> 0.93, "930" -> 0.930
	fraction := float64(subSecond) / math.Pow(10, float64(len(match[3])))

	total := float64(minutes)*60 + float64(seconds) + fraction
	text = strings.TrimSpace(trimmed[len(match[0]):])

	return text, &total
}

// Parse splits raw lyric text into a lyric set. A set is timestamped when
// at least one line carries a timestamp; a mix of timestamped and plain
// lines is allowed.
func Parse(raw string) *Set {
	set := &Set{}
	if raw == "" {
		return set
	}

	rawLines := strings.Split(raw, "\n")
	set.Lines = make([]Line, 0, len(rawLines))

	for _, rawLine := range rawLines {
		text, timestamp := ParseLine(rawLine)
		if timestamp != nil {
			set.Timestamped = true
		}
		set.Lines = append(set.Lines, Line{
			Raw:       rawLine,
			Text:      text,
			Timestamp: timestamp,
		})
	}

	return set
}
