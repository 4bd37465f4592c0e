package lyrics

// Locate maps a playback position to the current lyric line index.
// timeToNext is the estimated number of seconds until the next line
// becomes current; ok is false when no such estimate exists.
//
// Locate is a pure function: it never mutates the set and identical
// inputs always yield identical results.
func Locate(set *Set, durationSecs int64, positionSecs int64) (index int, timeToNext float64, ok bool) {
	if set.Len() == 0 || durationSecs <= 0 {
		return 0, 0, false
	}

	if set.Timestamped {
		return locateTimestamped(set, float64(positionSecs))
	}

	return locateProportional(set, durationSecs, positionSecs)
}

// locateTimestamped scans lines in order. the current line is the last one
// whose timestamp is <= position; the first later timestamp stops the scan
// and supplies the time-to-next estimate. untimestamped lines are
// transparent: they never become current and never stop the scan.
func locateTimestamped(set *Set, position float64) (int, float64, bool) {
	index := 0

	for i, line := range set.Lines {
		if line.Timestamp == nil {
			continue
		}
		if *line.Timestamp <= position {
			index = i
			continue
		}
		return index, *line.Timestamp - position, true
	}

	return index, 0, false
}

// locateProportional interpolates a pseudo-line index from the playback
// fraction when the set carries no timestamps at all. the time-to-next
// estimate accounts for time already elapsed inside the current pseudo-line.
func locateProportional(set *Set, durationSecs int64, positionSecs int64) (int, float64, bool) {
	total := set.Len()

	index := int(positionSecs * int64(total) / durationSecs)
	if index < 0 {
		index = 0
	}
	if index > total-1 {
		index = total - 1
	}

	if index >= total-1 {
		return index, 0, false
	}

	lineDuration := float64(durationSecs) / float64(total)
	elapsed := float64(positionSecs) - float64(index)*lineDuration
	remaining := lineDuration - elapsed
	if remaining < 0 {
		remaining = 0
	}

	return index, remaining, true
}
