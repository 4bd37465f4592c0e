package player

import "context"

// Status is one snapshot of external playback state. An empty SongPath
// means nothing is playing.
type Status struct {
	SongPath     string
	DurationSecs int64
	PositionSecs int64
	Playing      bool
}

func (s *Status) HasSong() bool {
	return s != nil && s.SongPath != ""
}

// Player queries a music player for its current playback state. Queries
// are bounded and synchronous; the reconciliation loop treats one call as
// a single non-blocking step at coarse intervals.
type Player interface {
	Name() string
	Status(ctx context.Context) (*Status, error)
}
