package player

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

const cmusQueryTimeout = 2 * time.Second

var ErrCmusNotRunning = errors.New("cmus is not running")

// Cmus queries playback state from the cmus music player via cmus-remote.
type Cmus struct {
	remote string
}

func NewCmus() *Cmus {
	return &Cmus{remote: "cmus-remote"}
}

func (c *Cmus) Name() string { return "cmus" }

func (c *Cmus) Status(ctx context.Context) (*Status, error) {
	queryCtx, cancel := context.WithTimeout(ctx, cmusQueryTimeout)
	defer cancel()

	cmd := exec.CommandContext(queryCtx, c.remote, "-Q")
	output, err := cmd.Output()
	if err != nil {
		// cmus-remote exits non-zero when cmus itself is not running
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, ErrCmusNotRunning
		}
		return nil, fmt.Errorf("failed to run cmus-remote: %w", err)
	}

	return ParseCmusStatus(string(output))
}

// ParseCmusStatus extracts song path, duration, position and playback state
// from `cmus-remote -Q` output. A stopped player yields a status with no
// song path rather than an error.
func ParseCmusStatus(output string) (*Status, error) {
	status := &Status{}

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "file "):
			status.SongPath = strings.TrimPrefix(line, "file ")

		case strings.HasPrefix(line, "duration "):
			value, err := strconv.ParseInt(strings.TrimPrefix(line, "duration "), 10, 64)
			if err == nil {
				status.DurationSecs = value
			}

		case strings.HasPrefix(line, "position "):
			value, err := strconv.ParseInt(strings.TrimPrefix(line, "position "), 10, 64)
			if err == nil {
				status.PositionSecs = value
			}

		case strings.HasPrefix(line, "status "):
			status.Playing = strings.TrimPrefix(line, "status ") == "playing"
		}
	}

	return status, nil
}
