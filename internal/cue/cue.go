package cue

import (
	"time"
)

// single timed subtitle entry
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Contains reports whether the cue's [Start, End] interval covers the
// given playback position.
func (c Cue) Contains(position time.Duration) bool {
	return position >= c.Start && position <= c.End
}

// represents supported subtitle wire formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)
