package cue

import (
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp converts a subtitle timestamp into a playback offset.
// It accepts both the SRT grammar (00:01:02,345) and the VTT grammar
// (00:01:02.345); the comma is normalized to a period so one routine
// serves both. The hour field may be omitted (VTT short form), and
// fractions shorter than three digits are tenths or hundredths of a
// second, so 01,5 is one and a half seconds.
//
// Malformed input yields 0. Subtitle files in the wild are frequently
// broken and a bad timestamp must cost one cue, not the whole track.
func ParseTimestamp(s string) time.Duration {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	whole, frac, hasFrac := strings.Cut(s, ".")
	ms := 0
	if hasFrac {
		if len(frac) > 3 {
			return 0
		}
		n, err := strconv.Atoi(frac)
		if err != nil || n < 0 {
			return 0
		}
		// short fractions are tenths or hundredths of a second
		switch len(frac) {
		case 1:
			n *= 100
		case 2:
			n *= 10
		}
		ms = n
	}

	fields := strings.Split(whole, ":")
	if len(fields) == 2 {
		fields = append([]string{"0"}, fields...)
	}
	if len(fields) != 3 {
		return 0
	}

	h, err := strconv.Atoi(fields[0])
	if err != nil || h < 0 {
		return 0
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil || m < 0 {
		return 0
	}
	sec, err := strconv.Atoi(fields[2])
	if err != nil || sec < 0 {
		return 0
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond
}
