package cue

import (
	"fmt"
	"strings"
	"time"
)

// RenderSRT serializes cues back into SRT text with 1-based indices.
func RenderSRT(cues []Cue) string {
	var sb strings.Builder
	for i, c := range cues {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatSRTTime(c.Start),
			FormatSRTTime(c.End)))
		sb.WriteString(c.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// RenderVTT serializes cues back into WebVTT text.
func RenderVTT(cues []Cue) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, c := range cues {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			FormatVTTTime(c.Start),
			FormatVTTTime(c.End)))
		sb.WriteString(c.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Render serializes cues in the given format.
func Render(cues []Cue, format Format) string {
	if format == FormatVTT {
		return RenderVTT(cues)
	}
	return RenderSRT(cues)
}

// timestamp in SRT notation: 00:00:00,000
func FormatSRTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// timestamp in VTT notation: 00:00:00.000
func FormatVTTTime(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
