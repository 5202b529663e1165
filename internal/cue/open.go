package cue

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Open reads a local subtitle file and extracts its cues. The format is
// chosen by file extension.
func Open(path string) ([]Cue, Format, error) {
	var format Format
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".srt":
		format = FormatSRT
	case ".vtt":
		format = FormatVTT
	default:
		return nil, "", fmt.Errorf("unsupported subtitle format: %s", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read subtitle file: %w", err)
	}

	return Extract(string(data), format), format, nil
}
