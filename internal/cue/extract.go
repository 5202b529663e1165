package cue

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

var (
	srtTimingRegex = regexp.MustCompile(
		`^(\d{2}:\d{2}:\d{2}[,.]\d{1,3})\s*-->\s*(\d{2}:\d{2}:\d{2}[,.]\d{1,3})`,
	)
	vttTimingRegex = regexp.MustCompile(
		`^((?:\d{2}:)?\d{2}:\d{2}\.\d{3})\s*-->\s*((?:\d{2}:)?\d{2}:\d{2}\.\d{3})`,
	)
)

// Extract tokenizes a full subtitle payload into cues for the given format.
// The format is always chosen by the caller, never sniffed from the payload.
//
// Extraction is tolerant: blocks that never produce a valid timing line are
// skipped, and a payload with zero extractable cues yields an empty list,
// not an error.
func Extract(payload string, format Format) []Cue {
	switch format {
	case FormatVTT:
		return extractVTT(payload)
	default:
		return extractSRT(payload)
	}
}

// normalizeLines strips a leading BOM and folds CRLF/CR line endings to LF.
func normalizeLines(payload string) string {
	payload = strings.TrimPrefix(payload, "\ufeff")
	payload = strings.ReplaceAll(payload, "\r\n", "\n")
	return strings.ReplaceAll(payload, "\r", "\n")
}

func extractSRT(payload string) []Cue {
	var cues []Cue
	scanner := bufio.NewScanner(strings.NewReader(normalizeLines(payload)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *Cue
	var textLines []string

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.TrimSpace(strings.Join(textLines, "\n"))
			if current.Text != "" {
				cues = append(cues, *current)
			}
		}
		current = nil
		textLines = nil
	}

	sawIndex := false
	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			flush()
			sawIndex = false
			continue
		}

		if current == nil && !sawIndex {
			// leading numeric index line, consumed and discarded
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				sawIndex = true
				continue
			}
		}

		if current == nil {
			matches := srtTimingRegex.FindStringSubmatch(strings.TrimSpace(line))
			if len(matches) == 3 {
				current = &Cue{
					Start: ParseTimestamp(matches[1]),
					End:   ParseTimestamp(matches[2]),
				}
			}
			// anything else before a timing line is skipped
			continue
		}

		textLines = append(textLines, line)
	}
	flush()

	return cues
}

func extractVTT(payload string) []Cue {
	var cues []Cue
	scanner := bufio.NewScanner(strings.NewReader(normalizeLines(payload)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *Cue
	var textLines []string

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.TrimSpace(strings.Join(textLines, "\n"))
			if current.Text != "" {
				cues = append(cues, *current)
			}
		}
		current = nil
		textLines = nil
	}

	skipBlock := func() {
		for scanner.Scan() {
			if strings.TrimSpace(scanner.Text()) == "" {
				return
			}
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "WEBVTT") {
			continue
		}
		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
			flush()
			skipBlock()
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		// the timing line may carry trailing cue settings (align:, position:,
		// ...); the regex captures the timestamps and leaves the rest alone
		matches := vttTimingRegex.FindStringSubmatch(trimmed)
		if len(matches) == 3 {
			flush()
			current = &Cue{
				Start: ParseTimestamp(matches[1]),
				End:   ParseTimestamp(matches[2]),
			}
			continue
		}

		// non-timing lines before a timing line are cue identifiers or
		// header remnants; both are discarded
		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	return cues
}
