// Package term renders the subtitle overlay into an ANSI terminal. It is
// the reference Surface implementation used by the preview command.
package term

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tgrenier/jellysub/internal/style"
)

// Surface draws subtitle text into a fixed-size terminal region using
// ANSI cursor addressing. The outer node is the reserved screen region;
// the inner node is the text block positioned by the resolved anchor.
type Surface struct {
	mu      sync.Mutex
	w       io.Writer
	rows    int
	cols    int
	st      style.Resolved
	visible bool
	drawn   []int // rows currently holding rendered text
}

func New(w io.Writer, rows, cols int) *Surface {
	if rows <= 0 {
		rows = 24
	}
	if cols <= 0 {
		cols = 80
	}
	return &Surface{
		w:    w,
		rows: rows,
		cols: cols,
		st:   style.Resolve(style.Config{}),
	}
}

func (s *Surface) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visible {
		return
	}
	s.visible = true
	fmt.Fprint(s.w, "\x1b[?25l") // hide cursor while the overlay is up
}

func (s *Surface) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.visible {
		return
	}
	s.clearDrawn()
	s.visible = false
	fmt.Fprint(s.w, "\x1b[?25h")
}

func (s *Surface) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearDrawn()
	if text == "" || !s.visible {
		return
	}

	lines := strings.Split(text, "\n")
	top := int(s.st.Anchor.OffsetFraction()*float64(s.rows)) - len(lines)/2
	if top < 0 {
		top = 0
	}
	if top > s.rows-len(lines) {
		top = s.rows - len(lines)
	}

	sgr := s.sgr()
	for i, line := range lines {
		row := top + i + 1 // ANSI rows are 1-based
		if row < 1 || row > s.rows {
			continue
		}
		col := (s.cols-utf8.RuneCountInString(line))/2 + 1
		if col < 1 {
			col = 1
		}
		fmt.Fprintf(s.w, "\x1b[%d;%dH%s%s\x1b[0m", row, col, sgr, line)
		s.drawn = append(s.drawn, row)
	}
}

func (s *Surface) ApplyStyle(st style.Resolved) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = st
}

func (s *Surface) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearDrawn()
	s.visible = false
	fmt.Fprint(s.w, "\x1b[0m\x1b[?25h")
}

func (s *Surface) clearDrawn() {
	for _, row := range s.drawn {
		fmt.Fprintf(s.w, "\x1b[%d;1H\x1b[2K", row)
	}
	s.drawn = nil
}

// sgr builds the escape prefix for the resolved style. A terminal has no
// real drop shadow; bold stands in for it, and the panel mode becomes a
// dark truecolor background.
func (s *Surface) sgr() string {
	r, g, b := hexRGB(s.st.Color)
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", r, g, b)
	switch s.st.Background {
	case style.BackgroundShadow:
		sb.WriteString("\x1b[1m")
	case style.BackgroundPanel:
		sb.WriteString("\x1b[48;2;30;30;30m")
	}
	return sb.String()
}

// hexRGB parses #RRGGBB; anything unparseable renders as white.
func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
