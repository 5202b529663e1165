package style

import (
	"strings"
)

// user-facing subtitle appearance settings; an empty field means "keep the
// previously resolved value", so partial configs are valid everywhere
type Config struct {
	Size             string `yaml:"size"`
	Color            string `yaml:"color"`
	VerticalPosition string `yaml:"position"`
	BackgroundMode   string `yaml:"background"`
}

// Merge overlays the set fields of other onto c, field by field. Absent
// fields in other retain c's value.
func (c Config) Merge(other Config) Config {
	if other.Size != "" {
		c.Size = other.Size
	}
	if other.Color != "" {
		c.Color = other.Color
	}
	if other.VerticalPosition != "" {
		c.VerticalPosition = other.VerticalPosition
	}
	if other.BackgroundMode != "" {
		c.BackgroundMode = other.BackgroundMode
	}
	return c
}

// vertical anchoring of the subtitle surface
type Anchor int

const (
	AnchorBottom Anchor = iota
	AnchorBottomLow
	AnchorBottomHigh
	AnchorMiddle
	AnchorTop
)

// OffsetFraction is the anchor's vertical position as a fraction of the
// surface height, measured from the top.
func (a Anchor) OffsetFraction() float64 {
	switch a {
	case AnchorTop:
		return 0.05
	case AnchorMiddle:
		return 0.50
	case AnchorBottomHigh:
		return 0.72
	case AnchorBottomLow:
		return 0.97
	default:
		return 0.88
	}
}

// background treatment behind the subtitle text; the three modes are
// mutually exclusive
type Background int

const (
	BackgroundShadow Background = iota
	BackgroundPanel
	BackgroundNone
)

// concrete, defaulted visual parameters computed from a Config
type Resolved struct {
	FontSize   int    // px at a 1080p baseline
	Color      string // hex, e.g. #FFFFFF
	Anchor     Anchor
	Background Background
}

const (
	defaultFontSize = 32
	defaultColor    = "#FFFFFF"
)

var fontSizes = map[string]int{
	"small":      24,
	"medium":     defaultFontSize,
	"large":      42,
	"extralarge": 56,
}

var anchors = map[string]Anchor{
	"top":         AnchorTop,
	"middle":      AnchorMiddle,
	"bottom":      AnchorBottom,
	"bottom-low":  AnchorBottomLow,
	"bottom-high": AnchorBottomHigh,
}

var backgrounds = map[string]Background{
	"drop-shadow": BackgroundShadow,
	"background":  BackgroundPanel,
	"none":        BackgroundNone,
}

// Resolve maps a possibly partial Config onto concrete visual parameters.
// Unknown or missing values always fall back to a named default; the
// function never fails.
func Resolve(cfg Config) Resolved {
	r := Resolved{
		FontSize:   defaultFontSize,
		Color:      defaultColor,
		Anchor:     AnchorBottom,
		Background: BackgroundShadow,
	}

	if size, ok := fontSizes[strings.ToLower(cfg.Size)]; ok {
		r.FontSize = size
	}
	if cfg.Color != "" {
		r.Color = cfg.Color
	}
	if anchor, ok := anchors[strings.ToLower(cfg.VerticalPosition)]; ok {
		r.Anchor = anchor
	}
	if bg, ok := backgrounds[strings.ToLower(cfg.BackgroundMode)]; ok {
		r.Background = bg
	}

	return r
}
