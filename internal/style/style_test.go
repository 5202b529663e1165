package style

import (
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	r := Resolve(Config{})

	if r.FontSize != 32 {
		t.Errorf("expected default font size 32, got %d", r.FontSize)
	}
	if r.Color != "#FFFFFF" {
		t.Errorf("expected default color #FFFFFF, got %s", r.Color)
	}
	if r.Anchor != AnchorBottom {
		t.Errorf("expected default anchor bottom, got %v", r.Anchor)
	}
	if r.Background != BackgroundShadow {
		t.Errorf("expected default background drop-shadow, got %v", r.Background)
	}
}

func TestResolveSizes(t *testing.T) {
	tests := []struct {
		size string
		want int
	}{
		{"small", 24},
		{"medium", 32},
		{"large", 42},
		{"extralarge", 56},
		{"EXTRALARGE", 56},
		{"enormous", 32}, // unknown falls back to medium
		{"", 32},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			r := Resolve(Config{Size: tt.size})
			if r.FontSize != tt.want {
				t.Errorf("size %q: got %d, want %d", tt.size, r.FontSize, tt.want)
			}
		})
	}
}

func TestResolveAnchorsAndBackgrounds(t *testing.T) {
	tests := []struct {
		cfg  Config
		want Resolved
	}{
		{
			Config{VerticalPosition: "top", BackgroundMode: "background"},
			Resolved{FontSize: 32, Color: "#FFFFFF", Anchor: AnchorTop, Background: BackgroundPanel},
		},
		{
			Config{VerticalPosition: "bottom-high", BackgroundMode: "none"},
			Resolved{FontSize: 32, Color: "#FFFFFF", Anchor: AnchorBottomHigh, Background: BackgroundNone},
		},
		{
			Config{VerticalPosition: "upside-down", BackgroundMode: "sparkles"},
			Resolved{FontSize: 32, Color: "#FFFFFF", Anchor: AnchorBottom, Background: BackgroundShadow},
		},
	}

	for _, tt := range tests {
		if got := Resolve(tt.cfg); got != tt.want {
			t.Errorf("Resolve(%+v) = %+v, want %+v", tt.cfg, got, tt.want)
		}
	}
}

func TestResolveColorPassthrough(t *testing.T) {
	r := Resolve(Config{Color: "#FFCC00"})
	if r.Color != "#FFCC00" {
		t.Errorf("expected color passthrough, got %s", r.Color)
	}
}

func TestResolveIsPure(t *testing.T) {
	cfg := Config{Size: "large", Color: "#00FF00"}
	first := Resolve(cfg)
	second := Resolve(cfg)
	if first != second {
		t.Errorf("Resolve not deterministic: %+v vs %+v", first, second)
	}
}

func TestMerge(t *testing.T) {
	base := Config{Size: "large", Color: "#FFCC00", VerticalPosition: "top", BackgroundMode: "none"}

	merged := base.Merge(Config{Color: "#00FF00"})
	want := Config{Size: "large", Color: "#00FF00", VerticalPosition: "top", BackgroundMode: "none"}
	if merged != want {
		t.Errorf("partial merge: got %+v, want %+v", merged, want)
	}

	if got := base.Merge(Config{}); got != base {
		t.Errorf("empty merge changed config: %+v", got)
	}
}

func TestAnchorOffsets(t *testing.T) {
	// top above middle above the bottom trio, bottom-low lowest
	if !(AnchorTop.OffsetFraction() < AnchorMiddle.OffsetFraction() &&
		AnchorMiddle.OffsetFraction() < AnchorBottomHigh.OffsetFraction() &&
		AnchorBottomHigh.OffsetFraction() < AnchorBottom.OffsetFraction() &&
		AnchorBottom.OffsetFraction() < AnchorBottomLow.OffsetFraction()) {
		t.Error("anchor offsets are not ordered top to bottom")
	}
}
