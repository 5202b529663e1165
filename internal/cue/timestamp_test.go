package cue

import (
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"00:00:01,000", 1 * time.Second},
		{"00:00:01.000", 1 * time.Second},
		{"00:00:02,500", 2500 * time.Millisecond},
		{"00:00:02.500", 2500 * time.Millisecond},
		{"01:02:03,456", time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond},
		{"10:00:00.000", 10 * time.Hour},
		{"02:03.456", 2*time.Minute + 3*time.Second + 456*time.Millisecond},
		{"  00:00:05,250  ", 5250 * time.Millisecond},
		{"00:00:01,5", 1500 * time.Millisecond},
		{"00:00:02,50", 2500 * time.Millisecond},
		{"00:00:02.50", 2500 * time.Millisecond},
		{"00:00:03.4", 3400 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseTimestamp(tt.input); got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestampSeparatorEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"00:00:01,000", "00:00:01.000"},
		{"00:12:34,567", "00:12:34.567"},
		{"11:22:33,444", "11:22:33.444"},
	}

	for _, pair := range pairs {
		comma := ParseTimestamp(pair[0])
		period := ParseTimestamp(pair[1])
		if comma != period {
			t.Errorf("separator mismatch: %q=%v %q=%v", pair[0], comma, pair[1], period)
		}
	}
}

func TestParseTimestampMalformed(t *testing.T) {
	inputs := []string{
		"",
		"garbage",
		"aa:bb:cc,ddd",
		"00:00,000",
		"1:2:3:4,000",
		"00:00:xx.000",
		"00:00:01,abc",
		"00:00:01.123456", // fraction longer than milliseconds
		"00:00:01,1a",
		"00:00:01,-50",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if got := ParseTimestamp(input); got != 0 {
				t.Errorf("ParseTimestamp(%q) = %v, want 0", input, got)
			}
		})
	}
}
