package main

import (
	"testing"

	"github.com/zsiec/deanaglyph/internal/anaglyph"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	res := anaglyph.Res720p
	tests := []struct {
		pattern string
		x, y    int
		want    uint32
	}{
		{"uniform", 0, 0, 0x646464},
		{"uniform", 1279, 719, 0x646464},
		{"gradient", 0, 0, 0x000000},
		{"gradient", 1279, 0, 0xFF0000},
		{"gradient", 0, 719, 0x00FFFF},
		{"gradient", 1279, 719, 0xFFFFFF},
		{"bars", 0, 0, 0xC0C0C0},
		{"bars", 160, 10, 0xC0C000},
		{"bars", 1279, 719, 0x000000},
	}

	for _, tt := range tests {
		frame, err := generate(res, tt.pattern, 100)
		if err != nil {
			t.Fatalf("%s: %v", tt.pattern, err)
		}
		if len(frame.Pix) != res.InputSize() {
			t.Fatalf("%s: %d bytes, want %d", tt.pattern, len(frame.Pix), res.InputSize())
		}
		if got := frame.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("%s (%d,%d) = %#06x, want %#06x", tt.pattern, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGenerateUnknownPattern(t *testing.T) {
	t.Parallel()

	if _, err := generate(anaglyph.Res720p, "plaid", 0); err == nil {
		t.Error("expected error for unknown pattern")
	}
}
