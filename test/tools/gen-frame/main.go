// Command gen-frame writes one synthetic raw RGB frame to stdout, for
// feeding de-anaglyph without a capture source:
//
//	gen-frame -pattern bars 720p | de-anaglyph 720p > stereo.gray
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zsiec/deanaglyph/internal/anaglyph"
	"github.com/zsiec/deanaglyph/internal/media"
	"github.com/zsiec/deanaglyph/internal/rawio"
)

// SMPTE-style colour bars, left to right.
var bars = []uint32{
	0xC0C0C0, // grey
	0xC0C000, // yellow
	0x00C0C0, // cyan
	0x00C000, // green
	0xC000C0, // magenta
	0xC00000, // red
	0x0000C0, // blue
	0x000000, // black
}

func main() {
	patternFlag := flag.String("pattern", "uniform", "Frame pattern: uniform, gradient, or bars")
	valueFlag := flag.Uint("value", 200, "Channel value for the uniform pattern (0-255)")
	flag.Parse()

	if flag.NArg() != 1 || *valueFlag > 255 {
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  gen-frame [-pattern uniform|gradient|bars] [-value N] <720p|1080p|1536>\n")
		os.Exit(1)
	}

	res, err := anaglyph.Select(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen-frame: %v\n", err)
		os.Exit(1)
	}

	frame, err := generate(res, *patternFlag, byte(*valueFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen-frame: %v\n", err)
		os.Exit(1)
	}

	if _, err := rawio.WriteFull(os.Stdout, frame.Pix); err != nil {
		fmt.Fprintf(os.Stderr, "gen-frame: %v\n", err)
		os.Exit(1)
	}
}

// generate renders pattern at res. The gradient ramps red left to right and
// green/blue top to bottom, so each eye of the decoded frame shows one ramp.
func generate(res anaglyph.Resolution, pattern string, value byte) (*media.RGB, error) {
	frame, err := media.NewRGB(res.Width, res.Height, nil)
	if err != nil {
		return nil, err
	}

	switch pattern {
	case "uniform":
		for i := range frame.Pix {
			frame.Pix[i] = value
		}
	case "gradient":
		for y := range res.Height {
			cyan := uint32(y * 255 / max(res.Height-1, 1))
			for x := range res.Width {
				red := uint32(x * 255 / max(res.Width-1, 1))
				frame.Set(x, y, red<<16|cyan<<8|cyan)
			}
		}
	case "bars":
		barWidth := (res.Width + len(bars) - 1) / len(bars)
		for y := range res.Height {
			for x := range res.Width {
				frame.Set(x, y, bars[x/barWidth])
			}
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}
	return frame, nil
}
