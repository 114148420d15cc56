package anaglyph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zsiec/deanaglyph/internal/media"
)

// ErrUnknownResolution is returned by Select for a token that matches none
// of the supported selectors.
var ErrUnknownResolution = errors.New("anaglyph: unknown resolution")

// Resolution is one of the fixed frame geometries the filter accepts.
type Resolution struct {
	Name   string
	Width  int
	Height int
}

// Supported resolutions, in the order Select tries them.
var (
	Res720p  = Resolution{Name: "720p", Width: 1280, Height: 720}
	Res1080p = Resolution{Name: "1080p", Width: 1920, Height: 1080}
	Res1536  = Resolution{Name: "1536", Width: 2048, Height: 1536}
)

// Resolutions returns the supported resolutions in selector order.
func Resolutions() []Resolution {
	return []Resolution{Res720p, Res1080p, Res1536}
}

// Select returns the resolution whose name is a prefix of token. Matching is
// case-sensitive and only the leading characters are compared, so "720p60"
// selects 720p.
func Select(token string) (Resolution, error) {
	for _, r := range Resolutions() {
		if strings.HasPrefix(token, r.Name) {
			return r, nil
		}
	}
	return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownResolution, token)
}

// InputSize is the byte length of one interleaved RGB frame.
func (r Resolution) InputSize() int {
	return r.Width * r.Height * media.RGBBytesPerPixel
}

// OutputSize is the byte length of one side-by-side greyscale frame.
func (r Resolution) OutputSize() int {
	return r.Width * 2 * r.Height * media.MonoBytesPerPixel
}

func (r Resolution) String() string {
	return fmt.Sprintf("%s (%dx%d)", r.Name, r.Width, r.Height)
}
