package anaglyph

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zsiec/deanaglyph/internal/media"
)

// ErrFrameSize is returned by Transform when a buffer does not match the
// resolution.
var ErrFrameSize = errors.New("anaglyph: buffer size does not match resolution")

// Decoding coefficients. They are variables rather than constants so that
// the derived factors are rounded in float64 steps instead of being folded
// at arbitrary precision. They are never written after initialization.
var (
	// crossTalk models filter bleed-through between the eyes.
	crossTalk = -0.05
	// redCorrection scales the red channel of the red-filtered eye.
	redCorrection = 0.750

	lumaGreen = 0.587
	lumaBlue  = 0.114
	// lumaCorrection normalizes the green/blue luminance contribution.
	lumaCorrection = (lumaGreen + lumaBlue) * 0.642
)

// bandRows is the number of output rows decoded by one goroutine.
const bandRows = 64

// leftSample decodes the cyan-filtered eye: luminance from green and blue,
// less red crosstalk. The explicit float64 conversions keep each product
// rounded on its own so no fused multiply-add changes the result.
func leftSample(r, g, b float64) byte {
	luma := float64(lumaGreen*g) + float64(lumaBlue*b)
	return clamp(luma/lumaCorrection + float64(crossTalk*redCorrection*r))
}

// rightSample decodes the red-filtered eye: red, less green/blue crosstalk.
func rightSample(r, g, b float64) byte {
	luma := float64(lumaGreen*g) + float64(lumaBlue*b)
	return clamp(float64(crossTalk*luma)/lumaCorrection + float64(redCorrection*r))
}

// clamp limits v to [0, 255] and truncates toward zero.
func clamp(v float64) byte {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}

// Transform decodes the interleaved RGB frame in src into the side-by-side
// frame in dst. Row y of dst holds the left eye in its first res.Width bytes
// and the right eye in the next res.Width bytes. Both buffers must be
// exactly res.InputSize and res.OutputSize bytes; nothing is written
// otherwise.
func Transform(dst, src []byte, res Resolution) error {
	return transform(dst, src, res, runtime.GOMAXPROCS(0))
}

func transform(dst, src []byte, res Resolution, workers int) error {
	if len(src) != res.InputSize() {
		return fmt.Errorf("%w: input %d bytes, expected %d", ErrFrameSize, len(src), res.InputSize())
	}
	if len(dst) != res.OutputSize() {
		return fmt.Errorf("%w: output %d bytes, expected %d", ErrFrameSize, len(dst), res.OutputSize())
	}

	// Bands cover disjoint rows, so they write disjoint parts of dst.
	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for y0 := 0; y0 < res.Height; y0 += bandRows {
		y1 := min(y0+bandRows, res.Height)
		g.Go(func() error {
			decodeRows(dst, src, res.Width, y0, y1)
			return nil
		})
	}
	return g.Wait()
}

// decodeRows fills output rows [y0, y1) of a width-wide frame.
func decodeRows(dst, src []byte, width, y0, y1 int) {
	for y := y0; y < y1; y++ {
		in := src[y*width*3 : (y+1)*width*3]
		left := dst[y*width*2 : y*width*2+width]
		right := dst[y*width*2+width : (y+1)*width*2]
		for x := range width {
			r := float64(in[x*3])
			g := float64(in[x*3+1])
			b := float64(in[x*3+2])
			left[x] = leftSample(r, g, b)
			right[x] = rightSample(r, g, b)
		}
	}
}

// Left decodes the cyan-filtered eye of src.
func Left(src *media.RGB) *media.Mono {
	return decodePlane(src, leftSample)
}

// Right decodes the red-filtered eye of src.
func Right(src *media.RGB) *media.Mono {
	return decodePlane(src, rightSample)
}

func decodePlane(src *media.RGB, sample func(r, g, b float64) byte) *media.Mono {
	out := &media.Mono{
		Width:  src.Width,
		Height: src.Height,
		Stride: src.Width,
		Pix:    make([]byte, src.Width*src.Height),
	}
	for y := range src.Height {
		row := src.Pix[y*src.Stride:]
		for x := range src.Width {
			out.Pix[y*out.Stride+x] = sample(
				float64(row[x*3]), float64(row[x*3+1]), float64(row[x*3+2]))
		}
	}
	return out
}

// SideBySide decodes both eyes of src and places them next to each other in
// a frame twice as wide.
func SideBySide(src *media.RGB) (*media.Mono, error) {
	out, err := media.NewMono(src.Width*2, src.Height, nil)
	if err != nil {
		return nil, err
	}
	all := media.Rect{Width: src.Width, Height: src.Height}
	if err := out.Blit(0, 0, Left(src), all); err != nil {
		return nil, fmt.Errorf("blit left eye: %w", err)
	}
	if err := out.Blit(src.Width, 0, Right(src), all); err != nil {
		return nil, fmt.Errorf("blit right eye: %w", err)
	}
	return out, nil
}
