// Package media defines the raw, headerless frame types that flow through
// the de-anaglyph filter: interleaved 8-bit RGB, interleaved YCbCr, and
// single-channel greyscale. Frames own a contiguous row-major byte buffer
// with no padding between rows.
package media

import (
	"errors"
	"fmt"
)

// Bytes per pixel for each frame layout.
const (
	MonoBytesPerPixel = 1
	RGBBytesPerPixel  = 3
)

// Sentinel errors for frame construction and pixel addressing.
var (
	ErrFrameSize    = errors.New("media: wrong size for frame data")
	ErrBadRectangle = errors.New("media: bad intersection rectangle")
	ErrBadPlane     = errors.New("media: bad plane index")
)

// Rect is a width×height rectangle anchored at (X, Y).
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) fits(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Width >= 0 && r.Height >= 0 &&
		r.X+r.Width <= width && r.Y+r.Height <= height
}

// checkBlit rejects a copy of from (inside a srcW×srcH frame) to (dstX, dstY)
// unless both rectangles lie entirely within their frames.
func checkBlit(from Rect, srcW, srcH, dstX, dstY, dstW, dstH int) error {
	to := Rect{X: dstX, Y: dstY, Width: from.Width, Height: from.Height}
	if !from.fits(srcW, srcH) || !to.fits(dstW, dstH) {
		return fmt.Errorf("%w: %dx%d from (%d,%d) to (%d,%d)",
			ErrBadRectangle, from.Width, from.Height, from.X, from.Y, dstX, dstY)
	}
	return nil
}

// Mono is a single-channel 8-bit frame.
type Mono struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// NewMono returns a width×height greyscale frame. A nil data slice allocates
// a zeroed buffer; otherwise data is used in place and must be exactly
// width*height bytes.
func NewMono(width, height int, data []byte) (*Mono, error) {
	pix, err := frameBuffer(width, height, MonoBytesPerPixel, data)
	if err != nil {
		return nil, err
	}
	return &Mono{Width: width, Height: height, Stride: width, Pix: pix}, nil
}

// Get returns the sample at (x, y).
func (m *Mono) Get(x, y int) byte {
	return m.Pix[y*m.Stride+x]
}

// Set stores the low byte of c at (x, y).
func (m *Mono) Set(x, y int, c uint32) {
	m.Pix[y*m.Stride+x] = byte(c)
}

// Blit copies the from rectangle of src into m at (dstX, dstY).
func (m *Mono) Blit(dstX, dstY int, src *Mono, from Rect) error {
	if err := checkBlit(from, src.Width, src.Height, dstX, dstY, m.Width, m.Height); err != nil {
		return err
	}

	dst := dstY*m.Stride + dstX
	off := from.Y*src.Stride + from.X
	for range from.Height {
		copy(m.Pix[dst:dst+from.Width], src.Pix[off:off+from.Width])
		dst += m.Stride
		off += src.Stride
	}
	return nil
}

// packed is the shared layout of RGB and YCbCr: three interleaved 8-bit
// channels per pixel.
type packed struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

func newPacked(width, height int, data []byte) (packed, error) {
	pix, err := frameBuffer(width, height, RGBBytesPerPixel, data)
	if err != nil {
		return packed{}, err
	}
	return packed{Width: width, Height: height, Stride: width * RGBBytesPerPixel, Pix: pix}, nil
}

// Get returns the pixel at (x, y) packed as 0xAABBCC, channel 0 in the
// high byte.
func (p *packed) Get(x, y int) uint32 {
	pos := y*p.Stride + x*RGBBytesPerPixel
	return uint32(p.Pix[pos])<<16 | uint32(p.Pix[pos+1])<<8 | uint32(p.Pix[pos+2])
}

// Set stores c, packed as 0xAABBCC, at (x, y).
func (p *packed) Set(x, y int, c uint32) {
	pos := y*p.Stride + x*RGBBytesPerPixel
	p.Pix[pos] = byte(c >> 16)
	p.Pix[pos+1] = byte(c >> 8)
	p.Pix[pos+2] = byte(c)
}

// Plane extracts channel n (0, 1 or 2) as a greyscale frame.
func (p *packed) Plane(n int) (*Mono, error) {
	if n < 0 || n >= RGBBytesPerPixel {
		return nil, fmt.Errorf("%w: %d", ErrBadPlane, n)
	}
	m, err := NewMono(p.Width, p.Height, nil)
	if err != nil {
		return nil, err
	}
	for i := range m.Pix {
		m.Pix[i] = p.Pix[i*RGBBytesPerPixel+n]
	}
	return m, nil
}

// BlitToPlane copies a greyscale rectangle into channel n of p.
func (p *packed) BlitToPlane(n, dstX, dstY int, src *Mono, from Rect) error {
	if n < 0 || n >= RGBBytesPerPixel {
		return fmt.Errorf("%w: %d", ErrBadPlane, n)
	}
	if err := checkBlit(from, src.Width, src.Height, dstX, dstY, p.Width, p.Height); err != nil {
		return err
	}

	dst := dstY*p.Stride + dstX*RGBBytesPerPixel + n
	off := from.Y*src.Stride + from.X
	for range from.Height {
		for i := range from.Width {
			p.Pix[dst+i*RGBBytesPerPixel] = src.Pix[off+i]
		}
		dst += p.Stride
		off += src.Stride
	}
	return nil
}

func (p *packed) blit(dstX, dstY int, src *packed, from Rect) error {
	if err := checkBlit(from, src.Width, src.Height, dstX, dstY, p.Width, p.Height); err != nil {
		return err
	}

	n := from.Width * RGBBytesPerPixel
	dst := dstY*p.Stride + dstX*RGBBytesPerPixel
	off := from.Y*src.Stride + from.X*RGBBytesPerPixel
	for range from.Height {
		copy(p.Pix[dst:dst+n], src.Pix[off:off+n])
		dst += p.Stride
		off += src.Stride
	}
	return nil
}

// RGB is an interleaved 8-bit R, G, B frame.
type RGB struct {
	packed
}

// NewRGB returns a width×height RGB frame. A nil data slice allocates a
// zeroed buffer; otherwise data must be exactly width*height*3 bytes.
func NewRGB(width, height int, data []byte) (*RGB, error) {
	p, err := newPacked(width, height, data)
	if err != nil {
		return nil, err
	}
	return &RGB{p}, nil
}

// Blit copies the src rectangle into f at (dstX, dstY).
func (f *RGB) Blit(dstX, dstY int, src *RGB, from Rect) error {
	return f.blit(dstX, dstY, &src.packed, from)
}

// YCbCr is an interleaved 8-bit Y, Cb, Cr frame.
type YCbCr struct {
	packed
}

// NewYCbCr returns a width×height YCbCr frame. A nil data slice allocates a
// zeroed buffer; otherwise data must be exactly width*height*3 bytes.
func NewYCbCr(width, height int, data []byte) (*YCbCr, error) {
	p, err := newPacked(width, height, data)
	if err != nil {
		return nil, err
	}
	return &YCbCr{p}, nil
}

// Blit copies the src rectangle into f at (dstX, dstY).
func (f *YCbCr) Blit(dstX, dstY int, src *YCbCr, from Rect) error {
	return f.blit(dstX, dstY, &src.packed, from)
}

// FrameSize returns width*height*bpp, or an error if the dimensions are not
// positive or the product overflows an int.
func FrameSize(width, height, bpp int) (int, error) {
	if width <= 0 || height <= 0 || bpp <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrFrameSize, width, height)
	}
	const maxInt = int(^uint(0) >> 1)
	if width > maxInt/height || width*height > maxInt/bpp {
		return 0, fmt.Errorf("%w: %dx%dx%d overflows", ErrFrameSize, width, height, bpp)
	}
	return width * height * bpp, nil
}

func frameBuffer(width, height, bpp int, data []byte) ([]byte, error) {
	size, err := FrameSize(width, height, bpp)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return make([]byte, size), nil
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: data length %d, expected %d", ErrFrameSize, len(data), size)
	}
	return data, nil
}
