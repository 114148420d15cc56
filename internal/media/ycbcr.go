package media

// Full-range BT.601 conversion between RGB and YCbCr. Each channel is
// truncated toward zero before clamping to [0, 255].

// YCbCr converts f to a new YCbCr frame.
func (f *RGB) YCbCr() *YCbCr {
	out := &YCbCr{packed{Width: f.Width, Height: f.Height, Stride: f.Stride, Pix: make([]byte, len(f.Pix))}}
	for pos := 0; pos+2 < len(f.Pix); pos += RGBBytesPerPixel {
		r := float64(f.Pix[pos])
		g := float64(f.Pix[pos+1])
		b := float64(f.Pix[pos+2])

		y := float64(0.299*r) + float64(0.587*g) + float64(0.114*b)
		cb := 128.0 - float64(0.168736*r) - float64(0.331264*g) + float64(0.5*b)
		cr := 128.0 + float64(0.5*r) - float64(0.418688*g) - float64(0.081312*b)

		out.Pix[pos] = clampTrunc(y)
		out.Pix[pos+1] = clampTrunc(cb)
		out.Pix[pos+2] = clampTrunc(cr)
	}
	return out
}

// RGB converts f to a new RGB frame.
func (f *YCbCr) RGB() *RGB {
	out := &RGB{packed{Width: f.Width, Height: f.Height, Stride: f.Stride, Pix: make([]byte, len(f.Pix))}}
	for pos := 0; pos+2 < len(f.Pix); pos += RGBBytesPerPixel {
		y := float64(f.Pix[pos])
		cb := float64(f.Pix[pos+1]) - 128
		cr := float64(f.Pix[pos+2]) - 128

		r := y + float64(1.402*cr)
		g := y - float64(0.34414*cb) - float64(0.71414*cr)
		b := y + float64(1.772*cb)

		out.Pix[pos] = clampTrunc(r)
		out.Pix[pos+1] = clampTrunc(g)
		out.Pix[pos+2] = clampTrunc(b)
	}
	return out
}

func clampTrunc(v float64) byte {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return byte(v)
}
