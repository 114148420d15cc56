package media

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestYCbCrConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rgb       []byte
		ycbcr     []byte
		roundTrip []byte
	}{
		{"black", []byte{0, 0, 0}, []byte{0, 128, 128}, []byte{0, 0, 0}},
		{"red clamps cr", []byte{255, 0, 0}, []byte{76, 84, 255}, []byte{254, 0, 0}},
		{"mixed", []byte{10, 200, 30}, []byte{123, 75, 46}, []byte{8, 199, 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := NewRGB(1, 1, append([]byte(nil), tt.rgb...))
			if err != nil {
				t.Fatal(err)
			}
			yc := f.YCbCr()
			if diff := cmp.Diff(tt.ycbcr, yc.Pix); diff != "" {
				t.Errorf("YCbCr (-want +got):\n%s", diff)
			}
			back := yc.RGB()
			if diff := cmp.Diff(tt.roundTrip, back.Pix); diff != "" {
				t.Errorf("RGB (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYCbCrKeepsGeometry(t *testing.T) {
	t.Parallel()

	f, _ := NewRGB(3, 2, nil)
	yc := f.YCbCr()
	if yc.Width != 3 || yc.Height != 2 || yc.Stride != 9 || len(yc.Pix) != 18 {
		t.Errorf("got %dx%d stride %d len %d, want 3x2 stride 9 len 18",
			yc.Width, yc.Height, yc.Stride, len(yc.Pix))
	}
}
