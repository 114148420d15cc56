package rawio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func TestReadFullPartialReads(t *testing.T) {
	t.Parallel()

	data := []byte("0123456789abcdef")
	tests := []struct {
		name      string
		r         io.Reader
		wantCalls int64
	}{
		{"single read", bytes.NewReader(data), 1},
		{"one byte at a time", iotest.OneByteReader(bytes.NewReader(data)), 16},
		{"half reads", iotest.HalfReader(bytes.NewReader(data)), 5},
		{"eof with data", iotest.DataErrReader(bytes.NewReader(data)), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := make([]byte, len(data))
			st, err := ReadFull(tt.r, buf)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf, data) {
				t.Errorf("buf = %q, want %q", buf, data)
			}
			if diff := cmp.Diff(Stats{Bytes: 16, Calls: tt.wantCalls}, st); diff != "" {
				t.Errorf("stats (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadFullDoesNotOverread(t *testing.T) {
	t.Parallel()

	r := strings.NewReader("abcdefgh")
	buf := make([]byte, 5)
	if _, err := ReadFull(r, buf); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 3 {
		t.Errorf("%d bytes left unread, want 3", r.Len())
	}
}

func TestReadFullShort(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name    string
		r       io.Reader
		wantGot int
		wantErr error
	}{
		{"empty input", strings.NewReader(""), 0, io.ErrUnexpectedEOF},
		{"truncated input", iotest.OneByteReader(strings.NewReader("abc")), 3, io.ErrUnexpectedEOF},
		{"read error", iotest.ErrReader(boom), 0, boom},
		{"error mid frame", io.MultiReader(strings.NewReader("ab"), iotest.ErrReader(boom)), 2, boom},
		{"no progress", zeroReader{}, 0, io.ErrNoProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadFull(tt.r, make([]byte, 8))
			var short *ShortReadError
			if !errors.As(err, &short) {
				t.Fatalf("got %v, want *ShortReadError", err)
			}
			if short.Got != tt.wantGot || short.Want != 8 {
				t.Errorf("got %d of %d, want %d of 8", short.Got, short.Want, tt.wantGot)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("cause = %v, want %v", short.Err, tt.wantErr)
			}
		})
	}
}

func TestReadFullEmptyBuffer(t *testing.T) {
	t.Parallel()

	st, err := ReadFull(iotest.ErrReader(errors.New("never called")), nil)
	if err != nil || st.Calls != 0 {
		t.Errorf("ReadFull(nil) = %+v, %v; want no calls and no error", st, err)
	}
}

func TestWriteFullPartialWrites(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	w := &chunkWriter{w: &out, max: 3}
	data := []byte("0123456789")

	st, err := WriteFull(w, data)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "0123456789" {
		t.Errorf("wrote %q", out.String())
	}
	if diff := cmp.Diff(Stats{Bytes: 10, Calls: 4}, st); diff != "" {
		t.Errorf("stats (-want +got):\n%s", diff)
	}
}

func TestWriteFullShort(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name      string
		w         io.Writer
		wantWrote int
		wantErr   error
	}{
		{"error after partial", &chunkWriter{w: io.Discard, max: 3, failAfter: 6, err: boom}, 6, boom},
		{"immediate error", &chunkWriter{w: io.Discard, max: 3, failAfter: 0, err: boom}, 0, boom},
		{"no progress", &chunkWriter{w: io.Discard, max: 0}, 0, io.ErrShortWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := WriteFull(tt.w, make([]byte, 10))
			var short *ShortWriteError
			if !errors.As(err, &short) {
				t.Fatalf("got %v, want *ShortWriteError", err)
			}
			if short.Wrote != tt.wantWrote || short.Want != 10 {
				t.Errorf("wrote %d of %d, want %d of 10", short.Wrote, short.Want, tt.wantWrote)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("cause = %v, want %v", short.Err, tt.wantErr)
			}
		})
	}
}

// zeroReader returns 0, nil forever.
type zeroReader struct{}

func (zeroReader) Read([]byte) (int, error) { return 0, nil }

// chunkWriter accepts at most max bytes per call. With err set it fails
// once failAfter bytes have been accepted.
type chunkWriter struct {
	w         io.Writer
	max       int
	failAfter int
	err       error
	written   int
}

func (c *chunkWriter) Write(p []byte) (int, error) {
	if c.err != nil && c.written >= c.failAfter {
		return 0, c.err
	}
	n := min(len(p), c.max)
	n, err := c.w.Write(p[:n])
	c.written += n
	return n, err
}
