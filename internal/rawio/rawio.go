// Package rawio moves fixed-size raw frames across byte streams. ReadFull
// and WriteFull keep issuing calls after partial transfers and fail only
// when the stream stops making progress before the whole frame has moved.
package rawio

import (
	"fmt"
	"io"
)

// Stats counts the bytes moved and the underlying Read or Write calls made
// for one frame transfer.
type Stats struct {
	Bytes int64
	Calls int64
}

func (s *Stats) record(n int) {
	s.Bytes += int64(n)
	s.Calls++
}

// ShortReadError reports an input stream that ended or failed before a full
// frame was received.
type ShortReadError struct {
	Got  int
	Want int
	Err  error
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("rawio: short read: got %d of %d bytes: %v", e.Got, e.Want, e.Err)
}

func (e *ShortReadError) Unwrap() error {
	return e.Err
}

// ShortWriteError reports an output stream that failed before a full frame
// was sent. Bytes already written are not retracted.
type ShortWriteError struct {
	Wrote int
	Want  int
	Err   error
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("rawio: short write: wrote %d of %d bytes: %v", e.Wrote, e.Want, e.Err)
}

func (e *ShortWriteError) Unwrap() error {
	return e.Err
}

// ReadFull fills buf from r. A read that returns no bytes, or an error,
// before buf is full yields a *ShortReadError; an error that arrives with
// the final bytes is ignored. Nothing past len(buf) is requested.
func ReadFull(r io.Reader, buf []byte) (Stats, error) {
	var st Stats
	got := 0
	for got < len(buf) {
		n, err := r.Read(buf[got:])
		st.record(n)
		got += n
		if got == len(buf) {
			break
		}
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return st, &ShortReadError{Got: got, Want: len(buf), Err: err}
		}
		if n == 0 {
			return st, &ShortReadError{Got: got, Want: len(buf), Err: io.ErrNoProgress}
		}
	}
	return st, nil
}

// WriteFull writes all of buf to w, continuing after partial writes. A write
// that moves no bytes, or returns an error, before buf is drained yields a
// *ShortWriteError.
func WriteFull(w io.Writer, buf []byte) (Stats, error) {
	var st Stats
	done := 0
	for done < len(buf) {
		n, err := w.Write(buf[done:])
		st.record(n)
		done += n
		if err != nil {
			return st, &ShortWriteError{Wrote: done, Want: len(buf), Err: err}
		}
		if n == 0 {
			return st, &ShortWriteError{Wrote: done, Want: len(buf), Err: io.ErrShortWrite}
		}
	}
	return st, nil
}
