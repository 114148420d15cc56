// Package pipeline converts one raw anaglyph frame into one side-by-side
// stereo frame. A Converter walks a fixed sequence of stages (parse the
// resolution argument, allocate buffers, read the input frame, decode it,
// write the output frame) and stops at the first failure without retrying.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/zsiec/deanaglyph/internal/anaglyph"
	"github.com/zsiec/deanaglyph/internal/media"
	"github.com/zsiec/deanaglyph/internal/rawio"
)

// Stage is the last step a Converter completed.
type Stage int

// Converter stages in the order they are reached.
const (
	StageStart Stage = iota
	StageArgumentsParsed
	StageBuffersAllocated
	StageInputRead
	StageTransformed
	StageOutputWritten
)

var stageNames = [...]string{
	StageStart:            "start",
	StageArgumentsParsed:  "arguments-parsed",
	StageBuffersAllocated: "buffers-allocated",
	StageInputRead:        "input-read",
	StageTransformed:      "transformed",
	StageOutputWritten:    "output-written",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Snapshot is a point-in-time view of a conversion, logged when Run returns
// and inspected by tests.
type Snapshot struct {
	Stage      Stage
	Failed     bool
	Resolution anaglyph.Resolution
	Read       rawio.Stats
	Written    rawio.Stats
	Elapsed    time.Duration
}

// Converter runs a single-frame conversion. It is not safe for concurrent
// use and is meant to be run once.
type Converter struct {
	log *slog.Logger

	res     anaglyph.Resolution
	stage   Stage
	failed  bool
	read    rawio.Stats
	written rawio.Stats
	elapsed time.Duration
}

// New creates a Converter that logs through log, or slog.Default when log
// is nil.
func New(log *slog.Logger) *Converter {
	if log == nil {
		log = slog.Default()
	}
	return &Converter{log: log.With("component", "converter")}
}

// Snapshot returns the converter's progress so far.
func (c *Converter) Snapshot() Snapshot {
	return Snapshot{
		Stage:      c.stage,
		Failed:     c.failed,
		Resolution: c.res,
		Read:       c.read,
		Written:    c.written,
		Elapsed:    c.elapsed,
	}
}

// Run parses args (the command-line arguments without the program name),
// reads exactly one input frame from r, and writes exactly one output frame
// to w. The returned error is a *UsageError, *AllocationError,
// *rawio.ShortReadError or *rawio.ShortWriteError; ExitCode maps it to a
// process status.
func (c *Converter) Run(args []string, r io.Reader, w io.Writer) error {
	start := time.Now()
	defer func() {
		c.elapsed = time.Since(start)
		c.log.Debug("conversion finished",
			"stage", c.stage,
			"failed", c.failed,
			"read_bytes", c.read.Bytes,
			"read_calls", c.read.Calls,
			"written_bytes", c.written.Bytes,
			"write_calls", c.written.Calls,
			"elapsed", c.elapsed,
		)
	}()

	res, err := ParseArgs(args)
	if err != nil {
		return c.fail(err)
	}
	c.res = res
	c.advance(StageArgumentsParsed, "resolution", res)

	in, out, err := AllocateBuffers(res)
	if err != nil {
		return c.fail(err)
	}
	c.advance(StageBuffersAllocated, "in_bytes", len(in), "out_bytes", len(out))

	c.read, err = rawio.ReadFull(r, in)
	if err != nil {
		return c.fail(err)
	}
	c.advance(StageInputRead, "calls", c.read.Calls)

	t0 := time.Now()
	if err := anaglyph.Transform(out, in, res); err != nil {
		return c.fail(fmt.Errorf("transform: %w", err))
	}
	c.advance(StageTransformed, "took", time.Since(t0))

	c.written, err = rawio.WriteFull(w, out)
	if err != nil {
		return c.fail(err)
	}
	c.advance(StageOutputWritten, "calls", c.written.Calls)
	return nil
}

func (c *Converter) advance(s Stage, attrs ...any) {
	c.stage = s
	c.log.Debug("stage complete", append([]any{"stage", s}, attrs...)...)
}

func (c *Converter) fail(err error) error {
	c.failed = true
	c.log.Debug("stage failed", "after", c.stage, "error", err)
	return err
}

// ParseArgs selects the resolution named by the single argument in args.
func ParseArgs(args []string) (anaglyph.Resolution, error) {
	if len(args) != 1 {
		return anaglyph.Resolution{}, &UsageError{Args: args, Err: ErrArgCount}
	}
	res, err := anaglyph.Select(args[0])
	if err != nil {
		return anaglyph.Resolution{}, &UsageError{Args: args, Err: err}
	}
	return res, nil
}

// AllocateBuffers acquires the input and output frame buffers for res.
func AllocateBuffers(res anaglyph.Resolution) (in, out []byte, err error) {
	inSize, err := media.FrameSize(res.Width, res.Height, media.RGBBytesPerPixel)
	if err != nil {
		return nil, nil, &AllocationError{Size: inSize, Err: err}
	}
	outSize, err := media.FrameSize(res.Width*2, res.Height, media.MonoBytesPerPixel)
	if err != nil {
		return nil, nil, &AllocationError{Size: outSize, Err: err}
	}

	if in, err = allocate(inSize); err != nil {
		return nil, nil, &AllocationError{Size: inSize, Err: err}
	}
	if out, err = allocate(outSize); err != nil {
		return nil, nil, &AllocationError{Size: outSize, Err: err}
	}
	return in, out, nil
}

// allocate turns the runtime's refusal of an oversized slice into an error.
func allocate(n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return make([]byte, n), nil
}
