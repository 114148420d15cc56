package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/zsiec/deanaglyph/internal/rawio"
)

// ErrArgCount is wrapped by a UsageError when the converter is not given
// exactly one argument.
var ErrArgCount = errors.New("pipeline: expected exactly one argument")

// Exit statuses. Allocation, read and write failures prefer the OS errno of
// their cause and fall back to these values when there is none.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitAllocation = 2
	ExitShortRead  = 3
	ExitShortWrite = 4
)

// UsageError reports a missing, extra, or unrecognized argument.
type UsageError struct {
	Args []string
	Err  error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("pipeline: usage [%s]: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// AllocationError reports a frame buffer that could not be acquired.
type AllocationError struct {
	Size int
	Err  error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("pipeline: allocate %d bytes: %v", e.Size, e.Err)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Converter.Run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}

	var (
		alloc    *AllocationError
		read     *rawio.ShortReadError
		write    *rawio.ShortWriteError
		fallback int
	)
	switch {
	case errors.As(err, &alloc):
		fallback = ExitAllocation
	case errors.As(err, &read):
		fallback = ExitShortRead
	case errors.As(err, &write):
		fallback = ExitShortWrite
	default:
		return ExitUsage
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return fallback
}
