// Command de-anaglyph reads one raw RGB anaglyph frame from stdin and writes
// the decoded side-by-side greyscale stereo frame to stdout:
//
//	img-src | de-anaglyph <720p|1080p|1536> | img-sink
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/zsiec/deanaglyph/internal/pipeline"
	"github.com/zsiec/deanaglyph/internal/rawio"
)

const usage = "USAGE: img-src | de-anaglyph <720p|1080p|1536> | img-sink\n"

func main() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr, log))
}

// run converts one frame and returns the process exit status. argv includes
// the program name.
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer, log *slog.Logger) int {
	prog := "de-anaglyph"
	var args []string
	if len(argv) > 0 {
		prog, args = argv[0], argv[1:]
	}

	err := pipeline.New(log).Run(args, stdin, stdout)
	if err != nil {
		report(stderr, prog, err)
	}
	return pipeline.ExitCode(err)
}

// report writes the one-line diagnostic for err.
func report(w io.Writer, prog string, err error) {
	var (
		usageErr *pipeline.UsageError
		alloc    *pipeline.AllocationError
		read     *rawio.ShortReadError
		write    *rawio.ShortWriteError
	)
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprint(w, usage)
	case errors.As(err, &alloc):
		fmt.Fprintf(w, "%s: Failed to allocate memory.\n", prog)
	case errors.As(err, &read):
		fmt.Fprintf(w, "%s: Error reading input data.\n", prog)
	case errors.As(err, &write):
		fmt.Fprintf(w, "%s: Error writing output data.\n", prog)
	default:
		fmt.Fprintf(w, "%s: %v\n", prog, err)
	}
}
