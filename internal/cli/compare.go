package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/tracecmp/internal/compare"
	"github.com/roach88/tracecmp/internal/trace"
)

func runCompare(opts *RootOptions, file1, file2 string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	for _, f := range opts.Fields {
		if !trace.IsField(f) {
			return fail(formatter, ExitCommandError, ErrCodeInvalidField,
				fmt.Sprintf("unknown field %q", f), nil)
		}
	}

	c, err := compare.New()
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeDialect, "failed to load dialects", err)
	}
	c.Fields = opts.Fields

	runID := opts.runIDs().Generate()
	c.Logger = newLogger(formatter.GetErrWriter(), opts.Verbose).With("run", runID)

	formatter.VerboseLog("run %s: comparing %s (%s) with %s (%s) on %v",
		runID, file1, c.Reference.Name, file2, c.Candidate.Name, c.Fields)

	d, stats, err := c.CompareFiles(file1, file2)
	if err != nil {
		return fail(formatter, ExitCommandError, errorCode(err), "comparison failed", err)
	}

	if d == nil {
		formatter.VerboseLog("run %s: no divergence in %d line(s)", runID, stats.Lines)
		return nil
	}

	if err := compare.WriteReport(formatter.Writer, *d); err != nil {
		return WrapExitError(ExitCommandError, "failed to write report", err)
	}
	return &ExitError{
		Code:     ExitFailure,
		Message:  fmt.Sprintf("traces diverge at line %d", d.Line),
		Reported: true,
	}
}

// fail writes a coded error and returns the matching ExitError.
func fail(f *OutputFormatter, exit int, code, message string, err error) error {
	text := message
	if err != nil {
		text = fmt.Sprintf("%s: %v", message, err)
	}
	f.Error(code, text, err)

	exitErr := WrapExitError(exit, message, err)
	exitErr.Reported = true
	return exitErr
}

// errorCode classifies a comparison failure.
func errorCode(err error) string {
	var rangeErr *trace.OutOfRangeError
	var markerErr *trace.MarkerNotFoundError

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrCodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrCodeAccess
	case errors.As(err, &rangeErr):
		return ErrCodeOutOfRange
	case errors.As(err, &markerErr):
		return ErrCodeMarkerNotFound
	}
	return ErrCodeGeneric
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (o *RootOptions) runIDs() RunIDGenerator {
	if o.RunIDs != nil {
		return o.RunIDs
	}
	return UUIDv7Generator{}
}
