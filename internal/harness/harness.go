package harness

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/roach88/tracecmp/internal/compare"
	"github.com/roach88/tracecmp/internal/trace"
)

// Harness runs scenarios against a comparator built from the built-in
// dialects.
type Harness struct {
	logger *slog.Logger
}

// New creates a harness. A nil logger discards output.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Run executes a scenario with a default harness.
func Run(s *Scenario) (*Result, error) {
	return New(nil).Run(s)
}

// Run renders both traces, compares them and checks the expectation.
// The returned error is reserved for harness setup failures; comparison
// failures are recorded in Result.Err.
func (h *Harness) Run(s *Scenario) (*Result, error) {
	c, err := compare.New()
	if err != nil {
		return nil, err
	}
	c.Fields = s.Fields
	c.Logger = h.logger.With("scenario", s.Name)

	ref := renderTrace(c.Reference, s.Reference)
	cand := renderTrace(c.Candidate, s.Candidate)

	result := NewResult()
	d, stats, err := c.First(strings.NewReader(ref), strings.NewReader(cand))
	result.Divergence = d
	result.Lines = stats.Lines
	result.Err = err

	if d != nil {
		var buf bytes.Buffer
		if err := compare.WriteReport(&buf, *d); err != nil {
			return nil, err
		}
		result.Report = buf.String()
	}

	checkExpectation(result, s.Expect)
	return result, nil
}

// renderTrace renders rows into newline-terminated trace text.
func renderTrace(d trace.Dialect, rows []Row) string {
	var b strings.Builder
	for _, row := range rows {
		if row.isRaw() {
			b.WriteString(row.Raw)
		} else {
			b.WriteString(d.Render(row.Record()))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func checkExpectation(r *Result, e Expectation) {
	if e.Error != "" {
		if got := errorCode(r.Err); got != e.Error {
			r.AddError("expected error %s, got %s (%v)", e.Error, orNone(got), r.Err)
		}
		return
	}
	if r.Err != nil {
		r.AddError("unexpected error: %v", r.Err)
		return
	}

	if e.Lines != 0 && r.Lines != e.Lines {
		r.AddError("expected %d line(s) compared, got %d", e.Lines, r.Lines)
	}

	d := r.Divergence
	switch {
	case !e.Diverges && d != nil:
		r.AddError("expected no divergence, got line %d (%v)", d.Line, d.Fields)
	case e.Diverges && d == nil:
		r.AddError("expected a divergence, got none")
	case e.Diverges:
		if e.Line != 0 && d.Line != e.Line {
			r.AddError("expected divergence at line %d, got %d", e.Line, d.Line)
		}
		if len(e.Fields) > 0 && !slices.Equal(d.Fields, e.Fields) {
			r.AddError("expected differing fields %v, got %v", e.Fields, d.Fields)
		}
	}
}

// errorCode returns the trace error code wrapped in err.
func errorCode(err error) string {
	var rangeErr *trace.OutOfRangeError
	var markerErr *trace.MarkerNotFoundError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rangeErr):
		return string(trace.ErrCodeOutOfRange)
	case errors.As(err, &markerErr):
		return string(trace.ErrCodeMarkerNotFound)
	}
	return "UNKNOWN"
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
