package compare

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/roach88/tracecmp/internal/trace"
)

// DefaultFields are compared when Comparator.Fields is empty.
var DefaultFields = []string{trace.FieldInstruction}

// Divergence is one mismatching line pair.
type Divergence struct {
	Line          int // 1-based
	Reference     trace.Record
	Candidate     trace.Record
	ReferenceLine string // raw, terminator stripped
	CandidateLine string
	Fields        []string // compared fields that differ
}

// Stats summarizes one walk.
type Stats struct {
	// Lines is the number of line pairs decoded successfully.
	Lines int
}

// Comparator compares a reference trace against a candidate trace.
type Comparator struct {
	Reference trace.Dialect
	Candidate trace.Dialect

	// Fields selects the fields that decide divergence. Other fields are
	// decoded and reported but never compared.
	Fields []string

	Logger *slog.Logger
}

// New returns a comparator using the built-in dialects and DefaultFields.
func New() (*Comparator, error) {
	ref, err := trace.Reference()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference dialect: %w", err)
	}
	cand, err := trace.Candidate()
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate dialect: %w", err)
	}
	return &Comparator{Reference: ref, Candidate: cand}, nil
}

// Divergences returns the mismatching line pairs of ref and cand in line
// order. A failure is yielded once, with a zero Divergence, and ends the
// sequence. Each call walks the readers from their current position, so a
// sequence over fresh readers can be ranged over once.
func (c *Comparator) Divergences(ref, cand io.Reader) iter.Seq2[Divergence, error] {
	return func(yield func(Divergence, error) bool) {
		stopped := false
		_, err := c.walk(ref, cand, func(d Divergence) bool {
			if !yield(d, nil) {
				stopped = true
				return false
			}
			return true
		})
		if err != nil && !stopped {
			yield(Divergence{}, err)
		}
	}
}

// First returns the first divergence, or nil if the shorter input ends
// without one.
func (c *Comparator) First(ref, cand io.Reader) (*Divergence, Stats, error) {
	var first *Divergence
	stats, err := c.walk(ref, cand, func(d Divergence) bool {
		first = &d
		return false
	})
	if err != nil {
		return nil, stats, err
	}
	return first, stats, nil
}

// CompareFiles opens path1 (reference) and path2 (candidate) and returns
// their first divergence.
func (c *Comparator) CompareFiles(path1, path2 string) (*Divergence, Stats, error) {
	f1, err := os.Open(path1)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open %s: %w", File1Label, err)
	}
	defer f1.Close()

	f2, err := os.Open(path2)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open %s: %w", File2Label, err)
	}
	defer f2.Close()

	c.logger().Debug("comparing traces", "file1", path1, "file2", path2)
	return c.First(f1, f2)
}

// walk decodes line pairs until either input is exhausted, an error
// occurs, or emit returns false.
func (c *Comparator) walk(ref, cand io.Reader, emit func(Divergence) bool) (Stats, error) {
	var stats Stats

	fields, err := c.fields()
	if err != nil {
		return stats, err
	}
	log := c.logger()

	r1 := newLineReader(ref)
	r2 := newLineReader(cand)

	for line := 1; ; line++ {
		l1, ok, err := r1.next()
		if err != nil {
			return stats, &LineError{File: File1Label, Line: line, Err: err}
		}
		if !ok {
			break
		}
		l2, ok, err := r2.next()
		if err != nil {
			return stats, &LineError{File: File2Label, Line: line, Err: err}
		}
		if !ok {
			break
		}

		a, err := trace.Parse(l1, c.Reference)
		if err != nil {
			return stats, &LineError{File: File1Label, Line: line, Err: err}
		}
		b, err := trace.Parse(l2, c.Candidate)
		if err != nil {
			return stats, &LineError{File: File2Label, Line: line, Err: err}
		}
		stats.Lines++

		differ := diffFields(a, b, fields)
		if len(differ) == 0 {
			continue
		}

		log.Debug("divergence",
			"line", line,
			"fields", differ,
			"file1_instruction", a.Instruction,
			"file2_instruction", b.Instruction)

		d := Divergence{
			Line:          line,
			Reference:     a,
			Candidate:     b,
			ReferenceLine: l1,
			CandidateLine: l2,
			Fields:        differ,
		}
		if !emit(d) {
			break
		}
	}

	log.Info("comparison finished", "lines", stats.Lines)
	return stats, nil
}

func (c *Comparator) fields() ([]string, error) {
	if len(c.Fields) == 0 {
		return DefaultFields, nil
	}
	for _, f := range c.Fields {
		if !trace.IsField(f) {
			return nil, fmt.Errorf("unknown field %q (valid: %v)", f, trace.AllFields)
		}
	}
	return c.Fields, nil
}

func (c *Comparator) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// diffFields returns the fields of fields whose values differ between a and b.
func diffFields(a, b trace.Record, fields []string) []string {
	var differ []string
	for _, f := range fields {
		va, _ := a.Field(f)
		vb, _ := b.Field(f)
		if va != vb {
			differ = append(differ, f)
		}
	}
	return differ
}
