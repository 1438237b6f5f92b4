package trace

import (
	"fmt"
	"strings"
)

// DefaultMarker introduces the cycle counter in both built-in dialects.
const DefaultMarker = "CYC:"

// Span locates one positional field. Start and End are character
// positions, End exclusive.
type Span struct {
	Field string `json:"field"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Dialect describes one trace line layout.
type Dialect struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Spans       []Span `json:"spans"`
	Marker      string `json:"marker"`
}

// MinLength returns the shortest line, in characters, the dialect can
// decode: the largest span end.
func (d Dialect) MinLength() int {
	n := 0
	for _, s := range d.Spans {
		if s.End > n {
			n = s.End
		}
	}
	return n
}

// Span returns the span of the named field.
func (d Dialect) Span(field string) (Span, bool) {
	for _, s := range d.Spans {
		if s.Field == field {
			return s, true
		}
	}
	return Span{}, false
}

// Validate checks the dialect table for consistency.
// CUE enforces the same rules for built-in dialects; Validate covers
// dialects constructed in Go.
func (d Dialect) Validate() error {
	if d.Name == "" {
		return &SchemaError{Message: "dialect name is required"}
	}
	if d.Marker == "" {
		return &SchemaError{Dialect: d.Name, Message: "marker is required"}
	}
	if len(d.Spans) == 0 {
		return &SchemaError{Dialect: d.Name, Message: "at least one span is required"}
	}

	seen := make(map[string]bool, len(d.Spans))
	for _, s := range d.Spans {
		if (&Record{}).slot(s.Field) == nil {
			return &SchemaError{Dialect: d.Name, Message: fmt.Sprintf("unknown positional field %q", s.Field)}
		}
		if seen[s.Field] {
			return &SchemaError{Dialect: d.Name, Message: fmt.Sprintf("field %q has more than one span", s.Field)}
		}
		seen[s.Field] = true
		if s.Start < 0 || s.End <= s.Start {
			return &SchemaError{Dialect: d.Name, Message: fmt.Sprintf("field %q has invalid span [%d,%d)", s.Field, s.Start, s.End)}
		}
	}
	return nil
}

// Render builds a line that decodes back to rec under this dialect.
// The positional part is exactly MinLength characters wide, blank outside
// the spans; rec.Cyc follows after a single space. Values longer than
// their span are truncated.
func (d Dialect) Render(rec Record) string {
	buf := []rune(strings.Repeat(" ", d.MinLength()))
	for _, s := range d.Spans {
		v, _ := rec.Field(s.Field)
		for i, r := range []rune(v) {
			if s.Start+i >= s.End {
				break
			}
			buf[s.Start+i] = r
		}
	}
	if rec.Cyc == "" {
		return string(buf)
	}
	return string(buf) + " " + rec.Cyc
}
