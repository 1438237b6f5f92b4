package harness

import (
	"fmt"

	"github.com/roach88/tracecmp/internal/compare"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates the outcome matched the expectation.
	Pass bool

	// Errors contains expectation mismatches. Empty if Pass is true.
	Errors []string

	// Divergence is the first divergence found, or nil.
	Divergence *compare.Divergence

	// Lines is the number of line pairs compared.
	Lines int

	// Report is the text report for Divergence, empty without one.
	Report string

	// Err is the comparison failure, if any.
	Err error
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{Pass: true, Errors: []string{}}
}

// AddError adds an expectation mismatch and marks the result as failed.
func (r *Result) AddError(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}
