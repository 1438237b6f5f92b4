package compare

import (
	"fmt"
	"io"
	"strings"

	"github.com/roach88/tracecmp/internal/trace"
)

// reportLabels maps fields to their report line prefix.
var reportLabels = map[string]string{
	trace.FieldInstruction: "Instruction:",
	trace.FieldA:           "A:",
	trace.FieldX:           "X:",
	trace.FieldY:           "Y:",
	trace.FieldFlag:        "Flag:",
	trace.FieldCyc:         "CYC:",
}

// WriteReport writes the side-by-side report for d: every decoded field
// for both files, the line number and both raw lines.
func WriteReport(w io.Writer, d Divergence) error {
	var b strings.Builder

	fmt.Fprintf(&b, "File: %s | %s\n", File1Label, File2Label)
	for _, f := range trace.AllFields {
		va, _ := d.Reference.Field(f)
		vb, _ := d.Candidate.Field(f)
		fmt.Fprintln(&b, reportLabels[f], va, vb)
	}
	fmt.Fprintln(&b, "At line:", d.Line)
	fmt.Fprintln(&b, d.ReferenceLine)
	fmt.Fprintln(&b, d.CandidateLine)

	_, err := io.WriteString(w, b.String())
	return err
}
