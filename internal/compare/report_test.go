package compare

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tracecmp/internal/trace"
)

func TestWriteReport(t *testing.T) {
	d := Divergence{
		Line:          42,
		Reference:     trace.Record{Instruction: "LDA", A: "01", X: "02", Y: "03", Flag: "24", Cyc: "CYC:7"},
		Candidate:     trace.Record{Instruction: "STA", A: "0A", X: "0B", Y: "0C", Flag: "A4", Cyc: "CYC:9"},
		ReferenceLine: "ref raw line",
		CandidateLine: "cand raw line",
		Fields:        []string{trace.FieldInstruction},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, d))

	want := strings.Join([]string{
		"File: File 1 | File 2",
		"Instruction: LDA STA",
		"A: 01 0A",
		"X: 02 0B",
		"Y: 03 0C",
		"Flag: 24 A4",
		"CYC: CYC:7 CYC:9",
		"At line: 42",
		"ref raw line",
		"cand raw line",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteReport_EndToEnd(t *testing.T) {
	c := newComparator(t)

	line1 := []rune(strings.Repeat(".", 70))
	copy(line1[5:], []rune("LDA"))
	copy(line1[64:], []rune("CYC:7"))

	line2 := []rune(strings.Repeat(".", 75))
	copy(line2[16:], []rune("STA"))
	copy(line2[69:], []rune("CYC:7"))

	d, _, err := c.First(strings.NewReader(string(line1)+"\n"), strings.NewReader(string(line2)+"\n"))
	require.NoError(t, err)
	require.NotNil(t, d)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, *d))
	out := buf.String()

	assert.Contains(t, out, "Instruction: LDA STA")
	assert.Contains(t, out, "At line: 1\n")
	assert.Contains(t, out, string(line1)+"\n")
	assert.Contains(t, out, string(line2)+"\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteReport_WriteError(t *testing.T) {
	err := WriteReport(failingWriter{}, Divergence{Line: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
