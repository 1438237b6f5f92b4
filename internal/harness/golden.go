package harness

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot returns the golden text for a result: the divergence report, or
// a one-line summary when the traces agree.
func (r *Result) Snapshot() []byte {
	if r.Err != nil {
		return []byte(fmt.Sprintf("error: %v\n", r.Err))
	}
	if r.Divergence == nil {
		return []byte(fmt.Sprintf("no divergence in %d line(s)\n", r.Lines))
	}
	return []byte(r.Report)
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// Returns error if scenario execution fails. Test failure (via goldie)
// occurs if the snapshot doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, result.Snapshot())
}
