package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Regenerate with: go test ./internal/harness -run TestGolden -update
func TestGolden(t *testing.T) {
	names := []string{
		"match_single_line",
		"instruction_mismatch",
		"shorter_candidate",
		"registers_ignored",
		"register_divergence",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
			require.NoError(t, err)

			result, err := RunWithGolden(t, s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestGolden_Idempotent(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "register_divergence.yaml"))
	require.NoError(t, err)

	first, err := Run(s)
	require.NoError(t, err)
	second, err := Run(s)
	require.NoError(t, err)

	assert.Equal(t, first.Snapshot(), second.Snapshot())
	AssertGolden(t, s.Name, second)
}
