package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_ValidFile(t *testing.T) {
	scenarioPath := filepath.Join(t.TempDir(), "test.yaml")
	content := `
name: test_scenario
description: "Test scenario for validation"
fields: [instruction, cyc]
reference:
  - { instruction: LDA, a: "00", cyc: "CYC:7" }
candidate:
  - { instruction: LDA, a: "01", cyc: "CYC:7" }
  - raw: "anything"
expect:
  diverges: false
  lines: 1
`
	require.NoError(t, os.WriteFile(scenarioPath, []byte(content), 0644))

	scenario, err := LoadScenario(scenarioPath)
	require.NoError(t, err)
	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, []string{"instruction", "cyc"}, scenario.Fields)
	require.Len(t, scenario.Reference, 1)
	assert.Equal(t, "00", scenario.Reference[0].A)
	require.Len(t, scenario.Candidate, 2)
	assert.Equal(t, "anything", scenario.Candidate[1].Raw)
	assert.Equal(t, 1, scenario.Expect.Lines)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_UnknownField(t *testing.T) {
	content := `
name: typo
description: "x"
referense:
  - { instruction: LDA, cyc: "CYC:7" }
candidate:
  - { instruction: LDA, cyc: "CYC:7" }
`
	_, err := ParseScenario([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenario_Validation(t *testing.T) {
	row := `{ instruction: LDA, cyc: "CYC:7" }`
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing name",
			content: "description: x\nreference: [" + row + "]\ncandidate: [" + row + "]\n",
			want:    "name is required",
		},
		{
			name:    "missing description",
			content: "name: x\nreference: [" + row + "]\ncandidate: [" + row + "]\n",
			want:    "description is required",
		},
		{
			name:    "no reference rows",
			content: "name: x\ndescription: x\ncandidate: [" + row + "]\n",
			want:    "reference rows are required",
		},
		{
			name:    "no candidate rows",
			content: "name: x\ndescription: x\nreference: [" + row + "]\n",
			want:    "candidate rows are required",
		},
		{
			name:    "unknown compared field",
			content: "name: x\ndescription: x\nfields: [pc]\nreference: [" + row + "]\ncandidate: [" + row + "]\n",
			want:    `unknown field "pc"`,
		},
		{
			name:    "row without instruction",
			content: "name: x\ndescription: x\nreference: [{ cyc: \"CYC:1\" }]\ncandidate: [" + row + "]\n",
			want:    "reference[0]: instruction is required",
		},
		{
			name:    "row without cyc",
			content: "name: x\ndescription: x\nreference: [" + row + "]\ncandidate: [{ instruction: LDA }]\n",
			want:    "candidate[0]: cyc is required",
		},
		{
			name:    "raw row with fields",
			content: "name: x\ndescription: x\nreference: [{ raw: abc, a: \"00\" }]\ncandidate: [" + row + "]\n",
			want:    "raw rows cannot set fields",
		},
		{
			name:    "error and divergence",
			content: "name: x\ndescription: x\nreference: [" + row + "]\ncandidate: [" + row + "]\nexpect: { diverges: true, error: OUT_OF_RANGE }\n",
			want:    "exclusive",
		},
		{
			name:    "line without divergence",
			content: "name: x\ndescription: x\nreference: [" + row + "]\ncandidate: [" + row + "]\nexpect: { line: 2 }\n",
			want:    "require diverges",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenarios_Testdata(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	names := make(map[string]bool)
	for _, s := range scenarios {
		assert.False(t, names[s.Name], "duplicate scenario name %s", s.Name)
		names[s.Name] = true
	}
	assert.True(t, names["instruction_mismatch"])
}

func TestLoadScenarios_ReportsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [unclosed"), 0644))

	_, err := LoadScenarios(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}
