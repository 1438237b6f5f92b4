package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tracecmp/internal/trace"
)

// Scenario defines a conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Fields selects the fields that decide divergence.
	// Empty means the comparator default.
	Fields []string `yaml:"fields,omitempty"`

	// Reference rows are rendered with the reference dialect (File 1).
	Reference []Row `yaml:"reference"`

	// Candidate rows are rendered with the candidate dialect (File 2).
	Candidate []Row `yaml:"candidate"`

	Expect Expectation `yaml:"expect"`
}

// Row is one trace line, either as decoded fields or as raw text.
type Row struct {
	Instruction string `yaml:"instruction,omitempty"`
	A           string `yaml:"a,omitempty"`
	X           string `yaml:"x,omitempty"`
	Y           string `yaml:"y,omitempty"`
	Flag        string `yaml:"flag,omitempty"`
	Cyc         string `yaml:"cyc,omitempty"`

	// Raw is used verbatim when set; the field values must then be empty.
	Raw string `yaml:"raw,omitempty"`
}

// Expectation is the outcome a scenario asserts.
type Expectation struct {
	Diverges bool     `yaml:"diverges"`
	Line     int      `yaml:"line,omitempty"`   // 1-based line of the divergence
	Fields   []string `yaml:"fields,omitempty"` // fields reported as differing
	Lines    int      `yaml:"lines,omitempty"`  // line pairs compared
	Error    string   `yaml:"error,omitempty"`  // trace.ErrorCode of an expected failure
}

// Record returns the row as a trace record.
func (r Row) Record() trace.Record {
	return trace.Record{
		Instruction: r.Instruction,
		A:           r.A,
		X:           r.X,
		Y:           r.Y,
		Flag:        r.Flag,
		Cyc:         r.Cyc,
	}
}

func (r Row) isRaw() bool {
	return r.Raw != ""
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadScenarios loads every *.yaml scenario in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Reference) == 0 {
		return fmt.Errorf("reference rows are required")
	}
	if len(s.Candidate) == 0 {
		return fmt.Errorf("candidate rows are required")
	}

	for _, f := range s.Fields {
		if !trace.IsField(f) {
			return fmt.Errorf("unknown field %q", f)
		}
	}
	for _, f := range s.Expect.Fields {
		if !trace.IsField(f) {
			return fmt.Errorf("expect: unknown field %q", f)
		}
	}

	for i, row := range s.Reference {
		if err := validateRow(row); err != nil {
			return fmt.Errorf("reference[%d]: %w", i, err)
		}
	}
	for i, row := range s.Candidate {
		if err := validateRow(row); err != nil {
			return fmt.Errorf("candidate[%d]: %w", i, err)
		}
	}

	e := s.Expect
	if e.Error != "" && e.Diverges {
		return fmt.Errorf("expect: error and diverges are exclusive")
	}
	if !e.Diverges && (e.Line != 0 || len(e.Fields) > 0) {
		return fmt.Errorf("expect: line and fields require diverges")
	}
	return nil
}

func validateRow(r Row) error {
	if r.isRaw() {
		if r.Record() != (trace.Record{}) {
			return fmt.Errorf("raw rows cannot set fields")
		}
		return nil
	}
	if r.Instruction == "" {
		return fmt.Errorf("instruction is required")
	}
	if r.Cyc == "" {
		return fmt.Errorf("cyc is required")
	}
	return nil
}
