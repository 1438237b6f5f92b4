// Package harness provides conformance scenarios for the trace comparator.
//
// A scenario describes two traces as rows of field values instead of raw
// fixed-width text. The harness renders each row through its dialect,
// runs the comparator and checks the outcome against the expectation.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	fields: [instruction]          # optional, defaults to instruction
//	reference:
//	  - { instruction: LDA, a: "00", x: "00", y: "00", flag: "24", cyc: "CYC:7" }
//	candidate:
//	  - { instruction: STA, a: "00", x: "00", y: "00", flag: "24", cyc: "CYC:7" }
//	  - raw: "line used verbatim"
//	expect:
//	  diverges: true
//	  line: 1
//	  fields: [instruction]
//	  lines: 1
//	  error: OUT_OF_RANGE          # expected decode failure instead of a result
//
// # Golden Reports
//
// RunWithGolden stores the text report under testdata/golden. To
// regenerate the golden files, run:
//
//	go test ./internal/harness -update
package harness
