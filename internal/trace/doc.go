// Package trace decodes single lines of CPU execution trace logs.
//
// A trace line is a fixed-width text record written by an emulator once per
// executed instruction. Each emulator writes its own layout, so decoding is
// driven by a Dialect: an ordered table of (field, start, end) character
// spans plus a marker that locates the trailing cycle counter.
//
// # Dialects
//
// Two dialects ship with the package, compiled from the embedded CUE
// document dialects.cue:
//
//   - reference: the emulator under development (File 1)
//   - candidate: the nestest.log layout (File 2)
//
// Both are looked up through the registry returned by Builtin:
//
//	reg, err := trace.Builtin()
//	if err != nil {
//	    return err
//	}
//	ref, _ := reg.Lookup("reference")
//	rec, err := trace.Parse(line, ref)
//
// # Field Semantics
//
// Every Record field is a raw positional substring. Nothing is validated:
// a mnemonic is not checked against an opcode table and register values are
// never parsed as numbers. Positions count characters, not bytes.
//
// Lines that are too short for their dialect fail with *OutOfRangeError and
// lines without the cycle marker fail with *MarkerNotFoundError. Lines are
// never padded or skipped.
package trace
