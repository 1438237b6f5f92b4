package trace

// Canonical field names. They appear in dialect spans and in the
// comparator's field selection.
const (
	FieldInstruction = "instruction"
	FieldA           = "a"
	FieldX           = "x"
	FieldY           = "y"
	FieldFlag        = "flag"
	FieldCyc         = "cyc"
)

// AllFields lists every Record field in report order.
var AllFields = []string{FieldInstruction, FieldA, FieldX, FieldY, FieldFlag, FieldCyc}

// Record is the CPU state decoded from one trace line.
// All values are raw substrings of the source line.
type Record struct {
	Instruction string
	A           string
	X           string
	Y           string
	Flag        string

	// Cyc runs from the cycle marker to end of line, trimmed.
	// It includes the marker itself, e.g. "CYC:7".
	Cyc string
}

// Field returns the value of the named field.
// Returns "" and false for unknown names.
func (r Record) Field(name string) (string, bool) {
	switch name {
	case FieldInstruction:
		return r.Instruction, true
	case FieldA:
		return r.A, true
	case FieldX:
		return r.X, true
	case FieldY:
		return r.Y, true
	case FieldFlag:
		return r.Flag, true
	case FieldCyc:
		return r.Cyc, true
	}
	return "", false
}

// slot returns a pointer to the named positional field.
// Cyc is not positional and has no slot.
func (r *Record) slot(name string) *string {
	switch name {
	case FieldInstruction:
		return &r.Instruction
	case FieldA:
		return &r.A
	case FieldX:
		return &r.X
	case FieldY:
		return &r.Y
	case FieldFlag:
		return &r.Flag
	}
	return nil
}

// IsField reports whether name is a known Record field.
func IsField(name string) bool {
	_, ok := Record{}.Field(name)
	return ok
}
