package trace

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed dialects.cue
var dialectsCUE []byte

// Names of the built-in dialects.
const (
	ReferenceDialect = "reference"
	CandidateDialect = "candidate"
)

// Registry holds a validated set of dialects keyed by name.
type Registry struct {
	dialects map[string]Dialect
}

var builtin = sync.OnceValues(func() (*Registry, error) {
	return LoadDialects(dialectsCUE, "dialects.cue")
})

// Builtin returns the registry compiled from the embedded dialect table.
// The table is compiled once per process.
func Builtin() (*Registry, error) {
	return builtin()
}

// Reference returns the built-in reference dialect.
func Reference() (Dialect, error) {
	return lookupBuiltin(ReferenceDialect)
}

// Candidate returns the built-in candidate dialect.
func Candidate() (Dialect, error) {
	return lookupBuiltin(CandidateDialect)
}

func lookupBuiltin(name string) (Dialect, error) {
	reg, err := Builtin()
	if err != nil {
		return Dialect{}, err
	}
	return reg.Lookup(name)
}

// LoadDialects compiles a CUE dialect table. The document must carry a
// top-level "dialects" struct whose entries satisfy the #Dialect schema.
// filename is used for error positions only.
func LoadDialects(src []byte, filename string) (*Registry, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	dv := v.LookupPath(cue.ParsePath("dialects"))
	if !dv.Exists() {
		return nil, &SchemaError{Message: "dialects struct is required", Pos: v.Pos()}
	}
	if err := dv.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var decoded map[string]Dialect
	if err := dv.Decode(&decoded); err != nil {
		return nil, formatCUEError(err)
	}
	if len(decoded) == 0 {
		return nil, &SchemaError{Message: "no dialects defined", Pos: dv.Pos()}
	}

	for name, d := range decoded {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("dialect %s: %w", name, err)
		}
	}
	return &Registry{dialects: decoded}, nil
}

// Lookup returns the named dialect.
func (r *Registry) Lookup(name string) (Dialect, error) {
	d, ok := r.dialects[name]
	if !ok {
		return Dialect{}, fmt.Errorf("unknown dialect %q (known: %s)", name, strings.Join(r.Names(), ", "))
	}
	return d, nil
}

// Names returns the dialect names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &SchemaError{Message: err.Error()}
	}

	first := errs[0]
	if positions := errors.Positions(first); len(positions) > 0 {
		return &SchemaError{Message: first.Error(), Pos: positions[0]}
	}
	return &SchemaError{Message: first.Error()}
}
