package trace

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Parse decodes one trace line under dialect d.
//
// The line is NFC-normalised before slicing so spans land on the same
// characters whichever normal form the emulator wrote. A trailing line
// terminator is harmless: it only ever falls inside the trimmed Cyc field.
func Parse(line string, d Dialect) (Record, error) {
	if !norm.NFC.IsNormalString(line) {
		line = norm.NFC.String(line)
	}

	chars := []rune(line)
	if need := d.MinLength(); len(chars) < need {
		return Record{}, &OutOfRangeError{Dialect: d.Name, Need: need, Got: len(chars)}
	}

	idx := strings.Index(line, d.Marker)
	if idx < 0 || d.Marker == "" {
		return Record{}, &MarkerNotFoundError{Dialect: d.Name, Marker: d.Marker}
	}

	var rec Record
	for _, s := range d.Spans {
		if p := rec.slot(s.Field); p != nil {
			*p = string(chars[s.Start:s.End])
		}
	}
	rec.Cyc = strings.TrimSpace(line[idx:])
	return rec, nil
}
