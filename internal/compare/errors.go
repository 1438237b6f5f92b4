package compare

import "fmt"

// Labels identify the two inputs in reports and errors.
const (
	File1Label = "File 1"
	File2Label = "File 2"
)

// LineError wraps a read or decode failure with its position.
// Use errors.As to reach the underlying *trace.OutOfRangeError or
// *trace.MarkerNotFoundError.
type LineError struct {
	File string // File1Label or File2Label
	Line int    // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.File, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
