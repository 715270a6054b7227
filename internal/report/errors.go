package report

import "fmt"

// RenderError wraps a failure inside the rendering engine. Fatal:
// surfaced to the caller with the underlying cause.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render report: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
