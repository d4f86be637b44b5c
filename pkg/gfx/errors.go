package gfx

import "fmt"

// InitError reports a failed startup step: backend acquisition or window creation.
type InitError struct {
	Op      string
	Backend string
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s (%s backend): %v", e.Op, e.Backend, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
