// Package envfile inspects .env files without ever writing them.
//
// Inspection is a single read whose failure is classified by error kind, so
// there is no exists-then-read race. Content is only checked for trimmed
// non-emptiness; full key parsing is a separate, optional operation.
package envfile

import (
	"errors"
	"os"
	"strings"
)

// State classifies the result of inspecting an env file.
type State int

const (
	// StateMissing means the file does not exist.
	StateMissing State = iota
	// StateUnreadable means the file exists but could not be read.
	StateUnreadable
	// StateEmpty means the file was read and contains only whitespace.
	StateEmpty
	// StateHasContent means the file was read and has non-whitespace content.
	StateHasContent
)

// Inspection is the outcome of a single attempt to read an env file.
type Inspection struct {
	Path  string
	State State
	Err   error // set only for StateUnreadable
}

// Inspect reads path once and classifies the outcome. It never returns an
// error: an unreadable file is a reportable state, not a failure.
func Inspect(path string) Inspection {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Inspection{Path: path, State: StateMissing}
	case err != nil:
		return Inspection{Path: path, State: StateUnreadable, Err: err}
	case len(strings.TrimSpace(string(data))) == 0:
		return Inspection{Path: path, State: StateEmpty}
	default:
		return Inspection{Path: path, State: StateHasContent}
	}
}

// Exists reports whether path exists. Used only for the example file, where
// presence is all the reporter cares about.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
