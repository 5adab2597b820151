package wm

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGeometry is returned when a rectangle string is not WxH+X+Y.
	ErrMalformedGeometry = errors.New("malformed geometry")
	// ErrMalformedLayoutDump covers grammar mismatches in the layout dump and
	// index paths that do not fit the parsed tree.
	ErrMalformedLayoutDump = errors.New("malformed layout dump")
	// ErrEmptyFrame is returned when the focused frame holds no clients.
	ErrEmptyFrame = errors.New("focused frame is empty")
	// ErrNoMonitorInDirection is returned when a move has to leave the
	// monitor but there is no monitor to go to.
	ErrNoMonitorInDirection = errors.New("no monitor in direction")
	// ErrTransport marks any failure talking to the window manager.
	ErrTransport = errors.New("window manager transport error")
)

// TransportError describes a failed window manager query or command.
type TransportError struct {
	Command []string
	Stderr  string
	Err     error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("herbstluftwm %q", e.Command)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap lets errors.Is match both ErrTransport and the underlying cause.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}
