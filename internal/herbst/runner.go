// Package herbst talks to herbstluftwm. A Runner executes one raw
// herbstluftwm command; Client builds the queries and commands the shift logic
// needs on top of it.
package herbst

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/1broseidon/herbst3/internal/wm"
)

// Runner executes a herbstluftwm command and returns its output.
// Failures are reported as *wm.TransportError.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs commands through the herbstclient binary.
type ExecRunner struct {
	Path    string
	Timeout time.Duration
}

// NewExecRunner creates a runner for the given herbstclient binary. An empty
// path means "herbstclient" from PATH.
func NewExecRunner(path string, timeout time.Duration) *ExecRunner {
	if strings.TrimSpace(path) == "" {
		path = "herbstclient"
	}
	return &ExecRunner{Path: path, Timeout: timeout}
}

// Run executes `herbstclient --no-newline args...`.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Path, append([]string{"--no-newline"}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = errors.Join(err, ctxErr)
		}
		return "", &wm.TransportError{
			Command: args,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return stdout.String(), nil
}

// readOnly lists the herbstluftwm commands that only query state.
var readOnly = map[string]bool{
	"get_attr":      true,
	"attr":          true,
	"dump":          true,
	"layout":        true,
	"list_monitors": true,
	"monitor_rect":  true,
	"version":       true,
}

// Recorder passes queries through to Runner and records every other command.
// Recorded commands are only run when Execute is set.
type Recorder struct {
	Runner   Runner
	Execute  bool
	Commands [][]string
}

// Run implements Runner.
func (r *Recorder) Run(ctx context.Context, args ...string) (string, error) {
	if len(args) > 0 && readOnly[args[0]] {
		return r.Runner.Run(ctx, args...)
	}
	r.Commands = append(r.Commands, append([]string(nil), args...))
	if r.Execute {
		return r.Runner.Run(ctx, args...)
	}
	return "", nil
}
