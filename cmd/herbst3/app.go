package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/1broseidon/herbst3/internal/config"
	"github.com/1broseidon/herbst3/internal/herbst"
	"github.com/1broseidon/herbst3/internal/shift"
	"github.com/1broseidon/herbst3/internal/wm"
	"github.com/1broseidon/herbst3/internal/x11"
)

// app carries the state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	transport  string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger

	dial       func(cfg *config.Config) (herbst.Runner, func(), error)
	isTerminal func(w io.Writer) bool
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:     stdout,
		stderr:     stderr,
		dial:       dialRunner,
		isTerminal: isTerminal,
	}
}

// setup loads the configuration and builds the logger. Flags win over the
// environment, which wins over the file.
func (a *app) setup() error {
	res, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	cfg := res.Config

	if a.transport != "" {
		cfg.Transport = strings.ToLower(a.transport)
		if err := cfg.Validate(); err != nil {
			return &usageError{err: fmt.Errorf("--transport: %w", err)}
		}
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}

	a.cfg = cfg
	a.logger = slog.New(newLogger(a.stderr, parseLevel(cfg.LogLevel)))
	if res.File != "" {
		a.logger.Debug("loaded config", "file", res.File, "transport", cfg.Transport)
	}
	return nil
}

func (a *app) shifter(runner herbst.Runner) *shift.Shifter {
	sh := shift.New(herbst.NewClient(runner, a.cfg.Attributes, a.logger), a.logger)
	sh.SplitRatio = a.cfg.SplitRatio
	return sh
}

// dialRunner opens the transport named by cfg. The returned func releases it.
func dialRunner(cfg *config.Config) (herbst.Runner, func(), error) {
	switch cfg.Transport {
	case config.TransportX11:
		conn, err := x11.NewConnection(cfg.Display)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: connect to X display %q: %v", wm.ErrTransport, cfg.Display, err)
		}
		return x11.NewRunner(conn, cfg.Timeout), conn.Close, nil
	default:
		return herbst.NewExecRunner(cfg.Herbstclient, cfg.Timeout), func() {}, nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
