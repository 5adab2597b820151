package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/1broseidon/herbst3/internal/herbst"
)

// Transports.
const (
	TransportExec = "exec"
	TransportX11  = "x11"
)

// Config is the effective configuration after defaults, file and environment
// have been merged.
type Config struct {
	Transport    string
	Herbstclient string
	Display      string
	SplitRatio   float64
	Timeout      time.Duration
	LogLevel     string
	Attributes   herbst.Attributes
}

func DefaultConfig() *Config {
	return &Config{
		Transport:    TransportExec,
		Herbstclient: "herbstclient",
		SplitRatio:   0.5,
		Timeout:      2 * time.Second,
		LogLevel:     "info",
		Attributes:   herbst.DefaultAttributes(),
	}
}

// ValidationError points at the config key that failed validation and, when
// known, where it was set.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Source.Kind == SourceEnv && e.Source.Name != "" {
		return fmt.Sprintf("%s (from $%s): %v", e.Path, e.Source.Name, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch c.Transport {
	case TransportExec:
		if strings.TrimSpace(c.Herbstclient) == "" {
			return &ValidationError{Path: "herbstclient", Err: fmt.Errorf("herbstclient must not be empty with the exec transport")}
		}
	case TransportX11:
	default:
		return &ValidationError{Path: "transport", Err: fmt.Errorf("transport must be one of: %s, %s", TransportExec, TransportX11)}
	}
	if !(c.SplitRatio > 0 && c.SplitRatio < 1) {
		return &ValidationError{Path: "split_ratio", Err: fmt.Errorf("split_ratio must be between 0 and 1 (exclusive), got %v", c.SplitRatio)}
	}
	if c.Timeout <= 0 {
		return &ValidationError{Path: "timeout", Err: fmt.Errorf("timeout must be > 0")}
	}
	if !validLogLevel(c.LogLevel) {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: %s", strings.Join(logLevels, ", "))}
	}
	return nil
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if level == l {
			return true
		}
	}
	return false
}
