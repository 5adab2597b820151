package main

import (
	"io"

	charmlog "github.com/charmbracelet/log"
)

// newLogger returns a leveled, timestamped logger. It also serves as the
// slog.Handler for the rest of the program.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "herbst3",
	})
}

// parseLevel maps a config log level to the logger's; unknown names fall back
// to info.
func parseLevel(name string) charmlog.Level {
	level, err := charmlog.ParseLevel(name)
	if err != nil {
		return charmlog.InfoLevel
	}
	return level
}
