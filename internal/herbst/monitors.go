package herbst

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/herbst3/internal/geometry"
)

// Monitor is one line of `herbstclient list_monitors`.
type Monitor struct {
	Index    int
	Geometry geometry.Geometry
	Focused  bool
}

// ParseMonitors parses list_monitors output, e.g.
//
//	0: 1920x1080+0+0 with tag "1" [FOCUS]
//	1: 1280x1024+1920+0 with tag "2"
func ParseMonitors(out string) ([]Monitor, error) {
	var monitors []Monitor
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		idx, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("monitor line %q has no index", line)
		}
		index, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return nil, fmt.Errorf("monitor line %q: %w", line, err)
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return nil, fmt.Errorf("monitor line %q has no geometry", line)
		}
		geom, err := geometry.Parse(fields[0])
		if err != nil {
			return nil, fmt.Errorf("monitor %d: %w", index, err)
		}

		monitors = append(monitors, Monitor{
			Index:    index,
			Geometry: geom,
			Focused:  strings.HasSuffix(line, "[FOCUS]"),
		})
	}
	return monitors, nil
}

// FocusedMonitor returns the monitor marked [FOCUS].
func FocusedMonitor(monitors []Monitor) (Monitor, bool) {
	for _, m := range monitors {
		if m.Focused {
			return m, true
		}
	}
	return Monitor{}, false
}
