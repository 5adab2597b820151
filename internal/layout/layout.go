// Package layout parses herbstluftwm's frame tree dump and resolves the
// orientations of the frames above the focused one.
package layout

import (
	"fmt"
	"strings"
)

// Type is the orientation of a split or the algorithm of a clients frame.
type Type int

const (
	Vertical Type = iota
	Horizontal
	Max
	Grid
)

// ParseType parses the layout names herbstluftwm prints in dumps and in the
// frame algorithm attribute.
func ParseType(s string) (Type, error) {
	switch strings.TrimSpace(s) {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	case "max":
		return Max, nil
	case "grid":
		return Grid, nil
	default:
		return 0, fmt.Errorf("unknown layout type %q", s)
	}
}

func (t Type) String() string {
	switch t {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Max:
		return "max"
	case Grid:
		return "grid"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Path is a frame index path: one bit per level, root first, 0 selecting the
// first child and 1 the second.
type Path []uint8

// ParsePath keeps the '0' and '1' characters of s and drops everything else,
// which is how the index attribute is read back from herbstluftwm.
func ParsePath(s string) Path {
	p := Path{}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			p = append(p, 0)
		case '1':
			p = append(p, 1)
		}
	}
	return p
}

// String renders p in herbstluftwm's frame index syntax. The root is "".
func (p Path) String() string {
	var b strings.Builder
	for _, bit := range p {
		if bit == 0 {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	return b.String()
}

// Valid reports whether every element of p is 0 or 1.
func (p Path) Valid() bool {
	for _, bit := range p {
		if bit > 1 {
			return false
		}
	}
	return true
}

// Stack is the sequence of layout types met while walking a Path.
type Stack []Type

func (s Stack) String() string {
	names := make([]string, len(s))
	for i, t := range s {
		names[i] = t.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}
