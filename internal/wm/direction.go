package wm

import (
	"fmt"
	"strings"
)

// Direction is a compass direction a window can be shifted in.
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

// Directions lists every direction in CLI order.
var Directions = []Direction{Right, Left, Up, Down}

// ParseDirection parses the lowercase direction names used on the command line
// and by herbstluftwm.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (want right, left, up or down)", s)
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

// Horizontal reports whether d travels along the x axis.
func (d Direction) Horizontal() bool {
	return d == Right || d == Left
}
