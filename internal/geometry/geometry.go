// Package geometry models the on-screen rectangles herbstluftwm reports for
// frames, clients and monitors.
package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/herbst3/internal/wm"
)

// Geometry is a rectangle in root window coordinates.
type Geometry struct {
	Width  int
	Height int
	X      int
	Y      int
}

// Parse reads the "<width>x<height>+<x>+<y>" form herbstluftwm uses for
// geometry attributes. Fields past the fourth are ignored.
func Parse(s string) (Geometry, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(s), isSeparator)
	// FieldsFunc drops empty fields; count separators to catch "800x600++0+0".
	if strings.Count(s, "x")+strings.Count(s, "+")+1 != len(parts) {
		return Geometry{}, fmt.Errorf("%w: %q", wm.ErrMalformedGeometry, s)
	}

	nums := make([]int, 0, 4)
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 31)
		if err != nil {
			return Geometry{}, fmt.Errorf("%w: %q: %v", wm.ErrMalformedGeometry, s, err)
		}
		nums = append(nums, int(n))
	}
	if len(nums) < 4 {
		return Geometry{}, fmt.Errorf("%w: %q has %d of 4 fields", wm.ErrMalformedGeometry, s, len(nums))
	}

	return Geometry{Width: nums[0], Height: nums[1], X: nums[2], Y: nums[3]}, nil
}

func isSeparator(r rune) bool {
	return r == 'x' || r == '+'
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}

func (g Geometry) RightEdge() int  { return g.X + g.Width }
func (g Geometry) LeftEdge() int   { return g.X }
func (g Geometry) TopEdge() int    { return g.Y }
func (g Geometry) BottomEdge() int { return g.Y + g.Height }

// ChildCanMove reports whether child still has room inside g in direction
// dir, i.e. it is not flush against that edge of g.
func (g Geometry) ChildCanMove(child Geometry, dir wm.Direction) bool {
	switch dir {
	case wm.Right:
		return g.RightEdge() > child.RightEdge()
	case wm.Left:
		return g.LeftEdge() < child.LeftEdge()
	case wm.Up:
		return g.TopEdge() < child.TopEdge()
	case wm.Down:
		return g.BottomEdge() > child.BottomEdge()
	default:
		return false
	}
}

// Adjacent reports whether other lies entirely beyond g's edge in direction
// dir while overlapping g on the perpendicular axis.
func (g Geometry) Adjacent(other Geometry, dir wm.Direction) bool {
	switch dir {
	case wm.Right:
		return other.LeftEdge() >= g.RightEdge() && overlap(g.TopEdge(), g.BottomEdge(), other.TopEdge(), other.BottomEdge())
	case wm.Left:
		return other.RightEdge() <= g.LeftEdge() && overlap(g.TopEdge(), g.BottomEdge(), other.TopEdge(), other.BottomEdge())
	case wm.Up:
		return other.BottomEdge() <= g.TopEdge() && overlap(g.LeftEdge(), g.RightEdge(), other.LeftEdge(), other.RightEdge())
	case wm.Down:
		return other.TopEdge() >= g.BottomEdge() && overlap(g.LeftEdge(), g.RightEdge(), other.LeftEdge(), other.RightEdge())
	default:
		return false
	}
}

// overlap reports whether the half-open ranges [a1,a2) and [b1,b2) intersect.
func overlap(a1, a2, b1, b2 int) bool {
	return min(a2, b2) > max(a1, b1)
}
