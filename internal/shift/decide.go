// Package shift decides how to move the focused window one step in a
// direction and drives the window manager through that move.
package shift

import (
	"fmt"

	"github.com/1broseidon/herbst3/internal/geometry"
	"github.com/1broseidon/herbst3/internal/layout"
	"github.com/1broseidon/herbst3/internal/wm"
)

// ActionKind is the outcome of FindSplit.
type ActionKind int

const (
	// ActionNone is the zero value: no frame-level decision was made, as for a
	// move inside the focused frame.
	ActionNone ActionKind = iota
	// ActionSplit means a new split has to be created at Prefix first.
	ActionSplit
	// ActionMoveWithinFrame means an ancestor split already absorbs the move.
	ActionMoveWithinFrame
	// ActionMoveAcrossMonitor means the move leaves the current monitor.
	ActionMoveAcrossMonitor
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionSplit:
		return "split"
	case ActionMoveWithinFrame:
		return "move-within-frame"
	case ActionMoveAcrossMonitor:
		return "move-across-monitor"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// SplitAction is the result of FindSplit. Prefix is only set for ActionSplit.
type SplitAction struct {
	Kind   ActionKind
	Prefix layout.Path
}

func (a SplitAction) String() string {
	if a.Kind == ActionSplit {
		return fmt.Sprintf("split at %q", a.Prefix.String())
	}
	return a.Kind.String()
}

// CanMoveWithinFrame reports whether the focused client can move inside its
// own frame without touching the frame tree.
func CanMoveWithinFrame(dir wm.Direction, clientCount, clientIndex int, algorithm layout.Type, frame, client geometry.Geometry) bool {
	if algorithm == layout.Max {
		switch dir {
		case wm.Right:
			return clientIndex < clientCount-1
		case wm.Left:
			return clientIndex > 0
		default:
			// A max frame is a single stack with no vertical neighbours.
			return false
		}
	}
	return frame.ChildCanMove(client, dir)
}

// FindSplit picks where the frame tree has to change for the focused window to
// move in dir. clients is the client count of the focused frame, path its
// index and stack the layout types along path.
func FindSplit(dir wm.Direction, clients int, path layout.Path, stack layout.Stack) SplitAction {
	movable := movableIndex(dir)
	target := targetOrientation(dir)

	// A frame with several clients is split in place: there is no ancestor
	// split the window could move into.
	if clients > 1 {
		return SplitAction{Kind: ActionSplit, Prefix: clonePath(path)}
	}

	n := min(len(path), len(stack))
	for e := n - 1; e >= 0; e-- {
		if path[e] == movable && stack[e] == target {
			return SplitAction{Kind: ActionMoveWithinFrame}
		}
		if stack[e] != target {
			return SplitAction{Kind: ActionSplit, Prefix: clonePath(path[:e])}
		}
	}

	return SplitAction{Kind: ActionMoveAcrossMonitor}
}

// movableIndex is the child slot a frame has to be in to move towards its
// sibling in dir.
func movableIndex(dir wm.Direction) uint8 {
	switch dir {
	case wm.Right, wm.Down:
		return 0
	default:
		return 1
	}
}

// targetOrientation is the split orientation whose children sit next to each
// other along dir.
func targetOrientation(dir wm.Direction) layout.Type {
	if dir.Horizontal() {
		return layout.Horizontal
	}
	return layout.Vertical
}

func clonePath(p layout.Path) layout.Path {
	return append(layout.Path{}, p...)
}
