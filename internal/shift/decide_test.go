package shift

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/herbst3/internal/geometry"
	"github.com/1broseidon/herbst3/internal/layout"
	"github.com/1broseidon/herbst3/internal/wm"
)

func TestFindSplit(t *testing.T) {
	H, V := layout.Horizontal, layout.Vertical

	tests := []struct {
		name    string
		dir     wm.Direction
		clients int
		path    layout.Path
		stack   layout.Stack
		want    SplitAction
	}{
		{
			name: "wrong axis below first frame",
			dir:  wm.Right, clients: 1,
			path: layout.Path{0, 1}, stack: layout.Stack{H, V},
			want: SplitAction{Kind: ActionSplit, Prefix: layout.Path{0}},
		},
		{
			name: "left edge everywhere",
			dir:  wm.Left, clients: 1,
			path: layout.Path{0, 0}, stack: layout.Stack{H, H},
			want: SplitAction{Kind: ActionMoveAcrossMonitor},
		},
		{
			name: "right edge of single split",
			dir:  wm.Right, clients: 1,
			path: layout.Path{1}, stack: layout.Stack{H},
			want: SplitAction{Kind: ActionMoveAcrossMonitor},
		},
		{
			name: "sibling on the right",
			dir:  wm.Right, clients: 1,
			path: layout.Path{0}, stack: layout.Stack{H},
			want: SplitAction{Kind: ActionMoveWithinFrame},
		},
		{
			name: "sibling above",
			dir:  wm.Up, clients: 1,
			path: layout.Path{1, 1}, stack: layout.Stack{V, H},
			want: SplitAction{Kind: ActionSplit, Prefix: layout.Path{1}},
		},
		{
			name: "sibling above at root",
			dir:  wm.Up, clients: 1,
			path: layout.Path{1, 1}, stack: layout.Stack{V, V},
			want: SplitAction{Kind: ActionMoveWithinFrame},
		},
		{
			name: "down from bottom of vertical root",
			dir:  wm.Down, clients: 1,
			path: layout.Path{1}, stack: layout.Stack{V},
			want: SplitAction{Kind: ActionMoveAcrossMonitor},
		},
		{
			name: "down needs split at root",
			dir:  wm.Down, clients: 1,
			path: layout.Path{0}, stack: layout.Stack{H},
			want: SplitAction{Kind: ActionSplit, Prefix: layout.Path{}},
		},
		{
			name: "max counts as wrong axis",
			dir:  wm.Left, clients: 1,
			path: layout.Path{1, 0}, stack: layout.Stack{H, layout.Max},
			want: SplitAction{Kind: ActionSplit, Prefix: layout.Path{1}},
		},
		{
			name: "single frame root",
			dir:  wm.Right, clients: 1,
			path: layout.Path{}, stack: layout.Stack{},
			want: SplitAction{Kind: ActionMoveAcrossMonitor},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSplit(tt.dir, tt.clients, tt.path, tt.stack)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FindSplit(%v, %d, %v, %v) mismatch (-want +got):\n%s", tt.dir, tt.clients, tt.path, tt.stack, diff)
			}
		})
	}
}

func TestFindSplit_MultiClientFrameSplitsInPlace(t *testing.T) {
	paths := []layout.Path{{}, {0}, {1, 0}, {0, 1, 1}}
	stacks := []layout.Stack{{}, {layout.Horizontal}, {layout.Vertical, layout.Horizontal}, {layout.Horizontal, layout.Horizontal, layout.Vertical}}

	for _, dir := range wm.Directions {
		for i, path := range paths {
			for _, clients := range []int{2, 3, 10} {
				got := FindSplit(dir, clients, path, stacks[i])
				want := SplitAction{Kind: ActionSplit, Prefix: path}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("FindSplit(%v, %d, %v) mismatch (-want +got):\n%s", dir, clients, path, diff)
				}
			}
		}
	}
}

func TestFindSplit_PrefixIsStrictPrefix(t *testing.T) {
	types := []layout.Type{layout.Vertical, layout.Horizontal, layout.Max, layout.Grid}
	for _, dir := range wm.Directions {
		for bits := 0; bits < 8; bits++ {
			path := layout.Path{uint8(bits & 1), uint8(bits >> 1 & 1), uint8(bits >> 2 & 1)}
			for combo := 0; combo < 64; combo++ {
				stack := layout.Stack{types[combo&3], types[combo>>2&3], types[combo>>4&3]}
				got := FindSplit(dir, 1, path, stack)
				if got.Kind != ActionSplit {
					continue
				}
				if len(got.Prefix) >= len(path) {
					t.Fatalf("FindSplit(%v, %v, %v) prefix %v is not strict", dir, path, stack, got.Prefix)
				}
				for i := range got.Prefix {
					if got.Prefix[i] != path[i] {
						t.Fatalf("FindSplit(%v, %v, %v) prefix %v is not a prefix", dir, path, stack, got.Prefix)
					}
				}
			}
		}
	}
}

func TestFindSplit_DoesNotAliasPath(t *testing.T) {
	path := layout.Path{0, 1}
	got := FindSplit(wm.Right, 1, path, layout.Stack{layout.Horizontal, layout.Vertical})
	got.Prefix = append(got.Prefix, 1)
	if path[1] != 1 {
		t.Fatalf("FindSplit result aliases the input path")
	}
}

func TestCanMoveWithinFrame_Max(t *testing.T) {
	var zero geometry.Geometry
	for index := 0; index < 3; index++ {
		if got, want := CanMoveWithinFrame(wm.Right, 3, index, layout.Max, zero, zero), index < 2; got != want {
			t.Errorf("Right at index %d = %v, want %v", index, got, want)
		}
		if got, want := CanMoveWithinFrame(wm.Left, 3, index, layout.Max, zero, zero), index > 0; got != want {
			t.Errorf("Left at index %d = %v, want %v", index, got, want)
		}
		if CanMoveWithinFrame(wm.Up, 3, index, layout.Max, zero, zero) {
			t.Errorf("Up at index %d allowed in max frame", index)
		}
		if CanMoveWithinFrame(wm.Down, 3, index, layout.Max, zero, zero) {
			t.Errorf("Down at index %d allowed in max frame", index)
		}
	}
}

func TestCanMoveWithinFrame_Geometry(t *testing.T) {
	frame := geometry.Geometry{Width: 1000, Height: 800, X: 0, Y: 0}
	left := geometry.Geometry{Width: 500, Height: 800, X: 0, Y: 0}

	for _, algo := range []layout.Type{layout.Vertical, layout.Horizontal, layout.Grid} {
		if !CanMoveWithinFrame(wm.Right, 2, 0, algo, frame, left) {
			t.Errorf("%v: expected client on the left half to move right", algo)
		}
		if CanMoveWithinFrame(wm.Left, 2, 0, algo, frame, left) {
			t.Errorf("%v: expected client on the left edge not to move left", algo)
		}
		if CanMoveWithinFrame(wm.Up, 2, 0, algo, frame, left) || CanMoveWithinFrame(wm.Down, 2, 0, algo, frame, left) {
			t.Errorf("%v: expected full-height client not to move vertically", algo)
		}
	}
}

func TestSplitAction_ZeroValueIsNone(t *testing.T) {
	var a SplitAction
	if a.Kind != ActionNone || a.Kind == ActionSplit {
		t.Fatalf("zero SplitAction kind = %s, want none", a.Kind)
	}
	if got := a.String(); got != "none" {
		t.Fatalf("zero SplitAction String = %q, want none", got)
	}
}
