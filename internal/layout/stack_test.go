package layout

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/herbst3/internal/wm"
)

func TestResolveStack(t *testing.T) {
	root, err := Parse(sampleDump)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		path Path
		want Stack
	}{
		{Path{}, Stack{}},
		{Path{0}, Stack{Horizontal}},
		{Path{1}, Stack{Horizontal}},
		{Path{1, 0}, Stack{Horizontal, Vertical}},
		{Path{1, 1}, Stack{Horizontal, Vertical}},
	}
	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			got, err := ResolveStack(root, tt.path)
			if err != nil {
				t.Fatalf("ResolveStack(%v): %v", tt.path, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ResolveStack(%v) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestResolveStack_EmptyPathOnAnyTree(t *testing.T) {
	for _, dump := range []string{sampleDump, "(clients max:0)", "(0x1)"} {
		root, err := Parse(dump)
		if err != nil {
			t.Fatalf("Parse(%q): %v", dump, err)
		}
		got, err := ResolveStack(root, nil)
		if err != nil {
			t.Fatalf("ResolveStack(%q, []): %v", dump, err)
		}
		if len(got) != 0 {
			t.Fatalf("ResolveStack(%q, []) = %v, want empty", dump, got)
		}
	}
}

func TestResolveStack_Errors(t *testing.T) {
	tests := []struct {
		name string
		dump string
		path Path
	}{
		{"past leaf", sampleDump, Path{0, 0}},
		{"too deep", sampleDump, Path{1, 1, 0}},
		{"missing layout", "(split (clients vertical:0) (clients vertical:0))", Path{0}},
		{"single child", "(split horizontal:0.5:0 (clients vertical:0))", Path{1}},
		{"bad bit", sampleDump, Path{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.dump)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			_, err = ResolveStack(root, tt.path)
			if !errors.Is(err, wm.ErrMalformedLayoutDump) {
				t.Fatalf("ResolveStack(%v) error = %v, want ErrMalformedLayoutDump", tt.path, err)
			}
		})
	}

	if _, err := ResolveStack(nil, Path{0}); !errors.Is(err, wm.ErrMalformedLayoutDump) {
		t.Fatalf("ResolveStack(nil) error = %v, want ErrMalformedLayoutDump", err)
	}
}

func TestFrame(t *testing.T) {
	root, err := Parse(sampleDump)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	frame, err := Frame(root, Path{1, 0})
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if frame.Layout.Type != Max || frame.ClientCount() != 2 {
		t.Fatalf("Frame(10) = %s, want the max frame with two clients", frame)
	}
	if _, err := Frame(root, Path{0, 1}); !errors.Is(err, wm.ErrMalformedLayoutDump) {
		t.Fatalf("Frame(01) error = %v, want ErrMalformedLayoutDump", err)
	}
}

// allPaths returns every root-to-frame path of n, including the empty path.
func allPaths(n *Node, prefix Path) []Path {
	paths := []Path{append(Path{}, prefix...)}
	for i, child := range n.Children {
		paths = append(paths, allPaths(child, append(append(Path{}, prefix...), uint8(i)))...)
	}
	return paths
}

func TestRoundTrip_StackPreserved(t *testing.T) {
	trees := []*Node{
		Clients(Max, "0x1"),
		Split(Horizontal, "0.5", Clients(Vertical, "0x1"), Clients(Grid)),
		Split(Vertical, "0.3",
			Split(Horizontal, "0.5", Clients(Max, "0x1", "0x2"), Clients(Vertical)),
			Split(Horizontal, "0.7",
				Clients(Grid, "0x3"),
				Split(Vertical, "0.5", Clients(Vertical, "0xdeadbeef"), Clients(Horizontal)))),
	}

	for i, tree := range trees {
		t.Run(fmt.Sprintf("tree%d", i), func(t *testing.T) {
			text := tree.String()
			reparsed, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(%q): %v", text, err)
			}
			if diff := cmp.Diff(tree, reparsed); diff != "" {
				t.Fatalf("round trip of %q changed the tree (-want +got):\n%s", text, diff)
			}

			for _, path := range allPaths(tree, nil) {
				if len(path) == 0 {
					continue
				}
				// Only paths ending at an existing frame are valid; the
				// resolver records the frames above that frame.
				want, wantErr := ResolveStack(tree, path)
				got, gotErr := ResolveStack(reparsed, path)
				if (wantErr == nil) != (gotErr == nil) {
					t.Fatalf("path %s: error mismatch %v vs %v", path, wantErr, gotErr)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("path %s: stack mismatch (-want +got):\n%s", path, diff)
				}
				if wantErr == nil && len(got) != len(path) {
					t.Fatalf("path %s: stack length %d, want %d", path, len(got), len(path))
				}
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	tree := Split(Horizontal, "0.5", Clients(Vertical, "0x1"), Clients(Max))
	want := "(split horizontal:0.5:0 (clients vertical:0 0x1) (clients max:0))"
	if got := tree.String(); got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}
