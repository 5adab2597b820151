package layout

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/herbst3/internal/wm"
)

// Captured from `herbstclient dump` on a tag with three frames.
const sampleDump = `(split horizontal:0.500000:0 (clients vertical:0 0x1a00003) (split vertical:0.500000:1 (clients max:0 0x1c00003 0x1e00003) (clients grid:0)))`

func TestParse_SampleDump(t *testing.T) {
	root, err := Parse(sampleDump)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &Node{
		Kind:   KindSplit,
		Layout: &Clause{Type: Horizontal, Sizes: []string{"0.500000", "0"}},
		Children: []*Node{
			{Kind: KindClients, Layout: &Clause{Type: Vertical, Sizes: []string{"0"}}, IDs: []string{"0x1a00003"}},
			{
				Kind:   KindSplit,
				Layout: &Clause{Type: Vertical, Sizes: []string{"0.500000", "1"}},
				Children: []*Node{
					{Kind: KindClients, Layout: &Clause{Type: Max, Sizes: []string{"0"}}, IDs: []string{"0x1c00003", "0x1e00003"}},
					{Kind: KindClients, Layout: &Clause{Type: Grid, Sizes: []string{"0"}}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Fatalf("parsed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_WhitespaceAndOrder(t *testing.T) {
	dump := "\n  ( 0x1a  clients\tvertical:0::1  )\n"
	root, err := Parse(dump)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Kind != KindClients {
		t.Fatalf("Kind = %v, want clients", root.Kind)
	}
	if root.Layout == nil || root.Layout.Type != Vertical {
		t.Fatalf("Layout = %+v, want vertical", root.Layout)
	}
	if diff := cmp.Diff([]string{"0", "1"}, root.Layout.Sizes); diff != "" {
		t.Fatalf("sizes mismatch (-want +got):\n%s", diff)
	}
	if root.ClientCount() != 1 {
		t.Fatalf("ClientCount = %d, want 1", root.ClientCount())
	}
}

func TestParse_Malformed(t *testing.T) {
	inputs := map[string]string{
		"empty":             "",
		"whitespace":        "   \n",
		"no parens":         "split horizontal:0.5:0",
		"unterminated":      "(split horizontal:0.5:0 (clients vertical:0)",
		"empty node":        "()",
		"unknown token":     "(frame vertical:0)",
		"unknown layout":    "(clients diagonal:0)",
		"layout no size":    "(clients vertical:)",
		"layout bad size":   "(clients vertical:a)",
		"double colon head": "(clients vertical::0)",
		"bad window id":     "(clients vertical:0 0xzz)",
		"bare 0x":           "(clients vertical:0 0x)",
		"two layouts":       "(clients vertical:0 max:0)",
		"trailing garbage":  "(clients vertical:0) (clients max:0)",
		"stray close":       "(clients vertical:0))",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", in)
			}
			if !errors.Is(err, wm.ErrMalformedLayoutDump) {
				t.Fatalf("Parse(%q) error %v is not ErrMalformedLayoutDump", in, err)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{Vertical, Horizontal, Max, Grid} {
		got, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q): %v", typ.String(), err)
		}
		if got != typ {
			t.Errorf("ParseType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}
	if _, err := ParseType("spiral"); err == nil {
		t.Fatalf("expected error for unknown layout type")
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"", Path{}},
		{"0", Path{0}},
		{"0110\n", Path{0, 1, 1, 0}},
		{"1.0/", Path{1, 0}},
	}
	for _, tt := range tests {
		got := ParsePath(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParsePath(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
		if !got.Valid() {
			t.Errorf("ParsePath(%q) produced an invalid path", tt.in)
		}
	}
	if (Path{0, 2}).Valid() {
		t.Fatalf("expected path with bit 2 to be invalid")
	}
	if got := (Path{1, 0, 1}).String(); got != "101" {
		t.Fatalf("Path.String = %q, want 101", got)
	}
}
