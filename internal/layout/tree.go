package layout

import (
	"strings"
)

// Kind is the type tag of a dumped frame.
type Kind int

const (
	KindUnknown Kind = iota
	KindSplit
	KindClients
)

func (k Kind) String() string {
	switch k {
	case KindSplit:
		return "split"
	case KindClients:
		return "clients"
	default:
		return ""
	}
}

// Clause is the "<type>:<size>:..." part of a dumped frame. For splits the
// sizes are the ratio and selection, for clients frames the selection.
type Clause struct {
	Type  Type
	Sizes []string
}

func (c Clause) String() string {
	return c.Type.String() + ":" + strings.Join(c.Sizes, ":")
}

// Node is one frame of a parsed dump. Children are owned by their parent.
type Node struct {
	Kind     Kind
	Layout   *Clause
	IDs      []string
	Children []*Node
}

// Child returns the child selected by a path bit.
func (n *Node) Child(bit uint8) (*Node, bool) {
	if n == nil || int(bit) >= len(n.Children) {
		return nil, false
	}
	return n.Children[bit], true
}

// ClientCount is the number of window ids held directly by n.
func (n *Node) ClientCount() int {
	if n == nil {
		return 0
	}
	return len(n.IDs)
}

// String renders n in the dump grammar accepted by Parse.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteByte('(')
	var parts []string
	if n.Kind != KindUnknown {
		parts = append(parts, n.Kind.String())
	}
	if n.Layout != nil {
		parts = append(parts, n.Layout.String())
	}
	parts = append(parts, n.IDs...)
	b.WriteString(strings.Join(parts, " "))
	for _, child := range n.Children {
		b.WriteByte(' ')
		child.write(b)
	}
	b.WriteByte(')')
}

// Split builds a split node, mostly for tests and tooling.
func Split(t Type, ratio string, first, second *Node) *Node {
	return &Node{
		Kind:     KindSplit,
		Layout:   &Clause{Type: t, Sizes: []string{ratio, "0"}},
		Children: []*Node{first, second},
	}
}

// Clients builds a clients frame holding the given window ids.
func Clients(t Type, ids ...string) *Node {
	return &Node{
		Kind:   KindClients,
		Layout: &Clause{Type: t, Sizes: []string{"0"}},
		IDs:    ids,
	}
}
