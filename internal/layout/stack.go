package layout

import (
	"fmt"

	"github.com/1broseidon/herbst3/internal/wm"
)

// ResolveStack walks path from root and returns the layout type of every
// frame it passes through, root first. The result has the same length as
// path.
func ResolveStack(root *Node, path Path) (Stack, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: no root node", wm.ErrMalformedLayoutDump)
	}

	stack := make(Stack, 0, len(path))
	node := root
	for depth, bit := range path {
		if bit > 1 {
			return nil, fmt.Errorf("%w: index bit %d at depth %d", wm.ErrMalformedLayoutDump, bit, depth)
		}
		if node.Layout == nil {
			return nil, fmt.Errorf("%w: missing layout info at depth %d", wm.ErrMalformedLayoutDump, depth)
		}
		stack = append(stack, node.Layout.Type)

		child, ok := node.Child(bit)
		if !ok {
			return nil, fmt.Errorf("%w: index %s has no child %d at depth %d", wm.ErrMalformedLayoutDump, path, bit, depth)
		}
		node = child
	}
	return stack, nil
}

// Frame returns the node addressed by path.
func Frame(root *Node, path Path) (*Node, error) {
	node := root
	for depth, bit := range path {
		child, ok := node.Child(bit)
		if !ok {
			return nil, fmt.Errorf("%w: index %s has no child %d at depth %d", wm.ErrMalformedLayoutDump, path, bit, depth)
		}
		node = child
	}
	if node == nil {
		return nil, fmt.Errorf("%w: no root node", wm.ErrMalformedLayoutDump)
	}
	return node, nil
}
