package layout

import (
	"fmt"
	"strings"

	"github.com/1broseidon/herbst3/internal/wm"
)

// Parse reads the output of `herbstclient dump`:
//
//	node        := "(" (type | id | layout | node)+ ")"
//	type        := "split" | "clients"
//	layout      := layout_type ":" (layout_size ":"*)+
//	layout_type := "vertical" | "horizontal" | "max" | "grid"
//	layout_size := (digit | ".")+
//	id          := "0x" hex_digit+
//
// Whitespace between elements is insignificant. The dump must contain exactly
// one root node.
func Parse(dump string) (*Node, error) {
	p := &parser{src: dump}
	p.skipSpace()
	if p.eof() {
		return nil, fmt.Errorf("%w: no root node", wm.ErrMalformedLayoutDump)
	}
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q after root node", p.rest())
	}
	return root, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) node() (*Node, error) {
	if p.eof() || p.src[p.pos] != '(' {
		return nil, p.errorf("expected '('")
	}
	start := p.pos
	p.pos++

	n := &Node{}
	elements := 0
	for {
		p.skipSpace()
		if p.eof() {
			return nil, fmt.Errorf("%w: unterminated node starting at offset %d", wm.ErrMalformedLayoutDump, start)
		}

		switch p.src[p.pos] {
		case ')':
			if elements == 0 {
				return nil, p.errorf("empty node")
			}
			p.pos++
			return n, nil
		case '(':
			child, err := p.node()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		default:
			if err := p.word(n); err != nil {
				return nil, err
			}
		}
		elements++
	}
}

// word consumes one type tag, window id or layout clause into n.
func (p *parser) word(n *Node) error {
	start := p.pos
	for !p.eof() && !isDelimiter(p.src[p.pos]) {
		p.pos++
	}
	w := p.src[start:p.pos]

	switch {
	case w == "split":
		n.Kind = KindSplit
	case w == "clients":
		n.Kind = KindClients
	case isWindowID(w):
		n.IDs = append(n.IDs, w)
	default:
		clause, ok := parseClause(w)
		if !ok {
			p.pos = start
			return p.errorf("unexpected token %q", w)
		}
		if n.Layout != nil {
			p.pos = start
			return p.errorf("second layout clause %q", w)
		}
		n.Layout = &clause
	}
	return nil
}

func parseClause(w string) (Clause, bool) {
	name, rest, ok := strings.Cut(w, ":")
	if !ok {
		return Clause{}, false
	}
	t, err := ParseType(name)
	if err != nil {
		return Clause{}, false
	}

	// The first size must follow the colon directly; later sizes may be
	// separated by runs of colons.
	if rest == "" || rest[0] == ':' {
		return Clause{}, false
	}
	var sizes []string
	for _, s := range strings.Split(rest, ":") {
		if s == "" {
			continue
		}
		if !isSize(s) {
			return Clause{}, false
		}
		sizes = append(sizes, s)
	}
	return Clause{Type: t, Sizes: sizes}, true
}

func isWindowID(w string) bool {
	if len(w) < 3 || !strings.HasPrefix(w, "0x") {
		return false
	}
	for i := 2; i < len(w); i++ {
		if !isHex(w[i]) {
			return false
		}
	}
	return true
}

func isSize(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	return s != ""
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || isSpace(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (p *parser) skipSpace() {
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) rest() string {
	const limit = 16
	if len(p.src)-p.pos > limit {
		return p.src[p.pos:p.pos+limit] + "..."
	}
	return p.src[p.pos:]
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", wm.ErrMalformedLayoutDump, p.pos, fmt.Sprintf(format, args...))
}
