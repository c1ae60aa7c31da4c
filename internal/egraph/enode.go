package egraph

import (
	"fmt"
	"strings"

	"juniper/internal/bigrat"
	"juniper/internal/expr"
)

// ENode is a ground node: a variant tag plus an ordered list of child class
// ids. Unlike expr.Term, an ENode's children point into the graph rather than
// owning subterms directly.
type ENode struct {
	Kind     expr.Kind
	Rat      bigrat.Rat // Kind == expr.Const
	Name     rune       // Kind == expr.Var
	Children []ID
}

// IsLeaf reports whether n has no children.
func (n ENode) IsLeaf() bool { return len(n.Children) == 0 }

// signature returns a canonical string key for hash-consing: two nodes with
// the same signature (after resolving children through find) denote the same
// term and must live in the same class.
func (n ENode) signature(g *Graph) string {
	var b strings.Builder
	fmt.Fprintf(&b, "k%d", int(n.Kind))
	switch n.Kind {
	case expr.Const:
		b.WriteByte('#')
		b.WriteString(n.Rat.Key())
	case expr.Var:
		b.WriteByte('#')
		b.WriteRune(n.Name)
	}
	for _, c := range n.Children {
		fmt.Fprintf(&b, "|%d", g.find(c))
	}
	return b.String()
}
