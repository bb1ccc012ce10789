package exprcalc

import "strings"

// node is a node in the expression tree. The parser builds the tree
// bottom-up; after that nodes are never mutated, and evaluation consumes
// them read-only.
type node interface {
	// eval reduces the node to a single value.
	eval() (Value, error)
	// writeTo renders the node in a parenthesized form that parses back to
	// a structurally identical tree.
	writeTo(b *strings.Builder)
}

// numberNode is a leaf holding one numeric literal, sign already applied.
type numberNode struct {
	lit string
	val Value
}

// negateNode negates its operand. It comes from a sign before a
// parenthesized group.
type negateNode struct {
	x node
}

// powerNode is a single exponentiation. A chain a^b^c nests left-to-right:
// (a^b)^c.
type powerNode struct {
	base, exp node
}

// The chain nodes hold two or more operands joined by one operator kind,
// flattened into a single list in evaluation order. A chain of one operand
// never appears; the parser collapses it to the operand itself.
type (
	quotientNode   struct{ factors []node }
	productNode    struct{ factors []node }
	differenceNode struct{ terms []node }
	sumNode        struct{ terms []node }
)

func (n *numberNode) writeTo(b *strings.Builder) {
	b.WriteString(n.lit)
}

func (n *negateNode) writeTo(b *strings.Builder) {
	b.WriteByte('-')
	writeGrouped(b, n.x)
}

func (n *powerNode) writeTo(b *strings.Builder) {
	b.WriteByte('(')
	n.base.writeTo(b)
	b.WriteString(" ^ ")
	n.exp.writeTo(b)
	b.WriteByte(')')
}

func (n *quotientNode) writeTo(b *strings.Builder)   { writeChain(b, n.factors, " / ") }
func (n *productNode) writeTo(b *strings.Builder)    { writeChain(b, n.factors, " * ") }
func (n *differenceNode) writeTo(b *strings.Builder) { writeChain(b, n.terms, " - ") }
func (n *sumNode) writeTo(b *strings.Builder)        { writeChain(b, n.terms, " + ") }

func writeChain(b *strings.Builder, operands []node, op string) {
	b.WriteByte('(')
	for i, x := range operands {
		if i > 0 {
			b.WriteString(op)
		}
		x.writeTo(b)
	}
	b.WriteByte(')')
}

// writeGrouped renders a node with guaranteed surrounding parentheses.
// Power and chain nodes bring their own; literals and negations get a pair
// so that a preceding sign cannot merge with them on reparse.
func writeGrouped(b *strings.Builder, n node) {
	switch n.(type) {
	case *numberNode, *negateNode:
		b.WriteByte('(')
		n.writeTo(b)
		b.WriteByte(')')
	default:
		n.writeTo(b)
	}
}
