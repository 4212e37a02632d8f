package cst

import "strings"

// Node is implemented by both Branch and Leaf.
type Node interface {
	// IsLeaf reports whether this Node is a Leaf (true) or a Branch (false).
	IsLeaf() bool
	// Text returns the concatenation of every Leaf descendant's text, in
	// left-to-right depth-first order — the round-trip guarantee,
	// computed on demand rather than cached, since the tree is written
	// once and read many times.
	Text() string
}

// TokenKind is the leaf-level kind space, numerically identical to
// token.Kind. cst avoids a direct import of the token package so the two
// kind spaces stay visibly distinct at the type level even though they
// share a representation: the two sets are disjoint, but both are small
// closed uint16 enumerations.
type TokenKind = uint16

// Leaf is a token-level node: a classification paired with the token's
// verbatim source bytes. Leaf never has children.
type Leaf struct {
	Kind TokenKind
	Val  string
}

func (l *Leaf) IsLeaf() bool { return true }
func (l *Leaf) Text() string { return l.Val }

// Branch is a composite node: a Kind plus an ordered list of children,
// each either a Branch or a Leaf.
type Branch struct {
	Kind     Kind
	children []Node
}

func (b *Branch) IsLeaf() bool { return false }

// Children returns the direct children in source order.
func (b *Branch) Children() []Node { return b.children }

// ChildCount returns the number of direct children.
func (b *Branch) ChildCount() int { return len(b.children) }

func (b *Branch) Text() string {
	var sb strings.Builder
	b.writeText(&sb)
	return sb.String()
}

func (b *Branch) writeText(sb *strings.Builder) {
	for _, c := range b.children {
		switch n := c.(type) {
		case *Leaf:
			sb.WriteString(n.Val)
		case *Branch:
			n.writeText(sb)
		}
	}
}
