package cst

import "github.com/scriptandcompile/vb6parse-sub002/internal/invariant"

// Builder accumulates a CST incrementally via start_node / token /
// finish_node events. It is write-once: once Finish has produced the root
// Branch, no further mutation is possible.
type Builder struct {
	stack []*Branch
	root  *Branch
	done  bool
}

// NewBuilder returns a Builder ready to receive events. The very first
// StartNode call establishes the tree's root; by convention that root's
// Kind is cst.Root, but Builder itself does not enforce that choice —
// Parser does, by always opening with Root.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartNode pushes a new Branch of the given kind; it becomes the current
// insertion target for subsequent Token/StartNode calls.
func (b *Builder) StartNode(kind Kind) {
	invariant.Precondition(!b.done, "StartNode called after Finish")
	br := &Branch{Kind: kind}
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		top.children = append(top.children, br)
	} else {
		invariant.Precondition(b.root == nil, "StartNode opened a second root")
		b.root = br
	}
	b.stack = append(b.stack, br)
}

// Token appends a Leaf with the given token kind and verbatim text as a
// child of the current target. text must be the exact source bytes of the
// token — Builder never drops, reorders, merges, or synthesizes text.
func (b *Builder) Token(kind TokenKind, text string) {
	invariant.Precondition(!b.done, "Token called after Finish")
	invariant.Precondition(len(b.stack) > 0, "Token called with no open node")
	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, &Leaf{Kind: kind, Val: text})
}

// FinishNode pops the current target; the just-closed Branch becomes a
// child of the new top of stack (or, if the stack is now empty, remains
// accessible via Finish as the root).
func (b *Builder) FinishNode() {
	invariant.Precondition(!b.done, "FinishNode called after Finish")
	invariant.Precondition(len(b.stack) > 0, "FinishNode called with no open node")
	b.stack = b.stack[:len(b.stack)-1]
}

// WrapPreceding opens a new node of the given kind that takes the
// most-recently-finished sibling of the current target as its first child,
// then becomes the current insertion target itself. This is the
// "precede"/marker-completion trick (as used by rust-analyzer's event
// parser) adapted to an immediate tree: it lets a Pratt parser build a
// properly nested binary-expression tree even though the left operand is
// fully parsed, and closed, before the operator that governs it is known.
func (b *Builder) WrapPreceding(kind Kind) {
	invariant.Precondition(!b.done, "WrapPreceding called after Finish")
	invariant.Precondition(len(b.stack) > 0, "WrapPreceding called with no open node")
	top := b.stack[len(b.stack)-1]
	invariant.Precondition(len(top.children) > 0, "WrapPreceding called with no preceding sibling")
	i := len(top.children) - 1
	wrapper := &Branch{Kind: kind, children: []Node{top.children[i]}}
	top.children[i] = wrapper
	b.stack = append(b.stack, wrapper)
}

// Finish closes out the builder and returns the completed root Branch.
// Every StartNode must have been paired with exactly one FinishNode before
// Finish is called; Finish panics otherwise, since an unbalanced builder
// is always a bug in the parser driving it, never a consequence of
// malformed input (malformed input produces Failures, not unbalanced
// builder events).
func (b *Builder) Finish() *Branch {
	invariant.Invariant(b.root != nil && len(b.stack) == 0, "builder finished with %d open nodes, want 0", len(b.stack))
	b.stack = nil
	b.done = true
	return b.root
}
