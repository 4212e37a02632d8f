// Package vb6parse is the external surface of the lexer/CST pipeline. It
// wires the byte stream, lexer, and parser together behind a small set of
// entry points and one tree type: a single call does lex-then-parse, and
// the returned Cst is a thin, read-only view over the parser's green tree.
package vb6parse

import (
	"fmt"
	"strings"

	"github.com/scriptandcompile/vb6parse-sub002/cst"
	"github.com/scriptandcompile/vb6parse-sub002/internal/failure"
	"github.com/scriptandcompile/vb6parse-sub002/lexer"
	"github.com/scriptandcompile/vb6parse-sub002/parser"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// Failures is the non-fatal failure list returned alongside a Cst.
type Failures = []failure.Failure

// Cst is the parsed tree handed back to callers. It owns the root Branch
// and the file name it was parsed from; it never re-exposes the builder
// that produced it — the builder's write-once discipline ends at this
// boundary.
type Cst struct {
	fileName string
	root     *cst.Branch
}

// ParseText lexes and parses source, returning a Cst unless the lexer's
// English-script gate fires, in which case the first return is nil and
// Failures holds exactly the fatal LikelyNonEnglishCharacterSet record.
func ParseText(fileName string, source []byte) (*Cst, Failures) {
	lx := lexer.New(fileName, source)
	toks, lexFailures := lx.Lex()
	if fatalOnly(lexFailures) {
		return nil, lexFailures
	}

	p := parser.New(fileName, source, toks)
	root, parseFailures := p.Parse()

	all := make(Failures, 0, len(lexFailures)+len(parseFailures))
	all = append(all, lexFailures...)
	all = append(all, parseFailures...)
	return &Cst{fileName: fileName, root: root}, all
}

// ParseFromText is an alias for ParseText, for symmetry with callers that
// migrated from an earlier "FromText" constructor name.
func ParseFromText(fileName string, source []byte) (*Cst, Failures) {
	return ParseText(fileName, source)
}

// FromText is a second alias for ParseText.
func FromText(fileName string, source []byte) (*Cst, Failures) {
	return ParseText(fileName, source)
}

func fatalOnly(fails []failure.Failure) bool {
	for _, f := range fails {
		if f.Fatal() {
			return true
		}
	}
	return false
}

// FileName returns the name the tree was parsed under.
func (c *Cst) FileName() string { return c.fileName }

// Children returns the root's direct children.
func (c *Cst) Children() []cst.Node { return c.root.Children() }

// ChildCount returns the number of the root's direct children.
func (c *Cst) ChildCount() int { return c.root.ChildCount() }

// RootKind returns the syntax kind of the root node; always cst.Root for a
// tree produced by ParseText, but callers (e.g. snapshot tooling) can
// compare without importing the cst package's Kind constants directly.
func (c *Cst) RootKind() string { return c.root.Kind.String() }

// Text returns the round-trip string: the concatenation of every leaf in
// the tree, which for a well-tokenized input equals the original source
// byte-for-byte.
func (c *Cst) Text() string { return c.root.Text() }

// DebugTree renders a multi-line, indented, human-readable listing of
// every node's kind and (for leaves) text slice.
func (c *Cst) DebugTree() string {
	var sb strings.Builder
	debugWrite(&sb, c.root, 0)
	return sb.String()
}

func debugWrite(sb *strings.Builder, n cst.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *cst.Branch:
		fmt.Fprintf(sb, "%s%s\n", indent, v.Kind)
		for _, child := range v.Children() {
			debugWrite(sb, child, depth+1)
		}
	case *cst.Leaf:
		fmt.Fprintf(sb, "%s%s %q\n", indent, token.Kind(v.Kind), v.Val)
	}
}

// Root exposes the underlying root Branch for packages (cstfmt, cstschema)
// that need to walk the real tree rather than the debug/serializable
// views. Not part of the stable snapshot format — those go through
// ToSerializable.
func (c *Cst) Root() *cst.Branch { return c.root }
