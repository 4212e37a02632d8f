package vb6parse

import (
	"github.com/scriptandcompile/vb6parse-sub002/cst"
	"github.com/scriptandcompile/vb6parse-sub002/token"
	"gopkg.in/yaml.v3"
)

// SerializableNode is the data-only mirror of a Branch or Leaf. It is the
// shape that flows into cstfmt's CBOR encoder, cstschema's JSON Schema
// validator, and Cst.DebugYAML — every golden-file-diffing consumer of the
// tree goes through this struct rather than the live cst.Branch/cst.Leaf
// pair, so the snapshot format stays stable even if the in-memory tree's
// internals change.
type SerializableNode struct {
	// Kind is the node's syntax kind name (e.g. "AssignmentStatement",
	// "Identifier") — always one of the closed Kind enumerations' String()
	// spellings.
	Kind string `json:"kind" yaml:"kind" cbor:"kind"`
	// Text is set only on leaves: the verbatim token text. Omitted
	// (nil) on branches, since a branch's "text" is recoverable by
	// concatenating its children and storing it again would duplicate the
	// round-trip data redundantly in every snapshot.
	Text *string `json:"text,omitempty" yaml:"text,omitempty" cbor:"text,omitempty"`
	// Children is set only on branches; omitted on leaves.
	Children []*SerializableNode `json:"children,omitempty" yaml:"children,omitempty" cbor:"children,omitempty"`
}

// ToSerializable converts the tree to the data-only snapshot shape.
func (c *Cst) ToSerializable() *SerializableNode {
	return toSerializable(c.root)
}

func toSerializable(n cst.Node) *SerializableNode {
	switch v := n.(type) {
	case *cst.Leaf:
		text := v.Val
		return &SerializableNode{Kind: token.Kind(v.Kind).String(), Text: &text}
	case *cst.Branch:
		out := &SerializableNode{Kind: v.Kind.String()}
		children := v.Children()
		if len(children) > 0 {
			out.Children = make([]*SerializableNode, len(children))
			for i, child := range children {
				out.Children[i] = toSerializable(child)
			}
		}
		return out
	default:
		return nil
	}
}

// DebugYAML renders the serializable tree as YAML, for golden-file
// regression tests that diff a human-readable tree snapshot.
func (c *Cst) DebugYAML() (string, error) {
	out, err := yaml.Marshal(c.ToSerializable())
	if err != nil {
		return "", err
	}
	return string(out), nil
}
