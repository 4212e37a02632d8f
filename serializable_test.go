package vb6parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSerializableShapesLeavesAndBranches(t *testing.T) {
	tree, _ := ParseText("t.bas", []byte("x = 5\n"))
	node := tree.ToSerializable()

	require.Equal(t, "Root", node.Kind)
	assert.Nil(t, node.Text)
	require.Len(t, node.Children, 1)

	stmt := node.Children[0]
	assert.Equal(t, "AssignmentStatement", stmt.Kind)
	assert.Nil(t, stmt.Text)
	require.NotEmpty(t, stmt.Children)

	leaf := stmt.Children[0]
	assert.Equal(t, "Identifier", leaf.Kind)
	require.NotNil(t, leaf.Text)
	assert.Equal(t, "x", *leaf.Text)
	assert.Nil(t, leaf.Children)
}

func TestDebugYAMLRoundTripsThroughYAMLSyntax(t *testing.T) {
	tree, _ := ParseText("t.bas", []byte("x = 5\n"))
	out, err := tree.DebugYAML()
	require.NoError(t, err)
	assert.Contains(t, out, "kind: Root")
	assert.Contains(t, out, "kind: AssignmentStatement")
}
