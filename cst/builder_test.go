package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRoundTripsText(t *testing.T) {
	b := NewBuilder()
	b.StartNode(Root)
	b.StartNode(AssignmentStatement)
	b.Token(1, "x")
	b.Token(2, " ")
	b.Token(3, "=")
	b.Token(2, " ")
	b.Token(4, "1")
	b.FinishNode()
	b.Token(5, "\n")
	b.FinishNode()

	root := b.Finish()
	assert.Equal(t, Root, root.Kind)
	assert.Equal(t, "x = 1\n", root.Text())
	require.Equal(t, 2, root.ChildCount())
}

func TestBuilderNestsChildrenInOrder(t *testing.T) {
	b := NewBuilder()
	b.StartNode(Root)
	b.StartNode(IfStatement)
	b.Token(1, "If")
	b.StartNode(BinaryExpression)
	b.Token(1, "a")
	b.Token(1, "=")
	b.Token(1, "b")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()

	root := b.Finish()
	stmt, ok := root.Children()[0].(*Branch)
	require.True(t, ok)
	assert.Equal(t, IfStatement, stmt.Kind)
	require.Equal(t, 2, stmt.ChildCount())

	expr, ok := stmt.Children()[1].(*Branch)
	require.True(t, ok)
	assert.Equal(t, BinaryExpression, expr.Kind)
	assert.Equal(t, "a=b", expr.Text())
}

func TestBuilderFinishPanicsWhenUnbalanced(t *testing.T) {
	b := NewBuilder()
	b.StartNode(Root)
	b.StartNode(CallStatement)
	assert.Panics(t, func() {
		b.Finish()
	})
}

func TestBuilderTokenPanicsWithNoOpenNode(t *testing.T) {
	b := NewBuilder()
	assert.Panics(t, func() {
		b.Token(1, "x")
	})
}
