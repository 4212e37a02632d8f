package cstschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vb6parse "github.com/scriptandcompile/vb6parse-sub002"
)

func TestValidateAcceptsAParsedTree(t *testing.T) {
	tree, _ := vb6parse.ParseText("t.bas", []byte("Dim x As Integer\nIf x Then\n    x = 1\nEnd If\n"))
	require.NotNil(t, tree)
	assert.NoError(t, Validate(tree))
}

func TestValidateAcceptsEmptyModule(t *testing.T) {
	tree, _ := vb6parse.ParseText("t.bas", []byte(""))
	require.NotNil(t, tree)
	assert.NoError(t, Validate(tree))
}
