package cstfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vb6parse "github.com/scriptandcompile/vb6parse-sub002"
)

func TestWriteReadRoundTrips(t *testing.T) {
	tree, _ := vb6parse.ParseText("t.bas", []byte("Dim x As Integer\nx = 5\n"))

	var buf bytes.Buffer
	hash, err := Write(&buf, tree)
	require.NoError(t, err)
	assert.NotZero(t, hash)

	node, readHash, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, hash, readHash)
	require.NotNil(t, node)
	assert.Equal(t, "Root", node.Kind)
}

func TestWriteIsDeterministic(t *testing.T) {
	tree, _ := vb6parse.ParseText("t.bas", []byte("x = 5\n"))

	var a, b bytes.Buffer
	hashA, err := Write(&a, tree)
	require.NoError(t, err)
	hashB, err := Write(&b, tree)
	require.NoError(t, err)

	assert.Equal(t, hashA, hashB)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte("not a valid snapshot header...")))
	assert.Error(t, err)
}
