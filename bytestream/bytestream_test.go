package bytestream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceTracksLineAndColumn(t *testing.T) {
	s := New("t.bas", []byte("ab\ncd\nef"))

	s.AdvanceN(2)
	assert.Equal(t, 1, s.Line())
	assert.Equal(t, 3, s.Column())

	s.AdvanceN(1) // consume the newline
	assert.Equal(t, 2, s.Line())
	assert.Equal(t, 1, s.Column())

	s.AdvanceN(3) // "cd\n"
	assert.Equal(t, 3, s.Line())
	assert.Equal(t, 1, s.Column())
}

func TestCheckpointAndReset(t *testing.T) {
	s := New("t.bas", []byte("Optional x"))

	cp := s.Checkpoint()
	s.AdvanceN(8) // "Optional"
	require.Equal(t, 8, s.Offset())

	s.Reset(cp)
	assert.Equal(t, 0, s.Offset())
	assert.Equal(t, 1, s.Line())
	assert.Equal(t, 1, s.Column())
}

func TestPeekNeverPanicsPastEnd(t *testing.T) {
	s := New("t.bas", []byte("ab"))

	assert.Equal(t, []byte("ab"), s.Peek(10))
	s.AdvanceN(2)
	assert.Nil(t, s.Peek(1))
	assert.True(t, s.IsEmpty())

	_, ok := s.PeekByte(0)
	assert.False(t, ok)
}

func TestPeekByte(t *testing.T) {
	s := New("t.bas", []byte("xy"))
	b, ok := s.PeekByte(0)
	require.True(t, ok)
	assert.Equal(t, byte('x'), b)

	b, ok = s.PeekByte(1)
	require.True(t, ok)
	assert.Equal(t, byte('y'), b)
}
