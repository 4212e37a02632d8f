package vb6parse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// P1: lossless round-trip through the public API.
func TestParseTextRoundTrips(t *testing.T) {
	inputs := []string{
		"x   =   5",
		"Dim y As Integer\nobj.text = 1\n",
		"If cond Then Let x = 5\n",
		"MyLabel:\nx = 1\n",
	}
	for _, src := range inputs {
		tree, failures := ParseText("t.bas", []byte(src))
		require.NotNil(t, tree)
		for _, f := range failures {
			require.False(t, f.Fatal())
		}
		assert.Equal(t, src, tree.Text())
	}
}

// P8: the English-script gate returns a nil tree and exactly the fatal
// failure.
func TestParseTextEnglishGate(t *testing.T) {
	src := bytes.Repeat([]byte{0xC3, 0xA9}, 100) // "é" repeated, all high-bit
	tree, failures := ParseText("t.bas", src)
	assert.Nil(t, tree)
	require.Len(t, failures, 1)
	assert.True(t, failures[0].Fatal())
}

func TestParseFromTextAndFromTextAliasParseText(t *testing.T) {
	src := []byte("x = 1\n")
	a, _ := ParseText("t.bas", src)
	b, _ := ParseFromText("t.bas", src)
	c, _ := FromText("t.bas", src)
	assert.Equal(t, a.Text(), b.Text())
	assert.Equal(t, a.Text(), c.Text())
}

func TestCstDebugTreeListsKindsAndText(t *testing.T) {
	tree, _ := ParseText("t.bas", []byte("x = 5\n"))
	out := tree.DebugTree()
	assert.True(t, strings.Contains(out, "Root"))
	assert.True(t, strings.Contains(out, "AssignmentStatement"))
	assert.True(t, strings.Contains(out, `"x"`))
}

func TestCstChildrenAndRootKind(t *testing.T) {
	tree, _ := ParseText("t.bas", []byte("x = 5\n"))
	assert.Equal(t, "Root", tree.RootKind())
	assert.Equal(t, 1, tree.ChildCount())
	assert.Len(t, tree.Children(), 1)
}

// FuzzParseTextRoundTrips exercises P1 (lossless round-trip) over
// arbitrary byte strings: whatever ParseText accepts, concatenating every
// leaf back together must reproduce the input exactly. A nil tree means
// the English-script gate fired, which is the one case where there is no
// tree to check — every other input must round-trip.
func FuzzParseTextRoundTrips(f *testing.F) {
	seeds := []string{
		"",
		"x = 5\n",
		"x   =   5",
		"Dim y As Integer\nobj.text = 1\n",
		"If cond Then Let x = 5\n",
		"MyLabel:\nx = 1\n",
		"x = 1\r\ny = 2\r\n",
		"x = 1\ry = 2\r",
		"' a comment\nx = 1\n",
		"Sub Foo()\nEnd Sub\n",
		"For i = 1 To 10\nNext i\n",
		"\"unterminated string",
		"Rem legacy comment\n",
		"#If DEBUG Then\nx = 1\n#End If\n",
	}
	for _, seed := range seeds {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, src []byte) {
		tree, failures := ParseText("fuzz.bas", src)
		if tree == nil {
			require.Len(t, failures, 1)
			require.True(t, failures[0].Fatal())
			return
		}
		assert.Equal(t, string(src), tree.Text())
	})
}
