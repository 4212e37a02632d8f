package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptandcompile/vb6parse-sub002/cst"
	"github.com/scriptandcompile/vb6parse-sub002/lexer"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// findFirst walks depth-first for the first Branch of the given kind.
func findFirst(n cst.Node, kind cst.Kind) *cst.Branch {
	br, ok := n.(*cst.Branch)
	if !ok {
		return nil
	}
	if br.Kind == kind {
		return br
	}
	for _, c := range br.Children() {
		if found := findFirst(c, kind); found != nil {
			return found
		}
	}
	return nil
}

// P1: lossless round-trip.
func TestParseRoundTripsArbitraryInput(t *testing.T) {
	inputs := []string{
		"x = 5\n",
		"Dim y As Integer\n",
		"If a Then\n    b = 1\nEnd If\n",
		"MySub arg1, arg2\n",
		"' just a comment\n",
		"",
	}
	for _, src := range inputs {
		toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
		require.Empty(t, lexFailures)
		root, _ := New("t.bas", []byte(src), toks).Parse()
		assert.Equal(t, src, root.Text())
	}
}

// P2: whitespace preservation, flat AssignmentStatement shape.
func TestParseAssignmentPreservesWhitespace(t *testing.T) {
	src := "x   =   5"
	toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
	require.Empty(t, lexFailures)
	root, _ := New("t.bas", []byte(src), toks).Parse()
	assign := findFirst(root, cst.AssignmentStatement)
	require.NotNil(t, assign)
	assert.Equal(t, src, assign.Text())
}

// P3: keyword-as-identifier promotion.
func TestParseKeywordAsIdentifierPromotion(t *testing.T) {
	src := "text = \"hello\"\n"
	toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
	require.Empty(t, lexFailures)
	root, _ := New("t.bas", []byte(src), toks).Parse()
	assign := findFirst(root, cst.AssignmentStatement)
	require.NotNil(t, assign)
	first := assign.Children()[0].(*cst.Leaf)
	assert.Equal(t, token.Identifier, token.Kind(first.Kind))
	assert.Equal(t, "text", first.Val)
}

// P4: assignment vs. procedure call across all four shapes.
func TestParseAssignmentVersusProcedureCall(t *testing.T) {
	cases := []struct {
		src  string
		kind cst.Kind
	}{
		{"x = 5\n", cst.AssignmentStatement},
		{"MySub\n", cst.CallStatement},
		{"MySub arg1, arg2\n", cst.CallStatement},
		{"MySub(a, b)\n", cst.CallStatement},
		{"obj.text = 1\n", cst.AssignmentStatement},
	}
	for _, c := range cases {
		toks, lexFailures := lexer.New("t.bas", []byte(c.src)).Lex()
		require.Empty(t, lexFailures, c.src)
		root, _ := New("t.bas", []byte(c.src), toks).Parse()
		found := findFirst(root, c.kind)
		assert.NotNil(t, found, "expected %s in %q", c.kind, c.src)
	}
}

func TestParseObjTextAssignmentLhsShape(t *testing.T) {
	src := "obj.text = 1\n"
	toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
	require.Empty(t, lexFailures)
	root, _ := New("t.bas", []byte(src), toks).Parse()
	assign := findFirst(root, cst.AssignmentStatement)
	require.NotNil(t, assign)
	kids := assign.Children()
	require.True(t, len(kids) >= 3)
	assert.Equal(t, "obj", kids[0].(*cst.Leaf).Val)
	assert.Equal(t, token.PeriodOperator, token.Kind(kids[1].(*cst.Leaf).Kind))
	assert.Equal(t, "text", kids[2].(*cst.Leaf).Val)
}

// P5: Let statement.
func TestParseLetStatement(t *testing.T) {
	src := "Let myVar = 10\n"
	toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
	require.Empty(t, lexFailures)
	root, _ := New("t.bas", []byte(src), toks).Parse()
	let := findFirst(root, cst.LetStatement)
	require.NotNil(t, let)
	assert.Equal(t, token.LetKeyword, token.Kind(let.Children()[0].(*cst.Leaf).Kind))
	assert.Equal(t, src, let.Text())
}

// P6: Property Get block.
func TestParsePropertyGetBlock(t *testing.T) {
	src := "Property Get Name() As String\n    Name = m_name\nEnd Property\n"
	toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
	require.Empty(t, lexFailures)
	root, failures := New("t.bas", []byte(src), toks).Parse()
	require.Empty(t, failures)
	prop := findFirst(root, cst.PropertyStatement)
	require.NotNil(t, prop)
	assert.NotNil(t, findFirst(prop, cst.ParameterList))
	assign := findFirst(prop, cst.AssignmentStatement)
	assert.NotNil(t, assign)
	assert.Equal(t, src, root.Text())
}

// P7: multi-statement inline If.
func TestParseInlineIfStatementBody(t *testing.T) {
	src := "Sub S()\nIf cond Then Let x = 5\nEnd Sub\n"
	toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
	require.Empty(t, lexFailures)
	root, _ := New("t.bas", []byte(src), toks).Parse()
	ifStmt := findFirst(root, cst.IfStatement)
	require.NotNil(t, ifStmt)
	assert.NotNil(t, findFirst(ifStmt, cst.LetStatement))
}

// P9: label disambiguation.
func TestParseLabelVersusIdentifierUse(t *testing.T) {
	src := "MyLabel:\nx = 1\n"
	toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
	require.Empty(t, lexFailures)
	root, _ := New("t.bas", []byte(src), toks).Parse()
	label := findFirst(root, cst.LabelStatement)
	require.NotNil(t, label)
	assign := findFirst(root, cst.AssignmentStatement)
	require.NotNil(t, assign)

	src2 := "x = MyLabel\n"
	toks2, lexFailures2 := lexer.New("t.bas", []byte(src2)).Lex()
	require.Empty(t, lexFailures2)
	root2, _ := New("t.bas", []byte(src2), toks2).Parse()
	assert.Nil(t, findFirst(root2, cst.LabelStatement))
}

// P11: ReDim Preserve.
func TestParseReDimPreserve(t *testing.T) {
	src := "ReDim Preserve arr(10) As Integer\n"
	toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
	require.Empty(t, lexFailures)
	root, _ := New("t.bas", []byte(src), toks).Parse()
	redim := findFirst(root, cst.ReDimStatement)
	require.NotNil(t, redim)
	assert.NotNil(t, findFirst(redim, cst.ArrayBounds))
	var sawIntegerKeyword bool
	var walk func(cst.Node)
	walk = func(n cst.Node) {
		if leaf, ok := n.(*cst.Leaf); ok && token.Kind(leaf.Kind) == token.IntegerKeyword {
			sawIntegerKeyword = true
		}
		if br, ok := n.(*cst.Branch); ok {
			for _, c := range br.Children() {
				walk(c)
			}
		}
	}
	walk(redim)
	assert.True(t, sawIntegerKeyword)
	assert.Equal(t, src, root.Text())
}

// P12: failure resilience around a malformed statement.
func TestParseRecoversFromMalformedStatement(t *testing.T) {
	src := "Sub A()\nx = 1\nEnd Sub\n\n~~~ bad line\n\nSub B()\ny = 2\nEnd Sub\n"
	toks, lexFailures := lexer.New("t.bas", []byte(src)).Lex()
	require.NotEmpty(t, lexFailures)
	root, _ := New("t.bas", []byte(src), toks).Parse()
	assert.Equal(t, src, root.Text())

	procs := 0
	var walk func(cst.Node)
	walk = func(n cst.Node) {
		if br, ok := n.(*cst.Branch); ok {
			if br.Kind == cst.ProcedureDefinition {
				procs++
			}
			for _, c := range br.Children() {
				walk(c)
			}
		}
	}
	walk(root)
	assert.Equal(t, 2, procs)
}
