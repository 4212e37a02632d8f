package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptandcompile/vb6parse-sub002/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexIdentifierVersusKeyword(t *testing.T) {
	toks, failures := New("t.bas", []byte("Dim Optional")).Lex()
	require.Empty(t, failures)
	require.Equal(t, []token.Kind{token.DimKeyword, token.Whitespace, token.OptionalKeyword, token.EOF}, kinds(toks))
}

func TestLexKeywordSpellingIsCaseInsensitive(t *testing.T) {
	toks, failures := New("t.bas", []byte("dIm")).Lex()
	require.Empty(t, failures)
	require.Equal(t, []token.Kind{token.DimKeyword, token.EOF}, kinds(toks))
}

func TestLexStringLiteralWithEscapedQuote(t *testing.T) {
	src := []byte(`x = "say ""hi"""`)
	toks, failures := New("t.bas", src).Lex()
	require.Empty(t, failures)
	var str token.Token
	for _, tk := range toks {
		if tk.Kind == token.StringLiteral {
			str = tk
		}
	}
	assert.Equal(t, `"say ""hi"""`, string(str.Text(src)))
}

func TestLexNumericSigils(t *testing.T) {
	src := []byte("1% 2& 3! 4# 5@ 6")
	toks, _ := New("t.bas", src).Lex()
	var got []token.Kind
	for _, tk := range toks {
		switch tk.Kind {
		case token.IntegerLiteral, token.LongLiteral, token.SingleLiteral, token.DoubleLiteral, token.CurrencyLiteral:
			got = append(got, tk.Kind)
		}
	}
	assert.Equal(t, []token.Kind{
		token.IntegerLiteral,
		token.LongLiteral,
		token.SingleLiteral,
		token.DoubleLiteral,
		token.CurrencyLiteral,
		token.IntegerLiteral,
	}, got)
}

func TestLexFloatingLiteral(t *testing.T) {
	toks, _ := New("t.bas", []byte("3.14")).Lex()
	require.Equal(t, token.DoubleLiteral, toks[0].Kind)
}

func TestLexDateLiteral(t *testing.T) {
	src := []byte("#1/1/2020#")
	toks, failures := New("t.bas", src).Lex()
	require.Empty(t, failures)
	require.Equal(t, token.DateLiteral, toks[0].Kind)
	assert.Equal(t, "#1/1/2020#", string(toks[0].Text(src)))
}

func TestLexUnterminatedHashIsOperator(t *testing.T) {
	toks, _ := New("t.bas", []byte("#5")).Lex()
	require.Equal(t, token.HashOperator, toks[0].Kind)
}

func TestLexRemComment(t *testing.T) {
	src := []byte("Rem this is a comment\nx")
	toks, _ := New("t.bas", src).Lex()
	require.Equal(t, token.RemComment, toks[0].Kind)
	assert.Equal(t, "Rem this is a comment", string(toks[0].Text(src)))
}

func TestLexApostropheLineComment(t *testing.T) {
	src := []byte("x ' trailing note\n")
	toks, _ := New("t.bas", src).Lex()
	require.Equal(t, token.Identifier, toks[0].Kind)
	require.Equal(t, token.Whitespace, toks[1].Kind)
	require.Equal(t, token.EndOfLineComment, toks[2].Kind)
	assert.Equal(t, "' trailing note", string(toks[2].Text(src)))
}

func TestLexUnknownByteRecovers(t *testing.T) {
	toks, failures := New("t.bas", []byte("x ~ y")).Lex()
	require.Len(t, failures, 1)
	assert.Equal(t, "UNKNOWN_TOKEN", string(failures[0].Kind))
	require.Contains(t, kinds(toks), token.Unknown)
	require.Contains(t, kinds(toks), token.Identifier)
}

func TestLexNonEnglishSourceIsFatal(t *testing.T) {
	src := make([]byte, 200)
	for i := range src {
		src[i] = 0xC3
	}
	toks, failures := New("t.bas", src).Lex()
	assert.Nil(t, toks)
	require.Len(t, failures, 1)
	assert.True(t, failures[0].Fatal())
}

func TestLexTracksLineAndColumn(t *testing.T) {
	src := []byte("a\nb")
	toks, _ := New("t.bas", src).Lex()
	require.True(t, len(toks) >= 3)
	assert.Equal(t, 1, toks[0].Line)
	// toks[1] is the newline, toks[2] is "b" on line 2.
	var b token.Token
	for _, tk := range toks {
		if tk.Kind == token.Identifier && string(tk.Text(src)) == "b" {
			b = tk
		}
	}
	assert.Equal(t, 2, b.Line)
	assert.Equal(t, 1, b.Column)
}

func TestLexOperators(t *testing.T) {
	src := []byte("<= >= <> = < >")
	toks, _ := New("t.bas", src).Lex()
	var got []token.Kind
	for _, tk := range toks {
		if tk.Kind != token.Whitespace && tk.Kind != token.EOF {
			got = append(got, tk.Kind)
		}
	}
	assert.Equal(t, []token.Kind{
		token.LessThanEqualOperator,
		token.GreaterThanEqualOperator,
		token.NotEqualOperator,
		token.EqualityOperator,
		token.LessThanOperator,
		token.GreaterThanOperator,
	}, got)
}

// assertKinds diffs the lexed kind sequence against want with cmp.Diff
// rather than a single require.Equal, so a mismatch reports exactly which
// index diverged instead of only "not equal" — useful once a table grows
// past a handful of tokens.
func assertKinds(t *testing.T, want []token.Kind, toks []token.Token) {
	t.Helper()
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLexFullStatementTokenSequence(t *testing.T) {
	toks, failures := New("t.bas", []byte("Dim x As Integer\n")).Lex()
	require.Empty(t, failures)
	assertKinds(t, []token.Kind{
		token.DimKeyword,
		token.Whitespace,
		token.Identifier,
		token.Whitespace,
		token.AsKeyword,
		token.Whitespace,
		token.IntegerKeyword,
		token.Newline,
		token.EOF,
	}, toks)
}

func TestLexCRLFIsSingleNewlineToken(t *testing.T) {
	toks, failures := New("t.bas", []byte("x\r\ny")).Lex()
	require.Empty(t, failures)
	assertKinds(t, []token.Kind{
		token.Identifier, token.Newline, token.Identifier, token.EOF,
	}, toks)
}

func TestLexBareCRIsNewlineToken(t *testing.T) {
	toks, failures := New("t.bas", []byte("x\ry")).Lex()
	require.Empty(t, failures)
	assertKinds(t, []token.Kind{
		token.Identifier, token.Newline, token.Identifier, token.EOF,
	}, toks)
}

func TestLexCRLFTracksLineAndColumn(t *testing.T) {
	src := []byte("a\r\nb")
	toks, _ := New("t.bas", src).Lex()
	var b token.Token
	for _, tk := range toks {
		if tk.Kind == token.Identifier && string(tk.Text(src)) == "b" {
			b = tk
		}
	}
	assert.Equal(t, 2, b.Line)
	assert.Equal(t, 1, b.Column)
}

func TestLexVariableNameTooLong(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	_, failures := New("t.bas", long).Lex()
	require.Len(t, failures, 1)
	assert.Equal(t, "VARIABLE_NAME_TOO_LONG", string(failures[0].Kind))
}
