// Package lexer turns raw source bytes into a flat token.Token stream.
// Every Token.Span slices the original input; string literals keep their
// "" escapes verbatim rather than being unescaped.
//
// It is a hand-written character-class lexer: a functional-options Config,
// byte-table classification instead of per-rune comparisons, and one lex*
// method per token family dispatched from a single switch.
package lexer

import (
	"strings"

	"github.com/scriptandcompile/vb6parse-sub002/bytestream"
	"github.com/scriptandcompile/vb6parse-sub002/internal/failure"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// nonEnglishThreshold is the fraction of high-bit bytes above which a file
// is presumed to be in a non-English encoding the lexer was never built to
// classify. VB6 source is single-byte, mostly-ASCII text; legitimate
// source trips this only in string/comment content, which stays well
// under 1%.
const nonEnglishThreshold = 0.01

// Config holds lexer configuration, set via LexerOpt.
type Config struct {
	maxIdentifierLen int
}

// LexerOpt configures a Lexer at construction.
type LexerOpt func(*Config)

// WithMaxIdentifierLen overrides the identifier length cap used to emit
// VariableNameTooLong failures. The VB6 default is 254 bytes.
func WithMaxIdentifierLen(n int) LexerOpt {
	return func(c *Config) { c.maxIdentifierLen = n }
}

func defaultConfig() Config {
	return Config{maxIdentifierLen: 254}
}

// Lexer scans one source file into a token.Token stream.
type Lexer struct {
	stream   *bytestream.Stream
	src      []byte
	cfg      Config
	failures []failure.Failure
}

// New constructs a Lexer over src, identified by fileName for diagnostics.
func New(fileName string, src []byte, opts ...LexerOpt) *Lexer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Lexer{stream: bytestream.New(fileName, src), src: src, cfg: cfg}
}

// Lex scans the entire input and returns its tokens plus any recoverable
// failures collected along the way. If the input is fatally
// non-English, tokens is nil and the sole failure is
// failure.LikelyNonEnglishCharacterSet — callers must check Failure.Fatal().
func (l *Lexer) Lex() ([]token.Token, []failure.Failure) {
	if looksNonEnglish(l.stream.Peek(l.stream.Len())) {
		return nil, []failure.Failure{failure.New(
			l.stream.FileName, 0, failure.LikelyNonEnglishCharacterSet,
			"more than %.0f%% of bytes are outside the 7-bit ASCII range", nonEnglishThreshold*100,
		)}
	}

	var tokens []token.Token
	for {
		tok := l.next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, l.failures
}

// looksNonEnglish reports whether more than nonEnglishThreshold of src's
// bytes have the high bit set.
func looksNonEnglish(src []byte) bool {
	if len(src) == 0 {
		return false
	}
	highBit := 0
	for _, b := range src {
		if b >= 0x80 {
			highBit++
		}
	}
	return float64(highBit)/float64(len(src)) > nonEnglishThreshold
}

func (l *Lexer) mark() (line, col, off int) {
	return l.stream.Line(), l.stream.Column(), l.stream.Offset()
}

func (l *Lexer) emit(kind token.Kind, startOff, startLine, startCol int) token.Token {
	return token.Token{
		Kind:   kind,
		Span:   token.Span{Start: startOff, End: l.stream.Offset()},
		Line:   startLine,
		Column: startCol,
	}
}

// next scans and returns the single next token.
func (l *Lexer) next() token.Token {
	if l.stream.IsEmpty() {
		line, col, off := l.mark()
		return l.emit(token.EOF, off, line, col)
	}

	b, _ := l.stream.PeekByte(0)

	switch {
	case b == '\n' || b == '\r':
		return l.lexNewline()
	case b < 128 && isWhitespace[b]:
		return l.lexWhitespace()
	case b == '\'':
		return l.lexLineComment()
	case b < 128 && isIdentStart[b]:
		return l.lexIdentifierOrKeyword()
	case b == '"':
		return l.lexString()
	case b == '#':
		return l.lexHashOrDate()
	case b < 128 && isDigit[b]:
		return l.lexNumber()
	case b == '.' && l.peekIsDigit(1):
		return l.lexNumber()
	default:
		return l.lexOperatorOrUnknown(b)
	}
}

func (l *Lexer) peekIsDigit(n int) bool {
	b, ok := l.stream.PeekByte(n)
	return ok && b < 128 && isDigit[b]
}

// lexNewline consumes a single line terminator as one Newline token,
// covering all three forms VB6 source may carry: "\r\n" (the Windows
// norm), bare "\n", and bare "\r". A "\r" is always folded into the same
// Newline token as a following "\n" — it never surfaces as its own
// Whitespace token.
func (l *Lexer) lexNewline() token.Token {
	line, col, off := l.mark()
	b, _ := l.stream.PeekByte(0)
	l.stream.AdvanceN(1)
	if b == '\r' {
		if nb, ok := l.stream.PeekByte(0); ok && nb == '\n' {
			l.stream.AdvanceN(1)
		}
	}
	return l.emit(token.Newline, off, line, col)
}

func (l *Lexer) lexWhitespace() token.Token {
	line, col, off := l.mark()
	for {
		b, ok := l.stream.PeekByte(0)
		if !ok || b >= 128 || !isWhitespace[b] {
			break
		}
		l.stream.AdvanceN(1)
	}
	return l.emit(token.Whitespace, off, line, col)
}

// lexLineComment consumes a ' comment to end of line, excluding the
// newline: the newline itself is a separate, meaningful trivia token.
func (l *Lexer) lexLineComment() token.Token {
	line, col, off := l.mark()
	l.stream.AdvanceN(1) // leading '
	for {
		b, ok := l.stream.PeekByte(0)
		if !ok || b == '\n' || b == '\r' {
			break
		}
		l.stream.AdvanceN(1)
	}
	return l.emit(token.EndOfLineComment, off, line, col)
}

// lexIdentifierOrKeyword reads a maximal run of ident-part bytes, then
// classifies it as Rem comment, keyword, or plain identifier — in that
// order, matching VB6's treatment of "Rem" as a comment-introducing keyword.
func (l *Lexer) lexIdentifierOrKeyword() token.Token {
	line, col, off := l.mark()
	for {
		b, ok := l.stream.PeekByte(0)
		if !ok || b >= 128 || !isIdentPart[b] {
			break
		}
		l.stream.AdvanceN(1)
	}

	start := off
	end := l.stream.Offset()
	raw := string(l.src[start:end])

	if strings.EqualFold(raw, "Rem") {
		for {
			b, ok := l.stream.PeekByte(0)
			if !ok || b == '\n' || b == '\r' {
				break
			}
			l.stream.AdvanceN(1)
		}
		return l.emit(token.RemComment, off, line, col)
	}

	if end-start > l.cfg.maxIdentifierLen {
		l.failures = append(l.failures, failure.New(
			l.stream.FileName, start, failure.VariableNameTooLong,
			"identifier %q is %d bytes, exceeds the %d-byte limit", raw, end-start, l.cfg.maxIdentifierLen,
		))
	}

	if kind, ok := lookupKeyword(raw); ok {
		return l.emit(kind, off, line, col)
	}
	return l.emit(token.Identifier, off, line, col)
}

// lexString reads a double-quoted string literal, including the VB6 ""
// escape for an embedded quote.
func (l *Lexer) lexString() token.Token {
	line, col, off := l.mark()
	l.stream.AdvanceN(1) // opening quote
	for {
		b, ok := l.stream.PeekByte(0)
		if !ok || b == '\n' || b == '\r' {
			break // unterminated: stop at EOL, matching VB6's own behavior
		}
		if b == '"' {
			if next, ok2 := l.stream.PeekByte(1); ok2 && next == '"' {
				l.stream.AdvanceN(2) // escaped quote
				continue
			}
			l.stream.AdvanceN(1) // closing quote
			break
		}
		l.stream.AdvanceN(1)
	}
	return l.emit(token.StringLiteral, off, line, col)
}

// lexHashOrDate disambiguates the Double-literal sigil '#' from a date
// literal delimiter: a date literal opens with '#' and must close with a
// second '#' before end of line. Anything else is a bare HashOperator,
// left for the numeric-sigil path or an expression's own use.
func (l *Lexer) lexHashOrDate() token.Token {
	line, col, off := l.mark()
	cp := l.stream.Checkpoint()
	l.stream.AdvanceN(1) // opening #
	for {
		b, ok := l.stream.PeekByte(0)
		if !ok || b == '\n' || b == '\r' {
			l.stream.Reset(cp)
			l.stream.AdvanceN(1)
			return l.emit(token.HashOperator, off, line, col)
		}
		if b == '#' {
			l.stream.AdvanceN(1)
			return l.emit(token.DateLiteral, off, line, col)
		}
		l.stream.AdvanceN(1)
	}
}

// lexNumber reads an integer or floating literal, an optional exponent
// (E/e for Single/Double, D/d for Double), and an optional trailing type
// sigil (%, &, !, #, @), classifying the result into the matching numeric
// literal kind.
func (l *Lexer) lexNumber() token.Token {
	line, col, off := l.mark()
	isFloat := false

	if b, _ := l.stream.PeekByte(0); b == '.' {
		l.stream.AdvanceN(1)
		l.readDigits()
		isFloat = true
	} else {
		l.readDigits()
		if b, ok := l.stream.PeekByte(0); ok && b == '.' {
			l.stream.AdvanceN(1)
			l.readDigits()
			isFloat = true
		}
	}

	exponentIsDouble := false
	if b, ok := l.stream.PeekByte(0); ok && (b == 'e' || b == 'E' || b == 'd' || b == 'D') {
		exponentIsDouble = b == 'd' || b == 'D'
		l.stream.AdvanceN(1)
		if sign, ok2 := l.stream.PeekByte(0); ok2 && (sign == '+' || sign == '-') {
			l.stream.AdvanceN(1)
		}
		l.readDigits()
		isFloat = true
	}

	kind := token.IntegerLiteral
	switch {
	case exponentIsDouble:
		kind = token.DoubleLiteral
	case isFloat:
		kind = token.DoubleLiteral
	}

	if sigil, ok := l.stream.PeekByte(0); ok {
		switch sigil {
		case '%':
			l.stream.AdvanceN(1)
			kind = token.IntegerLiteral
		case '&':
			l.stream.AdvanceN(1)
			kind = token.LongLiteral
		case '!':
			l.stream.AdvanceN(1)
			kind = token.SingleLiteral
		case '#':
			l.stream.AdvanceN(1)
			kind = token.DoubleLiteral
		case '@':
			l.stream.AdvanceN(1)
			kind = token.CurrencyLiteral
		}
	}

	return l.emit(kind, off, line, col)
}

func (l *Lexer) readDigits() bool {
	start := l.stream.Offset()
	for {
		b, ok := l.stream.PeekByte(0)
		if !ok || b >= 128 || !isDigit[b] {
			break
		}
		l.stream.AdvanceN(1)
	}
	return l.stream.Offset() > start
}

// lexOperatorOrUnknown handles every single- and double-byte
// operator/punctuation token, falling back to a recoverable UnknownToken
// failure for anything else.
func (l *Lexer) lexOperatorOrUnknown(b byte) token.Token {
	line, col, off := l.mark()

	two := func(second byte, twoKind, oneKind token.Kind) token.Token {
		l.stream.AdvanceN(1)
		if nb, ok := l.stream.PeekByte(0); ok && nb == second {
			l.stream.AdvanceN(1)
			return l.emit(twoKind, off, line, col)
		}
		return l.emit(oneKind, off, line, col)
	}

	switch b {
	case '=':
		l.stream.AdvanceN(1)
		return l.emit(token.EqualityOperator, off, line, col)
	case '<':
		l.stream.AdvanceN(1)
		if nb, ok := l.stream.PeekByte(0); ok {
			if nb == '=' {
				l.stream.AdvanceN(1)
				return l.emit(token.LessThanEqualOperator, off, line, col)
			}
			if nb == '>' {
				l.stream.AdvanceN(1)
				return l.emit(token.NotEqualOperator, off, line, col)
			}
		}
		return l.emit(token.LessThanOperator, off, line, col)
	case '>':
		return two('=', token.GreaterThanEqualOperator, token.GreaterThanOperator)
	case '+':
		l.stream.AdvanceN(1)
		return l.emit(token.PlusOperator, off, line, col)
	case '-':
		l.stream.AdvanceN(1)
		return l.emit(token.MinusOperator, off, line, col)
	case '*':
		l.stream.AdvanceN(1)
		return l.emit(token.MultiplyOperator, off, line, col)
	case '/':
		l.stream.AdvanceN(1)
		return l.emit(token.DivideOperator, off, line, col)
	case '\\':
		l.stream.AdvanceN(1)
		return l.emit(token.IntegerDivideOperator, off, line, col)
	case '^':
		l.stream.AdvanceN(1)
		return l.emit(token.ExponentOperator, off, line, col)
	case '(':
		l.stream.AdvanceN(1)
		return l.emit(token.LeftParenthesis, off, line, col)
	case ')':
		l.stream.AdvanceN(1)
		return l.emit(token.RightParenthesis, off, line, col)
	case ',':
		l.stream.AdvanceN(1)
		return l.emit(token.CommaOperator, off, line, col)
	case '.':
		l.stream.AdvanceN(1)
		return l.emit(token.PeriodOperator, off, line, col)
	case ':':
		l.stream.AdvanceN(1)
		return l.emit(token.ColonOperator, off, line, col)
	case ';':
		l.stream.AdvanceN(1)
		return l.emit(token.SemicolonOperator, off, line, col)
	case '!':
		l.stream.AdvanceN(1)
		return l.emit(token.BangOperator, off, line, col)
	case '$':
		l.stream.AdvanceN(1)
		return l.emit(token.DollarSign, off, line, col)
	case '%':
		l.stream.AdvanceN(1)
		return l.emit(token.PercentSign, off, line, col)
	case '&':
		l.stream.AdvanceN(1)
		return l.emit(token.AmpersandOperator, off, line, col)
	case '@':
		l.stream.AdvanceN(1)
		return l.emit(token.AtSign, off, line, col)
	case '[':
		l.stream.AdvanceN(1)
		return l.emit(token.LeftBracket, off, line, col)
	case ']':
		l.stream.AdvanceN(1)
		return l.emit(token.RightBracket, off, line, col)
	case '_':
		l.stream.AdvanceN(1)
		return l.emit(token.UnderscoreOperator, off, line, col)
	default:
		l.stream.AdvanceN(1)
		l.failures = append(l.failures, failure.New(
			l.stream.FileName, off, failure.UnknownToken,
			"unrecognized byte %q", b,
		))
		return l.emit(token.Unknown, off, line, col)
	}
}
