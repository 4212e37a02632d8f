package token

import "fmt"

// Span is a half-open byte range [Start, End) into the original input.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Token is an atomic lexeme: a classification paired with the byte range it
// came from. Token never owns a copy of the text — callers slice it from
// the original input via Span.
type Token struct {
	Kind Kind
	Span Span
	// Line and Column are the 1-based position of Span.Start, tracked by
	// the byte stream for diagnostics; they play no role in round-tripping.
	Line   int
	Column int
}

// Text returns the token's verbatim source bytes.
func (t Token) Text(src []byte) []byte {
	if t.Span.Start < 0 || t.Span.End > len(src) || t.Span.Start > t.Span.End {
		return nil
	}
	return src[t.Span.Start:t.Span.End]
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d:%d[%d,%d)", t.Kind, t.Line, t.Column, t.Span.Start, t.Span.End)
}
