// Package parser implements the recursive-descent CST driver, its embedded
// Pratt expression parser, and the lookahead-disambiguated statement
// dispatcher.
//
// A Parser struct owns a token cursor and a tree builder, configured
// through a ParserOpt functional options surface, and accumulates a
// never-unwinds failure list that the main loop keeps appending to
// instead of returning early.
package parser

import (
	"log/slog"

	"github.com/scriptandcompile/vb6parse-sub002/cst"
	"github.com/scriptandcompile/vb6parse-sub002/internal/dispatch"
	"github.com/scriptandcompile/vb6parse-sub002/internal/failure"
	"github.com/scriptandcompile/vb6parse-sub002/internal/invariant"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// ParserOpt configures a Parser at construction.
type ParserOpt func(*Parser)

// WithLogger attaches a debug logger; nil-safe. A single optional
// *slog.Logger is enough here since the parser has no hot per-token path
// worth gating behind a tiered verbosity enum.
func WithLogger(l *slog.Logger) ParserOpt {
	return func(p *Parser) { p.log = l }
}

// Parser walks a token vector and emits start/finish/token events to a
// cst.Builder.
type Parser struct {
	fileName string
	src      []byte
	toks     []token.Token
	pos      int

	builder *cst.Builder
	log     *slog.Logger

	// parsingHeader is true until the first non-header top-level item is
	// seen; header-only constructs (Attribute, VERSION, Begin…End) are only
	// recognized while it holds.
	parsingHeader bool

	failures []failure.Failure
}

// New constructs a Parser over a pre-lexed token stream.
func New(fileName string, src []byte, toks []token.Token, opts ...ParserOpt) *Parser {
	p := &Parser{
		fileName:      fileName,
		src:           src,
		toks:          toks,
		parsingHeader: true,
		builder:       cst.NewBuilder(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse drives the full top-level loop and returns the completed root
// Branch plus the accumulated failure list.
func (p *Parser) Parse() (*cst.Branch, []failure.Failure) {
	p.builder.StartNode(cst.Root)
	for !p.atEOF() {
		pos := p.pos
		p.parseTopLevelItem()
		invariant.Invariant(p.pos > pos, "parseTopLevelItem made no progress at token %d", pos)
	}
	// Flush any trailing trivia; the zero-width EOF token is not emitted.
	for p.pos < len(p.toks) && p.toks[p.pos].Kind != token.EOF {
		p.builder.Token(uint16(p.toks[p.pos].Kind), string(p.toks[p.pos].Text(p.src)))
		p.pos++
	}
	p.builder.FinishNode()
	return p.builder.Finish(), p.failures
}

func (p *Parser) fail(kind failure.Kind, format string, args ...any) {
	p.failures = append(p.failures, failure.New(p.fileName, p.curOffset(), kind, format, args...))
	if p.log != nil {
		p.log.Debug("parse failure", "kind", kind, "offset", p.curOffset())
	}
}

func (p *Parser) curOffset() int {
	return p.nth(0).Span.Start
}

// significant reports whether the cursor stops on a token of kind k.
// Newline is trivia in the token vocabulary, but it terminates statements,
// so the parser treats it as significant.
func significant(k token.Kind) bool { return k == token.Newline || !k.IsTrivia() }

// nth returns the nth significant (non-trivia, or Newline) token at or
// after the cursor, without consuming anything. n == 0 is "the current
// token".
func (p *Parser) nth(n int) token.Token {
	i := p.pos
	count := -1
	for i < len(p.toks) {
		if significant(p.toks[i].Kind) {
			count++
			if count == n {
				return p.toks[i]
			}
		}
		i++
	}
	return token.Token{Kind: token.EOF}
}

func (p *Parser) cur() token.Token { return p.nth(0) }

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) atEOF() bool { return p.at(token.EOF) }

func (p *Parser) atAny(kinds ...token.Kind) bool {
	c := p.cur().Kind
	for _, k := range kinds {
		if c == k {
			return true
		}
	}
	return false
}

// bump emits every token from the cursor up to and including the next
// significant token as leaves of whatever node is currently open, then
// advances the cursor past it. Leading trivia is emitted verbatim under its
// own lexed kind; there is no separate trivia-attachment pass — this is the
// entire mechanism.
func (p *Parser) bump() token.Token {
	for p.pos < len(p.toks) {
		tk := p.toks[p.pos]
		p.builder.Token(uint16(tk.Kind), string(tk.Text(p.src)))
		p.pos++
		if significant(tk.Kind) {
			return tk
		}
	}
	return token.Token{Kind: token.EOF}
}

// bumpAs behaves like bump but relabels the emitted leaf's kind for the
// significant token only — leading trivia keeps its real kind. This is the
// keyword-as-identifier promotion mechanism: a keyword token that happens
// to appear at lhs-start or immediately after '.' is appended as an
// Identifier leaf, even though it was lexed as, e.g., TextKeyword.
func (p *Parser) bumpAs(overrideKind token.Kind) token.Token {
	for p.pos < len(p.toks) {
		tk := p.toks[p.pos]
		if !significant(tk.Kind) {
			p.builder.Token(uint16(tk.Kind), string(tk.Text(p.src)))
			p.pos++
			continue
		}
		p.builder.Token(uint16(overrideKind), string(tk.Text(p.src)))
		p.pos++
		return tk
	}
	return token.Token{Kind: token.EOF}
}

// expect bumps the current token if it matches kind; otherwise it records
// an ExpectedToken failure and leaves the cursor untouched so the caller
// can decide how to recover. When the expected token is a keyword and what
// was actually found is an Identifier, the failure message is annotated
// with the closest real keyword spelling (a typo'd "Funtion" suggesting
// "Function") via internal/dispatch's fuzzysearch-backed lookup.
func (p *Parser) expect(kind token.Kind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	cur := p.cur()
	if kind.IsKeyword() && cur.Kind == token.Identifier {
		if suggestion := dispatch.SuggestKeyword(string(cur.Text(p.src))); suggestion != "" {
			p.fail(failure.ExpectedToken, "expected %s, found %s %q (did you mean %q?)",
				kind, cur.Kind, cur.Text(p.src), suggestion)
			return false
		}
	}
	p.fail(failure.ExpectedToken, "expected %s, found %s", kind, cur.Kind)
	return false
}

func (p *Parser) consumeTrailingNewlineIfPresent() {
	if p.at(token.Newline) {
		p.bump()
	}
}

// consumeFlatUntilLineEnd bumps every token verbatim up to (but not
// including) the next Newline, ColonOperator, or EOF — the shared
// "everything up to the next newline or colon, preserving all tokens
// verbatim" rule used by assignment rhs, call arguments, and every simple
// built-in statement.
func (p *Parser) consumeFlatUntilLineEnd() {
	for {
		switch p.cur().Kind {
		case token.Newline, token.ColonOperator, token.EOF:
			return
		}
		p.bump()
	}
}

// consumeBalancedFlat bumps tokens verbatim until the matching close token
// is found at paren-depth 0 (the open paren itself must already be
// consumed by the caller); nested '(' increase depth. Used for array
// bounds / index argument lists where the contents are not otherwise
// structured: cheap to flatten, not worth a dedicated sub-grammar.
func (p *Parser) consumeBalancedFlat(close token.Kind) {
	depth := 1
	for depth > 0 {
		switch p.cur().Kind {
		case token.EOF, token.Newline:
			p.fail(failure.UnexpectedEndOfFile, "unterminated parenthesized group")
			return
		case token.LeftParenthesis:
			depth++
		case close:
			depth--
		}
		p.bump()
	}
}

// recoverStatement absorbs tokens up to the next newline/colon/EOF into a
// RecoveredStatement node when no statement parser could make sense of the
// current position. It always advances at least one token.
func (p *Parser) recoverStatement() {
	p.builder.StartNode(cst.RecoveredStatement)
	start := p.pos
	p.consumeFlatUntilLineEnd()
	if p.pos == start {
		p.bump()
	}
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}
