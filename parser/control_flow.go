package parser

import (
	"github.com/scriptandcompile/vb6parse-sub002/cst"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// parseCodeBlockUntil wraps a run of statements in a CodeBlock node,
// dispatching one statement at a time until stop reports true or EOF is
// hit — the shared "block body" shape for If/For/Do/While/Select/With.
func (p *Parser) parseCodeBlockUntil(stop func() bool) {
	p.builder.StartNode(cst.CodeBlock)
	for !p.atEOF() && !stop() {
		pos := p.pos
		p.dispatchStatement()
		if p.pos == pos {
			p.recoverStatement()
		}
	}
	p.builder.FinishNode()
}

// parseIfStatement handles If/ElseIf/Else/End If, covering both the
// single-line form (If cond Then stmt [Else stmt]) and the multi-line
// block form. In the single-line form an ElseClause is built only when the
// Then-statement stops before "Else"; statements that run flat to end of
// line (assignments, calls, simple built-ins) keep "Else ..." among their
// own leaves.
func (p *Parser) parseIfStatement() {
	p.builder.StartNode(cst.IfStatement)
	p.bump() // If
	p.parseExpr(0)
	p.expect(token.ThenKeyword)

	if !p.at(token.Newline) && !p.atEOF() {
		// Single-line form: the body is one more dispatched statement,
		// optionally followed by "Else" and another.
		p.dispatchStatement()
		if p.at(token.ElseKeyword) {
			p.builder.StartNode(cst.ElseClause)
			p.bump()
			p.dispatchStatement()
			p.builder.FinishNode()
		}
		p.builder.FinishNode()
		return
	}

	p.consumeTrailingNewlineIfPresent()
	p.parseCodeBlockUntil(func() bool {
		return p.atAny(token.ElseIfKeyword, token.ElseKeyword, token.EndKeyword)
	})

	for p.at(token.ElseIfKeyword) {
		p.builder.StartNode(cst.ElseIfClause)
		p.bump()
		p.parseExpr(0)
		p.expect(token.ThenKeyword)
		p.consumeTrailingNewlineIfPresent()
		p.parseCodeBlockUntil(func() bool {
			return p.atAny(token.ElseIfKeyword, token.ElseKeyword, token.EndKeyword)
		})
		p.builder.FinishNode()
	}

	if p.at(token.ElseKeyword) {
		p.builder.StartNode(cst.ElseClause)
		p.bump()
		p.consumeTrailingNewlineIfPresent()
		p.parseCodeBlockUntil(func() bool { return p.at(token.EndKeyword) })
		p.builder.FinishNode()
	}

	p.expect(token.EndKeyword)
	p.expect(token.IfKeyword)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseForStatement implements both "For i = a To b [Step c] ... Next [i]"
// and "For Each x In coll ... Next [x]".
func (p *Parser) parseForStatement() {
	if p.nth(1).Kind == token.EachKeyword {
		p.builder.StartNode(cst.ForEachStatement)
		p.bump() // For
		p.bump() // Each
		p.parseExpr(0) // loop variable
		p.expect(token.InKeyword)
		p.parseExpr(0) // collection
	} else {
		p.builder.StartNode(cst.ForStatement)
		p.bump() // For
		p.parsePostfix() // loop variable; parseExpr would read "= start" as a comparison
		p.expect(token.EqualityOperator)
		p.parseExpr(0) // start
		p.expect(token.ToKeyword)
		p.parseExpr(0) // end
		if p.at(token.StepKeyword) {
			p.bump()
			p.parseExpr(0)
		}
	}
	p.consumeTrailingNewlineIfPresent()
	p.parseCodeBlockUntil(func() bool { return p.at(token.NextKeyword) })
	p.expect(token.NextKeyword)
	if !p.atAny(token.Newline, token.ColonOperator, token.EOF) {
		p.parseExpr(0) // optional loop variable echo
	}
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseDoLoopStatement implements Do [While|Until cond] ... Loop [While|Until
// cond] in all four orderings permitted by VB6.
func (p *Parser) parseDoLoopStatement() {
	p.builder.StartNode(cst.DoLoopStatement)
	p.bump() // Do
	if p.atAny(token.WhileKeyword, token.UntilKeyword) {
		p.bump()
		p.parseExpr(0)
	}
	p.consumeTrailingNewlineIfPresent()
	p.parseCodeBlockUntil(func() bool { return p.at(token.LoopKeyword) })
	p.expect(token.LoopKeyword)
	if p.atAny(token.WhileKeyword, token.UntilKeyword) {
		p.bump()
		p.parseExpr(0)
	}
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseWhileWendStatement implements the legacy While...Wend loop.
func (p *Parser) parseWhileWendStatement() {
	p.builder.StartNode(cst.WhileWendStatement)
	p.bump() // While
	p.parseExpr(0)
	p.consumeTrailingNewlineIfPresent()
	p.parseCodeBlockUntil(func() bool { return p.at(token.WendKeyword) })
	p.expect(token.WendKeyword)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseSelectCaseStatement implements Select Case ... Case ... End Select.
func (p *Parser) parseSelectCaseStatement() {
	p.builder.StartNode(cst.SelectCaseStatement)
	p.bump() // Select
	p.expect(token.CaseKeyword)
	p.parseExpr(0)
	p.consumeTrailingNewlineIfPresent()

	for p.at(token.CaseKeyword) {
		p.builder.StartNode(cst.CaseClause)
		p.bump() // Case
		if p.at(token.ElseKeyword) {
			p.bump()
		} else {
			p.parseExpr(0)
			for p.at(token.CommaOperator) {
				p.bump()
				p.parseExpr(0)
			}
		}
		p.consumeTrailingNewlineIfPresent()
		p.parseCodeBlockUntil(func() bool {
			return p.atAny(token.CaseKeyword, token.EndKeyword)
		})
		p.builder.FinishNode()
	}

	p.expect(token.EndKeyword)
	p.expect(token.SelectKeyword)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseWithStatement implements With expr ... End With.
func (p *Parser) parseWithStatement() {
	p.builder.StartNode(cst.WithStatement)
	p.bump() // With
	p.parseExpr(0)
	p.consumeTrailingNewlineIfPresent()
	p.parseCodeBlockUntil(func() bool { return p.at(token.EndKeyword) })
	p.expect(token.EndKeyword)
	p.expect(token.WithKeyword)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}
