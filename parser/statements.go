package parser

import (
	"github.com/scriptandcompile/vb6parse-sub002/cst"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// parseAssignmentStatement handles a bare "lhs = rhs" statement.
func (p *Parser) parseAssignmentStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.AssignmentStatement)
	p.parseLhsChain()
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseLetStatement handles an explicit "Let lhs = rhs" statement, and also
// serves "Set", which shares the identical shape (leading keyword leaf,
// then lhs = rhs verbatim).
func (p *Parser) parseLetStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.LetStatement)
	p.bump() // Let or Set keyword
	p.parseLhsChain()
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseLhsChain consumes an assignment target: a dotted/indexed chain with
// keyword-as-identifier promotion at the start of the chain and
// immediately after every '.' — so "Text1.Text = x" promotes the keyword
// "Text" in each of those positions to an Identifier leaf.
func (p *Parser) parseLhsChain() {
	promote := true
	for {
		switch p.cur().Kind {
		case token.EqualityOperator, token.Newline, token.ColonOperator, token.EOF:
			return
		case token.PeriodOperator:
			p.bump()
			promote = true
			continue
		case token.LeftParenthesis:
			p.bump()
			p.consumeBalancedFlat(token.RightParenthesis)
			promote = false
			continue
		}
		if p.cur().Kind.IsKeyword() {
			if promote {
				p.bumpAs(token.Identifier)
			} else {
				p.bump()
			}
		} else {
			p.bump()
		}
		promote = false
	}
}

// parseCallStatement handles a procedure call; hasCallKeyword distinguishes
// an explicit "Call foo(...)" from the implicit "foo ..." form — neither
// shape is ever treated as an error once dispatch has settled on it.
func (p *Parser) parseCallStatement(hasCallKeyword bool) {
	p.parsingHeader = false
	p.builder.StartNode(cst.CallStatement)
	if hasCallKeyword {
		p.bump()
	}
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseLabelStatement handles a label line: identifier-or-number, ':',
// trailing newline.
func (p *Parser) parseLabelStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.LabelStatement)
	p.bump() // identifier or integer literal
	p.expect(token.ColonOperator)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseSimpleBuiltinStatement covers the whole simple-built-in-statement
// family with one node kind: leading keyword plus a flat verbatim run to
// end of statement.
func (p *Parser) parseSimpleBuiltinStatement() {
	if p.nth(1).Kind == token.EqualityOperator {
		// "Name = m_name": the keyword is an assignment target, promoted
		// to an Identifier by parseLhsChain.
		p.parseAssignmentStatement()
		return
	}
	p.parsingHeader = false
	p.builder.StartNode(cst.SimpleBuiltinStatement)
	p.bump() // leading keyword
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseGoToOrGoSubStatement handles "GoTo label" and "GoSub label".
func (p *Parser) parseGoToOrGoSubStatement() {
	p.parsingHeader = false
	kind := cst.GoToStatement
	if p.cur().Kind == token.GoSubKeyword {
		kind = cst.GoSubStatement
	}
	p.builder.StartNode(kind)
	p.bump() // GoTo / GoSub
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

func (p *Parser) parseReturnStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.ReturnStatement)
	p.bump() // Return
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseExitStatement handles "Exit" + Sub|Function|Property|For|Do.
func (p *Parser) parseExitStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.ExitStatement)
	p.bump() // Exit
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseOnErrorStatement handles "On Error GoTo label" / "On Error Resume
// Next" / "On Error GoTo 0".
func (p *Parser) parseOnErrorStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.OnErrorStatement)
	p.bump() // On
	p.expect(token.ErrorKeyword)
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseResumeStatement handles a bare "Resume" / "Resume Next" / "Resume
// label" appearing as its own statement (not the "On Error" prefixed form).
func (p *Parser) parseResumeStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.ResumeStatement)
	p.bump() // Resume
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

func (p *Parser) parseImplementsStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.ImplementsStatement)
	p.bump() // Implements
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseConditionalCompilationStatement handles #If/#ElseIf/#Else/#End
// If/#Const directive lines, preserved verbatim since evaluating them is
// semantic analysis this tree does not perform.
func (p *Parser) parseConditionalCompilationStatement() {
	p.builder.StartNode(cst.ConditionalCompilationStatement)
	p.bump() // '#'
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}
