package parser

import (
	"github.com/scriptandcompile/vb6parse-sub002/cst"
	"github.com/scriptandcompile/vb6parse-sub002/internal/failure"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// parseTopLevelItem is the entry point for Parse's main loop. While
// parsingHeader holds, Attribute/VERSION/Begin…End header constructs are
// recognized; the first item that is none of those flips the flag and the
// rest of the file is parsed as ordinary declarations/procedures/
// statements via the normal statement dispatcher.
func (p *Parser) parseTopLevelItem() {
	if p.parsingHeader {
		switch p.cur().Kind {
		case token.AttributeKeyword:
			p.parseAttributeStatement()
			return
		case token.VersionKeyword:
			p.parseVersionHeader()
			return
		case token.BeginKeyword:
			p.parseControlBlock()
			return
		}
		p.parsingHeader = false
	}
	p.dispatchStatement()
}

// parseAttributeStatement consumes "Attribute name = value" header lines,
// the .cls/.frm prologue VB6 writes ahead of any visible code.
func (p *Parser) parseAttributeStatement() {
	p.builder.StartNode(cst.AttributeStatement)
	p.bump() // Attribute
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseVersionHeader consumes the "VERSION 1.0 CLASS" prologue line that
// opens a .cls file.
func (p *Parser) parseVersionHeader() {
	p.builder.StartNode(cst.VersionHeader)
	p.bump() // VERSION
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseControlBlock consumes a "Begin TypeName name ... End" designer block
// from a .frm/.ctl/.dsr file, recursing for nested controls and treating
// every other line as a PropertyAssignment key/value pair.
func (p *Parser) parseControlBlock() {
	p.builder.StartNode(cst.ControlBlock)
	p.bump() // Begin
	p.consumeFlatUntilLineEnd() // TypeName and control name, same line
	p.consumeTrailingNewlineIfPresent()

	for !p.atEOF() && !p.at(token.EndKeyword) {
		if p.at(token.BeginKeyword) {
			p.parseControlBlock()
			continue
		}
		p.builder.StartNode(cst.PropertyAssignment)
		p.consumeFlatUntilLineEnd()
		p.consumeTrailingNewlineIfPresent()
		p.builder.FinishNode()
	}
	p.expect(token.EndKeyword)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseProcedureDefinition implements Sub/Function procedure headers and
// bodies: optional modifiers, Sub|Function, name, ParameterList, optional
// "As Type" (Function only), CodeBlock, "End Sub"/"End Function".
func (p *Parser) parseProcedureDefinition() {
	p.builder.StartNode(cst.ProcedureDefinition)
	for modifierKeywords[p.cur().Kind] {
		p.bump()
	}
	isFunction := p.at(token.FunctionKeyword)
	p.bump() // Sub or Function
	if p.cur().Kind.IsKeyword() {
		p.bumpAs(token.Identifier)
	} else {
		p.expect(token.Identifier)
	}
	if p.at(token.LeftParenthesis) {
		p.parseParameterList()
	}
	if isFunction && p.at(token.AsKeyword) {
		p.bump()
		p.parseTypeAnnotation()
	}
	p.consumeTrailingNewlineIfPresent()

	endKw := token.SubKeyword
	if isFunction {
		endKw = token.FunctionKeyword
	}
	p.parseCodeBlockUntil(func() bool {
		return p.at(token.EndKeyword) && p.nth(1).Kind == endKw
	})
	p.expect(token.EndKeyword)
	p.expect(endKw)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parsePropertyStatement implements Property Get/Let/Set.
func (p *Parser) parsePropertyStatement() {
	p.builder.StartNode(cst.PropertyStatement)
	for modifierKeywords[p.cur().Kind] {
		p.bump()
	}
	p.bump() // Property
	p.bump() // Get / Let / Set
	if p.cur().Kind.IsKeyword() {
		p.bumpAs(token.Identifier)
	} else {
		p.expect(token.Identifier)
	}
	if p.at(token.LeftParenthesis) {
		p.parseParameterList()
	}
	if p.at(token.AsKeyword) {
		p.bump()
		p.parseTypeAnnotation()
	}
	p.consumeTrailingNewlineIfPresent()

	p.parseCodeBlockUntil(func() bool {
		return p.at(token.EndKeyword) && p.nth(1).Kind == token.PropertyKeyword
	})
	if !p.at(token.EndKeyword) {
		p.fail(failure.MissingEndProperty, "Property block never closed with End Property")
	}
	p.expect(token.EndKeyword)
	p.expect(token.PropertyKeyword)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseParameterList consumes a parenthesized, comma-separated list of
// parameter declarations: optional ByVal/ByRef/Optional/ParamArray, name,
// optional "()" array marker, optional "As Type", optional "= default".
func (p *Parser) parseParameterList() {
	p.builder.StartNode(cst.ParameterList)
	p.bump() // '('
	for !p.atAny(token.RightParenthesis, token.EOF, token.Newline) {
		p.builder.StartNode(cst.Parameter)
		for p.atAny(token.ByValKeyword, token.ByRefKeyword, token.OptionalKeyword, token.ParamArrayKeyword) {
			p.bump()
		}
		if p.cur().Kind.IsKeyword() {
			p.bumpAs(token.Identifier)
		} else {
			p.expect(token.Identifier)
		}
		if p.at(token.LeftParenthesis) {
			p.bump()
			p.consumeBalancedFlat(token.RightParenthesis)
		}
		if p.at(token.AsKeyword) {
			p.bump()
			p.parseTypeAnnotation()
		}
		if p.at(token.EqualityOperator) {
			p.bump()
			p.parseExpr(0)
		}
		p.builder.FinishNode()
		if p.at(token.CommaOperator) {
			p.bump()
			continue
		}
		break
	}
	p.expect(token.RightParenthesis)
	p.builder.FinishNode()
}
