package parser

import (
	"github.com/scriptandcompile/vb6parse-sub002/cst"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// modifierKeywords precede a declaration or a procedure/type definition;
// parseModifiedItem skips over a run of these before deciding which shape
// follows.
var modifierKeywords = map[token.Kind]bool{
	token.PublicKeyword:  true,
	token.PrivateKeyword: true,
	token.FriendKeyword:  true,
	token.GlobalKeyword:  true,
	token.StaticKeyword:  true,
	token.ConstKeyword:   true,
	token.DimKeyword:     true,
}

// parseModifiedItem is the dispatch entry for Dim/Static/Const/Public/
// Private/Global/Friend: it looks past any run of modifier keywords to see
// whether a procedure/type/declare/event definition follows, and defers to
// that parser (which itself re-consumes the modifiers); otherwise it's a
// bare declarator-list statement.
func (p *Parser) parseModifiedItem() {
	n := 0
	for modifierKeywords[p.nth(n).Kind] {
		n++
	}
	switch p.nth(n).Kind {
	case token.SubKeyword, token.FunctionKeyword:
		p.parseProcedureDefinition()
	case token.PropertyKeyword:
		p.parsePropertyStatement()
	case token.EnumKeyword:
		p.parseEnumStatement()
	case token.TypeKeyword:
		p.parseTypeStatement()
	case token.DeclareKeyword:
		p.parseDeclareStatement()
	case token.EventKeyword:
		p.parseEventStatement()
	default:
		p.parseDeclarationStatement()
	}
}

// parseDeclarationStatement implements the shared Dim/Static/Const/Public/
// Private/Global declarator-list shape.
func (p *Parser) parseDeclarationStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.DeclarationStatement)
	for modifierKeywords[p.cur().Kind] {
		p.bump()
	}
	p.parseDeclaratorList()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseDeclaratorList consumes one or more comma-separated Declarators:
// identifier (keyword-as-identifier promoted), optional "(bounds)", optional
// "As TypeName" with dotted paths allowed.
func (p *Parser) parseDeclaratorList() {
	for {
		p.builder.StartNode(cst.Declarator)
		if p.cur().Kind.IsKeyword() {
			p.bumpAs(token.Identifier)
		} else {
			p.expect(token.Identifier)
		}
		if p.at(token.LeftParenthesis) {
			p.builder.StartNode(cst.ArrayBounds)
			p.bump()
			p.consumeBalancedFlat(token.RightParenthesis)
			p.builder.FinishNode()
		}
		if p.at(token.AsKeyword) {
			p.bump()
			p.parseTypeAnnotation()
		}
		p.builder.FinishNode()
		if p.at(token.CommaOperator) {
			p.bump()
			continue
		}
		break
	}
}

// parseTypeAnnotation consumes a (possibly dotted) type name following
// "As": an intrinsic type keyword or an Identifier chain joined by '.'.
func (p *Parser) parseTypeAnnotation() {
	p.builder.StartNode(cst.TypeAnnotation)
	if p.at(token.NewKeyword) {
		p.bump()
	}
	if p.cur().Kind.IsKeyword() && !isIntrinsicTypeKeyword(p.cur().Kind) {
		p.bumpAs(token.Identifier)
	} else {
		p.bump()
	}
	for p.at(token.PeriodOperator) {
		p.bump()
		if p.cur().Kind.IsKeyword() {
			p.bumpAs(token.Identifier)
		} else {
			p.expect(token.Identifier)
		}
	}
	p.builder.FinishNode()
}

func isIntrinsicTypeKeyword(k token.Kind) bool {
	switch k {
	case token.IntegerKeyword, token.LongKeyword, token.SingleKeyword, token.DoubleKeyword,
		token.CurrencyKeyword, token.StringKeyword, token.BooleanKeyword, token.ByteKeyword,
		token.VariantKeyword, token.ObjectKeyword, token.DecimalKeyword:
		return true
	}
	return false
}

// parseReDimStatement implements "ReDim [Preserve] declaratorList"; the
// declarators reuse the same bounds-and-type shape as Dim, with the bounds
// additionally allowed to contain a "To"-delimited range (flat, since
// bounds contents are never otherwise structured).
func (p *Parser) parseReDimStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.ReDimStatement)
	p.bump() // ReDim
	if p.at(token.PreserveKeyword) {
		p.bump()
	}
	p.parseDeclaratorList()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseEraseStatement implements "Erase name {, name}".
func (p *Parser) parseEraseStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.EraseStatement)
	p.bump() // Erase
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseEnumStatement implements "[Public|Private] Enum name ... End Enum".
func (p *Parser) parseEnumStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.EnumStatement)
	for modifierKeywords[p.cur().Kind] {
		p.bump()
	}
	p.bump() // Enum
	p.expect(token.Identifier)
	p.consumeTrailingNewlineIfPresent()
	for !p.atEOF() && !(p.at(token.EndKeyword) && p.nth(1).Kind == token.EnumKeyword) {
		p.builder.StartNode(cst.EnumMember)
		p.consumeFlatUntilLineEnd()
		p.consumeTrailingNewlineIfPresent()
		p.builder.FinishNode()
	}
	p.expect(token.EndKeyword)
	p.expect(token.EnumKeyword)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseTypeStatement implements "[Public|Private] Type name ... End Type"
// user-defined types.
func (p *Parser) parseTypeStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.TypeStatement)
	for modifierKeywords[p.cur().Kind] {
		p.bump()
	}
	p.bump() // Type
	p.expect(token.Identifier)
	p.consumeTrailingNewlineIfPresent()
	for !p.atEOF() && !(p.at(token.EndKeyword) && p.nth(1).Kind == token.TypeKeyword) {
		p.builder.StartNode(cst.TypeMember)
		if p.cur().Kind.IsKeyword() {
			p.bumpAs(token.Identifier)
		} else {
			p.expect(token.Identifier)
		}
		if p.at(token.LeftParenthesis) {
			p.builder.StartNode(cst.ArrayBounds)
			p.bump()
			p.consumeBalancedFlat(token.RightParenthesis)
			p.builder.FinishNode()
		}
		if p.at(token.AsKeyword) {
			p.bump()
			p.parseTypeAnnotation()
		}
		p.consumeTrailingNewlineIfPresent()
		p.builder.FinishNode()
	}
	p.expect(token.EndKeyword)
	p.expect(token.TypeKeyword)
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseDeclareStatement implements "[Public|Private] Declare Sub|Function
// name Lib "..." [Alias "..."] ([params]) [As Type]" — the Lib/Alias
// strings and parameter list are consumed flat, since structuring a DLL
// import signature further has no downstream consumer here.
func (p *Parser) parseDeclareStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.DeclareStatement)
	for modifierKeywords[p.cur().Kind] {
		p.bump()
	}
	p.bump() // Declare
	p.consumeFlatUntilLineEnd()
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}

// parseEventStatement implements "[Public] Event name(params)".
func (p *Parser) parseEventStatement() {
	p.parsingHeader = false
	p.builder.StartNode(cst.EventStatement)
	for modifierKeywords[p.cur().Kind] {
		p.bump()
	}
	p.bump() // Event
	p.expect(token.Identifier)
	if p.at(token.LeftParenthesis) {
		p.parseParameterList()
	}
	p.consumeTrailingNewlineIfPresent()
	p.builder.FinishNode()
}
