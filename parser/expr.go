package parser

import (
	"github.com/scriptandcompile/vb6parse-sub002/cst"
	"github.com/scriptandcompile/vb6parse-sub002/internal/failure"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// parseExpr implements a Pratt expression parser. It is used only in
// genuine header-expression positions (If condition, For range, Select
// Case discriminant, With target, parameter default value) — every
// statement body, and every array bounds list, is consumed as a flat
// verbatim token run instead.
func (p *Parser) parseExpr(minBP int) {
	p.parseUnary()
	for {
		_, lbp, rbp, ok := binaryBindingPower(p.cur().Kind)
		if !ok || lbp < minBP {
			return
		}
		p.builder.WrapPreceding(cst.BinaryExpression)
		p.bump() // operator
		p.parseExpr(rbp)
		p.builder.FinishNode()
	}
}

// parseUnary handles prefix Not/+/- and AddressOf, then falls through to
// parsePostfix/parsePrimary.
func (p *Parser) parseUnary() {
	switch p.cur().Kind {
	case token.NotKeyword, token.MinusOperator, token.PlusOperator:
		p.builder.StartNode(cst.UnaryExpression)
		p.bump()
		p.parseUnary()
		p.builder.FinishNode()
		return
	case token.AddressOfKeyword:
		p.builder.StartNode(cst.AddressOfExpression)
		p.bump()
		p.parseUnary()
		p.builder.FinishNode()
		return
	}
	p.parsePostfix()
}

// parsePostfix parses a primary then any run of call/index/member-access
// suffixes.
func (p *Parser) parsePostfix() {
	p.parsePrimary()
	for {
		switch p.cur().Kind {
		case token.PeriodOperator:
			p.bump()
			if p.cur().Kind.IsKeyword() {
				p.bumpAs(token.Identifier)
			} else {
				p.expect(token.Identifier)
			}
		case token.LeftParenthesis:
			p.parseArgumentList()
		default:
			return
		}
	}
}

// parseArgumentList consumes "(" argExpr {"," argExpr} ")" as a flat
// ArgumentList of Argument nodes.
func (p *Parser) parseArgumentList() {
	p.builder.StartNode(cst.ArgumentList)
	p.bump() // '('
	for !p.atAny(token.RightParenthesis, token.EOF, token.Newline) {
		p.builder.StartNode(cst.Argument)
		p.parseExpr(0)
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

// parsePrimary parses a single atomic expression: literal, identifier,
// parenthesized sub-expression, Nothing/New.
func (p *Parser) parsePrimary() {
	switch p.cur().Kind {
	case token.IntegerLiteral, token.LongLiteral, token.SingleLiteral,
		token.DoubleLiteral, token.CurrencyLiteral:
		p.builder.StartNode(cst.NumericLiteralExpression)
		p.bump()
		p.builder.FinishNode()
	case token.StringLiteral:
		p.builder.StartNode(cst.StringLiteralExpression)
		p.bump()
		p.builder.FinishNode()
	case token.DateLiteral:
		p.builder.StartNode(cst.DateLiteralExpression)
		p.bump()
		p.builder.FinishNode()
	case token.TrueKeyword, token.FalseKeyword:
		p.builder.StartNode(cst.BooleanLiteralExpression)
		p.bump()
		p.builder.FinishNode()
	case token.NothingKeyword, token.NullKeyword:
		p.builder.StartNode(cst.NothingExpression)
		p.bump()
		p.builder.FinishNode()
	case token.NewKeyword:
		p.builder.StartNode(cst.NewExpression)
		p.bump()
		if p.cur().Kind.IsKeyword() {
			p.bumpAs(token.Identifier)
		} else {
			p.expect(token.Identifier)
		}
		p.builder.FinishNode()
	case token.LeftParenthesis:
		p.builder.StartNode(cst.ParenthesizedExpression)
		p.bump()
		p.parseExpr(0)
		p.expect(token.RightParenthesis)
		p.builder.FinishNode()
	default:
		p.builder.StartNode(cst.IdentifierExpression)
		if p.cur().Kind.IsKeyword() {
			p.bumpAs(token.Identifier)
		} else if p.at(token.Identifier) {
			p.bump()
		} else {
			p.fail(failure.ExpectedToken, "expected expression, found %s", p.cur().Kind)
			p.bump()
		}
		p.builder.FinishNode()
	}
}

// binaryBindingPower returns the left/right binding power of a binary
// operator token per VB6's precedence ladder (low to high): Imp < Eqv <
// Xor < Or < And < comparison < & < (+ -) < Mod < \ < (* /) < ^ (right
// associative).
func binaryBindingPower(k token.Kind) (kind token.Kind, lbp, rbp int, ok bool) {
	switch k {
	case token.ImpKeyword:
		return k, 10, 11, true
	case token.EqvKeyword:
		return k, 20, 21, true
	case token.XorKeyword:
		return k, 30, 31, true
	case token.OrKeyword:
		return k, 40, 41, true
	case token.AndKeyword:
		return k, 50, 51, true
	case token.EqualityOperator, token.NotEqualOperator, token.LessThanOperator,
		token.GreaterThanOperator, token.LessThanEqualOperator,
		token.GreaterThanEqualOperator, token.IsKeyword, token.LikeKeyword:
		return k, 60, 61, true
	case token.AmpersandOperator:
		return k, 70, 71, true
	case token.PlusOperator, token.MinusOperator:
		return k, 80, 81, true
	case token.ModKeyword:
		return k, 90, 91, true
	case token.IntegerDivideOperator:
		return k, 100, 101, true
	case token.MultiplyOperator, token.DivideOperator:
		return k, 110, 111, true
	case token.ExponentOperator:
		return k, 130, 120, true // right-associative: rbp < lbp
	}
	return token.Illegal, 0, 0, false
}
