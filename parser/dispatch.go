package parser

import (
	"github.com/scriptandcompile/vb6parse-sub002/internal/failure"
	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// structuralKeywords are never treated as the name of an implicit procedure
// call, even though they could syntactically sit in identifier position.
var structuralKeywords = map[token.Kind]bool{
	token.EndKeyword:      true,
	token.ExitKeyword:     true,
	token.LoopKeyword:     true,
	token.NextKeyword:     true,
	token.WendKeyword:     true,
	token.ElseKeyword:     true,
	token.ElseIfKeyword:   true,
	token.CaseKeyword:     true,
	token.IfKeyword:       true,
	token.ThenKeyword:     true,
	token.SelectKeyword:   true,
	token.DoKeyword:       true,
	token.WhileKeyword:    true,
	token.UntilKeyword:    true,
	token.ForKeyword:      true,
	token.ToKeyword:       true,
	token.StepKeyword:     true,
	token.SubKeyword:      true,
	token.FunctionKeyword: true,
	token.PropertyKeyword: true,
	token.WithKeyword:     true,
	token.ReturnKeyword:   true,
	token.ResumeKeyword:   true,
}

// statementDispatch maps a leading keyword to its statement parser: a
// precomputed table beats a long keyword-by-keyword if/else chain.
var statementDispatch map[token.Kind]func(*Parser)

func init() {
	statementDispatch = map[token.Kind]func(*Parser){
		token.IfKeyword:     (*Parser).parseIfStatement,
		token.ForKeyword:    (*Parser).parseForStatement,
		token.DoKeyword:     (*Parser).parseDoLoopStatement,
		token.WhileKeyword:  (*Parser).parseWhileWendStatement,
		token.SelectKeyword: (*Parser).parseSelectCaseStatement,
		token.WithKeyword:   (*Parser).parseWithStatement,

		token.DimKeyword:     (*Parser).parseModifiedItem,
		token.StaticKeyword:  (*Parser).parseModifiedItem,
		token.ConstKeyword:   (*Parser).parseModifiedItem,
		token.PublicKeyword:  (*Parser).parseModifiedItem,
		token.PrivateKeyword: (*Parser).parseModifiedItem,
		token.GlobalKeyword:  (*Parser).parseModifiedItem,
		token.FriendKeyword:  (*Parser).parseModifiedItem,

		token.ReDimKeyword: (*Parser).parseReDimStatement,
		token.EraseKeyword: (*Parser).parseEraseStatement,
		token.EnumKeyword:  (*Parser).parseEnumStatement,
		token.TypeKeyword:  (*Parser).parseTypeStatement,

		token.DeclareKeyword:    (*Parser).parseDeclareStatement,
		token.EventKeyword:      (*Parser).parseEventStatement,
		token.ImplementsKeyword: (*Parser).parseImplementsStatement,

		token.SubKeyword:      (*Parser).parseProcedureDefinition,
		token.FunctionKeyword: (*Parser).parseProcedureDefinition,
		token.PropertyKeyword: (*Parser).parsePropertyStatement,

		token.SetKeyword: (*Parser).parseLetStatement,
		token.LetKeyword: (*Parser).parseLetStatement,
		token.CallKeyword: func(p *Parser) { p.parseCallStatement(true) },

		token.GoToKeyword:  (*Parser).parseGoToOrGoSubStatement,
		token.GoSubKeyword: (*Parser).parseGoToOrGoSubStatement,
		token.ReturnKeyword: (*Parser).parseReturnStatement,
		token.ExitKeyword:   (*Parser).parseExitStatement,
		token.OnKeyword:     (*Parser).parseOnErrorStatement,
		token.ResumeKeyword: (*Parser).parseResumeStatement,

		// Conditional compilation directives (#If/#ElseIf/#Else/#End If,
		// #Const) are lexically a bare '#' followed by a keyword — there is
		// no dedicated token kind for the '#', so dispatch keys off
		// HashOperator itself.
		token.HashOperator: (*Parser).parseConditionalCompilationStatement,
	}

	for _, k := range []token.Kind{
		token.PrintKeyword, token.ChDriveKeyword, token.ChDirKeyword, token.ErrorKeyword,
		token.FileCopyKeyword, token.SavePictureKeyword, token.SeekKeyword, token.InputKeyword,
		token.LockKeyword, token.UnlockKeyword, token.PutKeyword, token.GetKeyword,
		token.DateKeyword, token.BeepKeyword, token.NameKeyword, token.KillKeyword,
		token.MkDirKeyword, token.RmDirKeyword, token.SetAttrKeyword, token.SendKeysKeyword,
		token.LoadKeyword, token.SaveSettingKeyword, token.DeleteSettingKeyword,
		token.RandomizeKeyword, token.StopKeyword, token.WidthKeyword, token.TimeKeyword,
		token.MidKeyword, token.MidBKeyword, token.LSetKeyword, token.RSetKeyword,
		token.OpenKeyword, token.CloseKeyword, token.WriteKeyword, token.EndKeyword,
		token.RaiseEventKeyword, token.OptionKeyword, token.WithEventsKeyword,
	} {
		statementDispatch[k] = (*Parser).parseSimpleBuiltinStatement
	}
}

// dispatchStatement selects and runs the parser for the statement starting
// at the cursor. It always advances the cursor by at least one token;
// callers rely on this for loop termination.
func (p *Parser) dispatchStatement() {
	pos := p.pos

	if p.at(token.Newline) {
		// A blank or comment-only line: its trivia and newline become
		// leaves of the enclosing node.
		p.bump()
		return
	}

	if handler, ok := statementDispatch[p.cur().Kind]; ok {
		handler(p)
	} else if p.looksLikeLabel() {
		p.parseLabelStatement()
	} else if p.looksLikeAssignment() {
		p.parseAssignmentStatement()
	} else {
		p.parseCallStatement(false)
	}

	if p.pos == pos {
		p.fail(failure.ExpectedToken, "statement parser made no progress, recovering")
		p.recoverStatement()
	}
}

// looksLikeLabel reports whether the current position starts a label: an
// identifier or integer literal whose very next significant token is ':'.
func (p *Parser) looksLikeLabel() bool {
	c := p.cur().Kind
	if c != token.Identifier && c != token.IntegerLiteral {
		return false
	}
	return p.nth(1).Kind == token.ColonOperator
}

// looksLikeAssignment disambiguates an assignment statement from an
// implicit procedure call by scanning ahead: tolerate identifiers,
// periods, balanced parens, integer literals, commas, and non-structural
// keywords (candidates for keyword-as-identifier promotion); stop and
// report true the moment a top-level '=' appears, false at a
// newline/colon/comment/EOF or any other token shape.
func (p *Parser) looksLikeAssignment() bool {
	depth := 0
	for n := 0; n < 4096; n++ {
		tk := p.nth(n)
		switch tk.Kind {
		case token.EqualityOperator:
			if depth == 0 {
				return true
			}
		case token.Newline, token.ColonOperator, token.EOF, token.EndOfLineComment:
			return false
		case token.LeftParenthesis:
			depth++
		case token.RightParenthesis:
			depth--
			if depth < 0 {
				return false
			}
		case token.PeriodOperator, token.CommaOperator, token.Identifier, token.IntegerLiteral:
			// part of a plausible lhs chain, keep scanning
		default:
			if tk.Kind.IsKeyword() && !structuralKeywords[tk.Kind] {
				continue
			}
			return false
		}
	}
	return false
}
