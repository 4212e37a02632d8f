package lexer

import (
	"strings"

	"github.com/scriptandcompile/vb6parse-sub002/token"
)

// keywordTable maps an upper-cased spelling to its Kind, built once from
// token.Keywords(), so keyword matching is a single canonical-case lookup.
// An identifier's full run of ident-part bytes is read before this table
// is consulted, so a keyword prefix glued to further ident characters
// (e.g. "Optional") never matches "Option" — there is no separate
// longest-match step to get wrong.
var keywordTable = buildKeywordTable()

func buildKeywordTable() map[string]token.Kind {
	m := make(map[string]token.Kind, 160)
	for _, kw := range token.Keywords() {
		m[strings.ToUpper(kw.Spelling)] = kw.Kind
	}
	return m
}

// lookupKeyword returns the Kind for text's case-insensitive spelling, and
// true if text is a keyword at all; otherwise (token.Illegal, false).
func lookupKeyword(text string) (token.Kind, bool) {
	k, ok := keywordTable[strings.ToUpper(text)]
	return k, ok
}
