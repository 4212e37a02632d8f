// Package dispatch holds statement-dispatch support code that doesn't
// belong on parser.Parser itself: today, a "did you mean" keyword
// suggestion hook for ExpectedToken failures.
//
// When the parser expects a keyword and finds an Identifier that
// almost-but-not-quite matches one (a typo'd "Funtion"), SuggestKeyword
// finds the closest real keyword spelling for inclusion in the Failure's
// message.
package dispatch

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/scriptandcompile/vb6parse-sub002/token"
)

var keywordSpellings = keywordSpellingList()

func keywordSpellingList() []string {
	kws := token.Keywords()
	out := make([]string, len(kws))
	for i, kw := range kws {
		out[i] = kw.Spelling
	}
	return out
}

// SuggestKeyword returns the closest real VB6 keyword spelling to word
// under fuzzy.RankFind's Levenshtein-distance ranking, or "" if nothing
// scores close enough to be worth suggesting. Only keywords that contain
// word's letters in order (case-insensitively) are ranked at all, so ""
// is returned when word is empty, when no keyword contains its letters in
// order, or when every such keyword is more than 2 edits away.
func SuggestKeyword(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	ranks := fuzzy.RankFindNormalizedFold(word, keywordSpellings)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	best := ranks[0]
	if best.Distance > 2 {
		return ""
	}
	return best.Target
}
