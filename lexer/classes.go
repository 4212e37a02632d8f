package lexer

// Byte-indexed classification tables: a branch-free lookup beats a chain
// of comparisons in the hot loop. '\r' is deliberately excluded from
// isWhitespace — it belongs to the Newline family (lexNewline handles both
// bare '\r' and the "\r\n" pair as a single token), not to runs of
// spaces/tabs.
var isIdentStart [128]bool
var isIdentPart [128]bool
var isDigit [128]bool
var isWhitespace [128]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		isIdentStart[c] = true
		isIdentPart[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		isIdentStart[c] = true
		isIdentPart[c] = true
	}
	isIdentPart['_'] = true
	for c := byte('0'); c <= '9'; c++ {
		isDigit[c] = true
		isIdentPart[c] = true
	}
	isWhitespace[' '] = true
	isWhitespace['\t'] = true
}
