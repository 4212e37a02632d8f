// Package failure defines the parser's non-fatal error record: a small,
// stringly typed discriminator plus a human message and optional context,
// rather than a sum of Go error types — failures are data the caller
// inspects, not something that ever gets returned as an `error` and
// unwound.
package failure

import "fmt"

// Kind is the closed set of failure discriminators the lexer and parser
// can record.
type Kind string

const (
	// LikelyNonEnglishCharacterSet is fatal: the lexer aborted and no tree
	// was produced.
	LikelyNonEnglishCharacterSet Kind = "LIKELY_NON_ENGLISH_CHARACTER_SET"
	// UnknownToken marks a single byte the lexer could not classify.
	UnknownToken Kind = "UNKNOWN_TOKEN"
	// VariableNameTooLong marks an identifier longer than the 254-byte
	// cap.
	VariableNameTooLong Kind = "VARIABLE_NAME_TOO_LONG"
	// UnexpectedEndOfFile marks a block left unclosed at end of input.
	UnexpectedEndOfFile Kind = "UNEXPECTED_END_OF_FILE"
	// ExpectedToken marks a specific token missing from a fixed structure.
	ExpectedToken Kind = "EXPECTED_TOKEN"
	// KeywordNotFound is internal to the keyword matcher and never
	// surfaced to API callers.
	KeywordNotFound Kind = "KEYWORD_NOT_FOUND"
	// MissingEndProperty marks a Property block that never saw a
	// matching "End Property".
	MissingEndProperty Kind = "MISSING_END_PROPERTY"
	// MissingBlockEnd is the general form of MissingEndProperty for every
	// other block construct (If/For/Do/While/Select/With/Sub/Function...).
	MissingBlockEnd Kind = "MISSING_BLOCK_END"
)

// Failure is a recoverable or fatal parse error. Failures never unwind:
// they are values pushed onto the parser's failure list.
type Failure struct {
	File    string
	Offset  int
	Kind    Kind
	Message string
}

// New constructs a Failure with a formatted message.
func New(file string, offset int, kind Kind, format string, args ...any) Failure {
	return Failure{File: file, Offset: offset, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (f Failure) Error() string {
	if f.File == "" {
		return fmt.Sprintf("%s@%d: %s", f.Kind, f.Offset, f.Message)
	}
	return fmt.Sprintf("%s:%d: %s: %s", f.File, f.Offset, f.Kind, f.Message)
}

// Fatal reports whether this Failure kind aborts the parse entirely.
func (f Failure) Fatal() bool {
	return f.Kind == LikelyNonEnglishCharacterSet
}
