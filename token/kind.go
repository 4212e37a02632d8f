// Package token defines the closed vocabulary of VB6 lexemes.
//
// A Kind is the classification assigned to a byte span by the lexer. The
// vocabulary is split into keyword, identifier, literal, operator/punctuation,
// trivia, and sentinel families; see the grouped constant block that
// declares the Kind values for the exact membership of each family.
package token

import "fmt"

// Kind is a closed enumeration of lexeme classifications. Kind values are
// shared between the token stream (every Kind appears as some Token.Kind)
// and the CST (every Kind appears as some Leaf.Kind); no Kind is ever also a
// cst.Kind (the two enumerations are disjoint, see cst.Kind).
type Kind uint16

const (
	// Illegal is never a valid Kind value; it guards against the zero value
	// being mistaken for a real token.
	Illegal Kind = iota
	// EOF is the null-byte sentinel terminating every input.
	EOF
	// Unknown marks a single byte the lexer could not classify.
	Unknown

	// --- Trivia -------------------------------------------------------
	Whitespace
	Newline
	EndOfLineComment
	RemComment

	// --- Identifiers and literals --------------------------------------
	Identifier
	IntegerLiteral
	LongLiteral
	SingleLiteral
	DoubleLiteral
	CurrencyLiteral
	StringLiteral
	DateLiteral

	// --- Operators and punctuation --------------------------------------
	EqualityOperator // =
	LessThanOperator
	GreaterThanOperator
	LessThanEqualOperator
	GreaterThanEqualOperator
	NotEqualOperator
	PlusOperator
	MinusOperator
	MultiplyOperator
	DivideOperator
	IntegerDivideOperator // \
	ExponentOperator      // ^
	LeftParenthesis
	RightParenthesis
	CommaOperator
	PeriodOperator
	ColonOperator
	SemicolonOperator
	BangOperator // !
	HashOperator // #
	DollarSign   // $
	PercentSign  // %
	AmpersandOperator // &
	AtSign            // @
	LeftBracket       // [
	RightBracket      // ]
	UnderscoreOperator

	keywordsStart

	// --- Keywords (case-insensitive, ≈120 entries) ---------------------
	SubKeyword
	FunctionKeyword
	PropertyKeyword
	EndKeyword
	IfKeyword
	ThenKeyword
	ElseKeyword
	ElseIfKeyword
	ForKeyword
	EachKeyword
	InKeyword
	ToKeyword
	StepKeyword
	NextKeyword
	DoKeyword
	LoopKeyword
	WhileKeyword
	UntilKeyword
	WendKeyword
	SelectKeyword
	CaseKeyword
	WithKeyword
	DimKeyword
	ReDimKeyword
	PreserveKeyword
	StaticKeyword
	ConstKeyword
	PublicKeyword
	PrivateKeyword
	FriendKeyword
	GlobalKeyword
	SetKeyword
	LetKeyword
	CallKeyword
	ReturnKeyword
	GoToKeyword
	GoSubKeyword
	ExitKeyword
	OnKeyword
	ErrorKeyword
	ResumeKeyword
	AsKeyword
	ByValKeyword
	ByRefKeyword
	OptionalKeyword
	ParamArrayKeyword
	IsKeyword
	NewKeyword
	NothingKeyword
	TrueKeyword
	FalseKeyword
	NullKeyword
	AndKeyword
	OrKeyword
	NotKeyword
	XorKeyword
	ModKeyword
	EqvKeyword
	ImpKeyword
	AddressOfKeyword
	DeclareKeyword
	LibKeyword
	AliasKeyword
	EnumKeyword
	TypeKeyword
	ImplementsKeyword
	EventKeyword
	RaiseEventKeyword
	WithEventsKeyword
	OptionKeyword
	ExplicitKeyword
	CompareKeyword
	BaseKeyword
	OpenKeyword
	CloseKeyword
	ResetKeyword
	InputKeyword
	OutputKeyword
	AppendKeyword
	RandomKeyword
	BinaryKeyword
	PrintKeyword
	WriteKeyword
	LineKeyword
	GetKeyword
	PutKeyword
	SeekKeyword
	LockKeyword
	UnlockKeyword
	LSetKeyword
	RSetKeyword
	MidKeyword
	MidBKeyword
	WidthKeyword
	TimeKeyword
	DateKeyword
	NameKeyword
	KillKeyword
	MkDirKeyword
	RmDirKeyword
	ChDirKeyword
	ChDriveKeyword
	FileCopyKeyword
	SetAttrKeyword
	SendKeysKeyword
	LoadKeyword
	SavePictureKeyword
	SaveSettingKeyword
	DeleteSettingKeyword
	RandomizeKeyword
	StopKeyword
	EraseKeyword
	BeepKeyword
	LikeKeyword
	VersionKeyword
	BeginKeyword
	ClassKeyword
	AttributeKeyword

	// Intrinsic type-name keywords, used in "As Type" positions.
	IntegerKeyword
	LongKeyword
	SingleKeyword
	DoubleKeyword
	CurrencyKeyword
	StringKeyword
	BooleanKeyword
	ByteKeyword
	VariantKeyword
	ObjectKeyword
	DecimalKeyword

	// Def* family: one keyword per intrinsic type abbreviation.
	DefBoolKeyword
	DefByteKeyword
	DefIntKeyword
	DefLngKeyword
	DefLngLngKeyword
	DefLngPtrKeyword
	DefCurKeyword
	DefSngKeyword
	DefDblKeyword
	DefDateKeyword
	DefStrKeyword
	DefObjKeyword
	DefVarKeyword
	DefDecKeyword

	keywordsEnd
)

var names = [...]string{
	Illegal:                  "Illegal",
	EOF:                      "EOF",
	Unknown:                  "Unknown",
	Whitespace:               "Whitespace",
	Newline:                  "Newline",
	EndOfLineComment:         "EndOfLineComment",
	RemComment:               "RemComment",
	Identifier:               "Identifier",
	IntegerLiteral:           "IntegerLiteral",
	LongLiteral:              "LongLiteral",
	SingleLiteral:            "SingleLiteral",
	DoubleLiteral:            "DoubleLiteral",
	CurrencyLiteral:          "CurrencyLiteral",
	StringLiteral:            "StringLiteral",
	DateLiteral:              "DateLiteral",
	EqualityOperator:         "EqualityOperator",
	LessThanOperator:         "LessThanOperator",
	GreaterThanOperator:      "GreaterThanOperator",
	LessThanEqualOperator:    "LessThanEqualOperator",
	GreaterThanEqualOperator: "GreaterThanEqualOperator",
	NotEqualOperator:         "NotEqualOperator",
	PlusOperator:             "PlusOperator",
	MinusOperator:            "MinusOperator",
	MultiplyOperator:         "MultiplyOperator",
	DivideOperator:           "DivideOperator",
	IntegerDivideOperator:    "IntegerDivideOperator",
	ExponentOperator:         "ExponentOperator",
	LeftParenthesis:          "LeftParenthesis",
	RightParenthesis:         "RightParenthesis",
	CommaOperator:            "CommaOperator",
	PeriodOperator:           "PeriodOperator",
	ColonOperator:            "ColonOperator",
	SemicolonOperator:        "SemicolonOperator",
	BangOperator:             "BangOperator",
	HashOperator:             "HashOperator",
	DollarSign:               "DollarSign",
	PercentSign:              "PercentSign",
	AmpersandOperator:        "AmpersandOperator",
	AtSign:                   "AtSign",
	LeftBracket:              "LeftBracket",
	RightBracket:             "RightBracket",
	UnderscoreOperator:       "UnderscoreOperator",

	SubKeyword:           "SubKeyword",
	FunctionKeyword:      "FunctionKeyword",
	PropertyKeyword:      "PropertyKeyword",
	EndKeyword:           "EndKeyword",
	IfKeyword:            "IfKeyword",
	ThenKeyword:          "ThenKeyword",
	ElseKeyword:          "ElseKeyword",
	ElseIfKeyword:        "ElseIfKeyword",
	ForKeyword:           "ForKeyword",
	EachKeyword:          "EachKeyword",
	InKeyword:            "InKeyword",
	ToKeyword:            "ToKeyword",
	StepKeyword:          "StepKeyword",
	NextKeyword:          "NextKeyword",
	DoKeyword:            "DoKeyword",
	LoopKeyword:          "LoopKeyword",
	WhileKeyword:         "WhileKeyword",
	UntilKeyword:         "UntilKeyword",
	WendKeyword:          "WendKeyword",
	SelectKeyword:        "SelectKeyword",
	CaseKeyword:          "CaseKeyword",
	WithKeyword:          "WithKeyword",
	DimKeyword:           "DimKeyword",
	ReDimKeyword:         "ReDimKeyword",
	PreserveKeyword:      "PreserveKeyword",
	StaticKeyword:        "StaticKeyword",
	ConstKeyword:         "ConstKeyword",
	PublicKeyword:        "PublicKeyword",
	PrivateKeyword:       "PrivateKeyword",
	FriendKeyword:        "FriendKeyword",
	GlobalKeyword:        "GlobalKeyword",
	SetKeyword:           "SetKeyword",
	LetKeyword:           "LetKeyword",
	CallKeyword:          "CallKeyword",
	ReturnKeyword:        "ReturnKeyword",
	GoToKeyword:          "GoToKeyword",
	GoSubKeyword:         "GoSubKeyword",
	ExitKeyword:          "ExitKeyword",
	OnKeyword:            "OnKeyword",
	ErrorKeyword:         "ErrorKeyword",
	ResumeKeyword:        "ResumeKeyword",
	AsKeyword:            "AsKeyword",
	ByValKeyword:         "ByValKeyword",
	ByRefKeyword:         "ByRefKeyword",
	OptionalKeyword:      "OptionalKeyword",
	ParamArrayKeyword:    "ParamArrayKeyword",
	IsKeyword:            "IsKeyword",
	NewKeyword:           "NewKeyword",
	NothingKeyword:       "NothingKeyword",
	TrueKeyword:          "TrueKeyword",
	FalseKeyword:         "FalseKeyword",
	NullKeyword:          "NullKeyword",
	AndKeyword:           "AndKeyword",
	OrKeyword:            "OrKeyword",
	NotKeyword:           "NotKeyword",
	XorKeyword:           "XorKeyword",
	ModKeyword:           "ModKeyword",
	EqvKeyword:           "EqvKeyword",
	ImpKeyword:           "ImpKeyword",
	AddressOfKeyword:     "AddressOfKeyword",
	DeclareKeyword:       "DeclareKeyword",
	LibKeyword:           "LibKeyword",
	AliasKeyword:         "AliasKeyword",
	EnumKeyword:          "EnumKeyword",
	TypeKeyword:          "TypeKeyword",
	ImplementsKeyword:    "ImplementsKeyword",
	EventKeyword:         "EventKeyword",
	RaiseEventKeyword:    "RaiseEventKeyword",
	WithEventsKeyword:    "WithEventsKeyword",
	OptionKeyword:        "OptionKeyword",
	ExplicitKeyword:      "ExplicitKeyword",
	CompareKeyword:       "CompareKeyword",
	BaseKeyword:          "BaseKeyword",
	OpenKeyword:          "OpenKeyword",
	CloseKeyword:         "CloseKeyword",
	ResetKeyword:         "ResetKeyword",
	InputKeyword:         "InputKeyword",
	OutputKeyword:        "OutputKeyword",
	AppendKeyword:        "AppendKeyword",
	RandomKeyword:        "RandomKeyword",
	BinaryKeyword:        "BinaryKeyword",
	PrintKeyword:         "PrintKeyword",
	WriteKeyword:         "WriteKeyword",
	LineKeyword:          "LineKeyword",
	GetKeyword:           "GetKeyword",
	PutKeyword:           "PutKeyword",
	SeekKeyword:          "SeekKeyword",
	LockKeyword:          "LockKeyword",
	UnlockKeyword:        "UnlockKeyword",
	LSetKeyword:          "LSetKeyword",
	RSetKeyword:          "RSetKeyword",
	MidKeyword:           "MidKeyword",
	MidBKeyword:          "MidBKeyword",
	WidthKeyword:         "WidthKeyword",
	TimeKeyword:          "TimeKeyword",
	DateKeyword:          "DateKeyword",
	NameKeyword:          "NameKeyword",
	KillKeyword:          "KillKeyword",
	MkDirKeyword:         "MkDirKeyword",
	RmDirKeyword:         "RmDirKeyword",
	ChDirKeyword:         "ChDirKeyword",
	ChDriveKeyword:       "ChDriveKeyword",
	FileCopyKeyword:      "FileCopyKeyword",
	SetAttrKeyword:       "SetAttrKeyword",
	SendKeysKeyword:      "SendKeysKeyword",
	LoadKeyword:          "LoadKeyword",
	SavePictureKeyword:   "SavePictureKeyword",
	SaveSettingKeyword:   "SaveSettingKeyword",
	DeleteSettingKeyword: "DeleteSettingKeyword",
	RandomizeKeyword:     "RandomizeKeyword",
	StopKeyword:          "StopKeyword",
	EraseKeyword:         "EraseKeyword",
	BeepKeyword:          "BeepKeyword",
	LikeKeyword:          "LikeKeyword",
	VersionKeyword:       "VersionKeyword",
	BeginKeyword:         "BeginKeyword",
	ClassKeyword:         "ClassKeyword",
	AttributeKeyword:     "AttributeKeyword",

	IntegerKeyword:  "IntegerKeyword",
	LongKeyword:     "LongKeyword",
	SingleKeyword:   "SingleKeyword",
	DoubleKeyword:   "DoubleKeyword",
	CurrencyKeyword: "CurrencyKeyword",
	StringKeyword:   "StringKeyword",
	BooleanKeyword:  "BooleanKeyword",
	ByteKeyword:     "ByteKeyword",
	VariantKeyword:  "VariantKeyword",
	ObjectKeyword:   "ObjectKeyword",
	DecimalKeyword:  "DecimalKeyword",

	DefBoolKeyword:   "DefBoolKeyword",
	DefByteKeyword:   "DefByteKeyword",
	DefIntKeyword:    "DefIntKeyword",
	DefLngKeyword:    "DefLngKeyword",
	DefLngLngKeyword: "DefLngLngKeyword",
	DefLngPtrKeyword: "DefLngPtrKeyword",
	DefCurKeyword:    "DefCurKeyword",
	DefSngKeyword:    "DefSngKeyword",
	DefDblKeyword:    "DefDblKeyword",
	DefDateKeyword:   "DefDateKeyword",
	DefStrKeyword:    "DefStrKeyword",
	DefObjKeyword:    "DefObjKeyword",
	DefVarKeyword:    "DefVarKeyword",
	DefDecKeyword:    "DefDecKeyword",
}

// String returns the Kind's constant name, or "Kind(n)" for an out-of-range
// value.
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// IsKeyword reports whether k is one of the closed keyword family.
func (k Kind) IsKeyword() bool {
	return k > keywordsStart && k < keywordsEnd
}

// IsTrivia reports whether k is whitespace, a newline, or a comment — the
// kinds that must round-trip but carry no semantic content.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, EndOfLineComment, RemComment:
		return true
	default:
		return false
	}
}

// keywordSpellings maps every keyword Kind to its canonical (mixed-case)
// spelling for case-insensitive matching: a single canonical-case
// comparison against this table classifies any spelling variant.
var keywordSpellings = map[Kind]string{
	SubKeyword:           "Sub",
	FunctionKeyword:      "Function",
	PropertyKeyword:      "Property",
	EndKeyword:           "End",
	IfKeyword:            "If",
	ThenKeyword:          "Then",
	ElseKeyword:          "Else",
	ElseIfKeyword:        "ElseIf",
	ForKeyword:           "For",
	EachKeyword:          "Each",
	InKeyword:            "In",
	ToKeyword:            "To",
	StepKeyword:          "Step",
	NextKeyword:          "Next",
	DoKeyword:            "Do",
	LoopKeyword:          "Loop",
	WhileKeyword:         "While",
	UntilKeyword:         "Until",
	WendKeyword:          "Wend",
	SelectKeyword:        "Select",
	CaseKeyword:          "Case",
	WithKeyword:          "With",
	DimKeyword:           "Dim",
	ReDimKeyword:         "ReDim",
	PreserveKeyword:      "Preserve",
	StaticKeyword:        "Static",
	ConstKeyword:         "Const",
	PublicKeyword:        "Public",
	PrivateKeyword:       "Private",
	FriendKeyword:        "Friend",
	GlobalKeyword:        "Global",
	SetKeyword:           "Set",
	LetKeyword:           "Let",
	CallKeyword:          "Call",
	ReturnKeyword:        "Return",
	GoToKeyword:          "GoTo",
	GoSubKeyword:         "GoSub",
	ExitKeyword:          "Exit",
	OnKeyword:            "On",
	ErrorKeyword:         "Error",
	ResumeKeyword:        "Resume",
	AsKeyword:            "As",
	ByValKeyword:         "ByVal",
	ByRefKeyword:         "ByRef",
	OptionalKeyword:      "Optional",
	ParamArrayKeyword:    "ParamArray",
	IsKeyword:            "Is",
	NewKeyword:           "New",
	NothingKeyword:       "Nothing",
	TrueKeyword:          "True",
	FalseKeyword:         "False",
	NullKeyword:          "Null",
	AndKeyword:           "And",
	OrKeyword:            "Or",
	NotKeyword:           "Not",
	XorKeyword:           "Xor",
	ModKeyword:           "Mod",
	EqvKeyword:           "Eqv",
	ImpKeyword:           "Imp",
	AddressOfKeyword:     "AddressOf",
	DeclareKeyword:       "Declare",
	LibKeyword:           "Lib",
	AliasKeyword:         "Alias",
	EnumKeyword:          "Enum",
	TypeKeyword:          "Type",
	ImplementsKeyword:    "Implements",
	EventKeyword:         "Event",
	RaiseEventKeyword:    "RaiseEvent",
	WithEventsKeyword:    "WithEvents",
	OptionKeyword:        "Option",
	ExplicitKeyword:      "Explicit",
	CompareKeyword:       "Compare",
	BaseKeyword:          "Base",
	OpenKeyword:          "Open",
	CloseKeyword:         "Close",
	ResetKeyword:         "Reset",
	InputKeyword:         "Input",
	OutputKeyword:        "Output",
	AppendKeyword:        "Append",
	RandomKeyword:        "Random",
	BinaryKeyword:        "Binary",
	PrintKeyword:         "Print",
	WriteKeyword:         "Write",
	LineKeyword:          "Line",
	GetKeyword:           "Get",
	PutKeyword:           "Put",
	SeekKeyword:          "Seek",
	LockKeyword:          "Lock",
	UnlockKeyword:        "Unlock",
	LSetKeyword:          "LSet",
	RSetKeyword:          "RSet",
	MidKeyword:           "Mid",
	MidBKeyword:          "MidB",
	WidthKeyword:         "Width",
	TimeKeyword:          "Time",
	DateKeyword:          "Date",
	NameKeyword:          "Name",
	KillKeyword:          "Kill",
	MkDirKeyword:         "MkDir",
	RmDirKeyword:         "RmDir",
	ChDirKeyword:         "ChDir",
	ChDriveKeyword:       "ChDrive",
	FileCopyKeyword:      "FileCopy",
	SetAttrKeyword:       "SetAttr",
	SendKeysKeyword:      "SendKeys",
	LoadKeyword:          "Load",
	SavePictureKeyword:   "SavePicture",
	SaveSettingKeyword:   "SaveSetting",
	DeleteSettingKeyword: "DeleteSetting",
	RandomizeKeyword:     "Randomize",
	StopKeyword:          "Stop",
	EraseKeyword:         "Erase",
	BeepKeyword:          "Beep",
	LikeKeyword:          "Like",
	VersionKeyword:       "VERSION",
	BeginKeyword:         "Begin",
	ClassKeyword:         "CLASS",
	AttributeKeyword:     "Attribute",

	IntegerKeyword:  "Integer",
	LongKeyword:     "Long",
	SingleKeyword:   "Single",
	DoubleKeyword:   "Double",
	CurrencyKeyword: "Currency",
	StringKeyword:   "String",
	BooleanKeyword:  "Boolean",
	ByteKeyword:     "Byte",
	VariantKeyword:  "Variant",
	ObjectKeyword:   "Object",
	DecimalKeyword:  "Decimal",

	DefBoolKeyword:   "DefBool",
	DefByteKeyword:   "DefByte",
	DefIntKeyword:    "DefInt",
	DefLngKeyword:    "DefLng",
	DefLngLngKeyword: "DefLngLng",
	DefLngPtrKeyword: "DefLngPtr",
	DefCurKeyword:    "DefCur",
	DefSngKeyword:    "DefSng",
	DefDblKeyword:    "DefDbl",
	DefDateKeyword:   "DefDate",
	DefStrKeyword:    "DefStr",
	DefObjKeyword:    "DefObj",
	DefVarKeyword:    "DefVar",
	DefDecKeyword:    "DefDec",
}

// Keywords returns every keyword Kind paired with its canonical spelling, in
// a deterministic longest-first order (e.g. "ElseIf" before "Else"). The
// lexer builds a lookup map from this list, so the order does not affect
// matching.
func Keywords() []struct {
	Kind     Kind
	Spelling string
} {
	out := make([]struct {
		Kind     Kind
		Spelling string
	}, 0, len(keywordSpellings))
	for k, s := range keywordSpellings {
		out = append(out, struct {
			Kind     Kind
			Spelling string
		}{k, s})
	}
	// Longest spelling first, then stable by spelling for determinism.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a, b := out[j-1], out[j]
			swap := len(a.Spelling) < len(b.Spelling)
			if len(a.Spelling) == len(b.Spelling) {
				swap = a.Spelling > b.Spelling
			}
			if !swap {
				break
			}
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Spelling returns the canonical mixed-case spelling of a keyword Kind, or
// "" if k is not a keyword.
func Spelling(k Kind) string {
	return keywordSpellings[k]
}
