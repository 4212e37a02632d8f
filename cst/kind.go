// Package cst implements the lossless Concrete Syntax Tree: a write-once
// tree of Branch (composite) and Leaf (token) nodes whose in-order leaf
// concatenation exactly reproduces the parsed input.
//
// The tree is built from an event stream (start_node / token / finish_node)
// but, unlike a flat replayed event log, Builder materializes real
// parent-pointing-free Branch/Leaf nodes directly.
package cst

import "fmt"

// Kind is the closed enumeration of composite (Branch) syntax categories.
// It is disjoint from token.Kind: a Kind here never appears on a Leaf, and
// a token.Kind never appears on a Branch.
type Kind uint16

const (
	KindIllegal Kind = iota

	// Root is the kind of the CST root; its children are top-level items
	// interleaved with trivia.
	Root

	// --- Top-level / header items ---------------------------------------
	AttributeStatement
	VersionHeader
	FormHeader
	ControlBlock
	PropertyAssignment
	ProcedureDefinition
	ParameterList
	Parameter
	TypeAnnotation

	// --- Declarations ----------------------------------------------------
	DeclarationStatement // Dim/Static/Const/Public/Private/Global
	Declarator
	ArrayBounds
	ReDimStatement
	EraseStatement
	EnumStatement
	EnumMember
	TypeStatement
	TypeMember
	DeclareStatement
	EventStatement
	ImplementsStatement
	ConditionalCompilationStatement

	// --- Statements --------------------------------------------------------
	AssignmentStatement
	LetStatement
	CallStatement
	LabelStatement
	GoToStatement
	GoSubStatement
	ReturnStatement
	ExitStatement
	OnErrorStatement
	ResumeStatement
	IfStatement
	ElseIfClause
	ElseClause
	ForStatement
	ForEachStatement
	DoLoopStatement
	WhileWendStatement
	SelectCaseStatement
	CaseClause
	WithStatement
	PropertyStatement
	CodeBlock

	// Generic container for the "simple builtin statement" family: Print,
	// ChDrive, ChDir, Error, FileCopy, SavePicture, Seek, Input, Lock,
	// Unlock, Put, Get, Date, Beep, Name, Kill, MkDir, RmDir, SetAttr,
	// SendKeys, Load, SaveSetting, DeleteSetting, Randomize, Stop, Width,
	// Time, Mid, LSet, RSet — every one of these gets the SAME node kind,
	// keyed by the statement's leading keyword.
	SimpleBuiltinStatement

	RecoveredStatement // malformed region absorbed during failure recovery

	// --- Expressions -----------------------------------------------------
	BinaryExpression
	UnaryExpression
	CallExpression
	MemberAccessExpression
	IndexExpression
	ParenthesizedExpression
	IdentifierExpression
	NumericLiteralExpression
	StringLiteralExpression
	DateLiteralExpression
	BooleanLiteralExpression
	NothingExpression
	NewExpression
	AddressOfExpression
	ArgumentList
	Argument

	KindCount
)

var kindNames = [...]string{
	KindIllegal:                "Illegal",
	Root:                       "Root",
	AttributeStatement:         "AttributeStatement",
	VersionHeader:              "VersionHeader",
	FormHeader:                 "FormHeader",
	ControlBlock:               "ControlBlock",
	PropertyAssignment:         "PropertyAssignment",
	ProcedureDefinition:        "ProcedureDefinition",
	ParameterList:              "ParameterList",
	Parameter:                  "Parameter",
	TypeAnnotation:             "TypeAnnotation",
	DeclarationStatement:       "DeclarationStatement",
	Declarator:                 "Declarator",
	ArrayBounds:                "ArrayBounds",
	ReDimStatement:             "ReDimStatement",
	EraseStatement:             "EraseStatement",
	EnumStatement:              "EnumStatement",
	EnumMember:                 "EnumMember",
	TypeStatement:              "TypeStatement",
	TypeMember:                 "TypeMember",
	DeclareStatement:           "DeclareStatement",
	EventStatement:             "EventStatement",
	ImplementsStatement:        "ImplementsStatement",
	ConditionalCompilationStatement: "ConditionalCompilationStatement",
	AssignmentStatement:        "AssignmentStatement",
	LetStatement:               "LetStatement",
	CallStatement:              "CallStatement",
	LabelStatement:             "LabelStatement",
	GoToStatement:              "GoToStatement",
	GoSubStatement:             "GoSubStatement",
	ReturnStatement:            "ReturnStatement",
	ExitStatement:              "ExitStatement",
	OnErrorStatement:           "OnErrorStatement",
	ResumeStatement:            "ResumeStatement",
	IfStatement:                "IfStatement",
	ElseIfClause:               "ElseIfClause",
	ElseClause:                 "ElseClause",
	ForStatement:               "ForStatement",
	ForEachStatement:           "ForEachStatement",
	DoLoopStatement:            "DoLoopStatement",
	WhileWendStatement:         "WhileWendStatement",
	SelectCaseStatement:        "SelectCaseStatement",
	CaseClause:                 "CaseClause",
	WithStatement:              "WithStatement",
	PropertyStatement:          "PropertyStatement",
	CodeBlock:                  "CodeBlock",
	SimpleBuiltinStatement:     "SimpleBuiltinStatement",
	RecoveredStatement:         "RecoveredStatement",
	BinaryExpression:           "BinaryExpression",
	UnaryExpression:            "UnaryExpression",
	CallExpression:             "CallExpression",
	MemberAccessExpression:     "MemberAccessExpression",
	IndexExpression:            "IndexExpression",
	ParenthesizedExpression:    "ParenthesizedExpression",
	IdentifierExpression:       "IdentifierExpression",
	NumericLiteralExpression:   "NumericLiteralExpression",
	StringLiteralExpression:    "StringLiteralExpression",
	DateLiteralExpression:      "DateLiteralExpression",
	BooleanLiteralExpression:   "BooleanLiteralExpression",
	NothingExpression:          "NothingExpression",
	NewExpression:              "NewExpression",
	AddressOfExpression:        "AddressOfExpression",
	ArgumentList:               "ArgumentList",
	Argument:                   "Argument",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
