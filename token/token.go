// Package token defines the lexical vocabulary shared between the Sable
// lexer and the AST. The AST stores Token values verbatim; producing
// them from source text is the lexer's job.
package token

import "fmt"

// Kind represents the type of a lexical token.
type Kind uint

const (
	// Special tokens
	EOF   Kind = iota // end of file
	Error             // lexical error

	// Identifiers and literals
	Name      // identifier: foo, bar, Animal
	IntLit    // 123, 0x1F
	FloatLit  // 3.14, 1e10
	StringLit // "hello"
	CharLit   // 'a'

	// Operators (ordered by precedence, low to high)
	// Assignment
	Assign // =

	// Logical operators
	OrOr   // ||
	AndAnd // &&

	// Comparison operators
	Eql // ==
	Neq // !=
	Lss // <
	Leq // <=
	Gtr // >
	Geq // >=

	// Arithmetic operators (additive)
	Add // +
	Sub // -
	Or  // |
	Xor // ^

	// Arithmetic operators (multiplicative)
	Mul // *
	Div // /
	Rem // %
	And // &
	Shl // <<
	Shr // >>

	// Unary operators
	Not // !

	// Delimiters
	Lparen // (
	Rparen // )
	Lbrack // [
	Rbrack // ]
	Lbrace // {
	Rbrace // }
	Comma  // ,
	Semi   // ;
	Colon  // :
	Dot    // .
	Arrow  // ->

	// Keywords
	As
	Break
	Class
	Continue
	Else
	For
	Function
	Goto
	If
	Label
	Return
	Var
	While

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	EOF:   "EOF",
	Error: "ERROR",

	Name:      "NAME",
	IntLit:    "INT",
	FloatLit:  "FLOAT",
	StringLit: "STRING",
	CharLit:   "CHAR",

	Assign: "=",

	OrOr:   "||",
	AndAnd: "&&",

	Eql: "==",
	Neq: "!=",
	Lss: "<",
	Leq: "<=",
	Gtr: ">",
	Geq: ">=",

	Add: "+",
	Sub: "-",
	Or:  "|",
	Xor: "^",

	Mul: "*",
	Div: "/",
	Rem: "%",
	And: "&",
	Shl: "<<",
	Shr: ">>",

	Not: "!",

	Lparen: "(",
	Rparen: ")",
	Lbrack: "[",
	Rbrack: "]",
	Lbrace: "{",
	Rbrace: "}",
	Comma:  ",",
	Semi:   ";",
	Colon:  ":",
	Dot:    ".",
	Arrow:  "->",

	As:       "as",
	Break:    "break",
	Class:    "class",
	Continue: "continue",
	Else:     "else",
	For:      "for",
	Function: "function",
	Goto:     "goto",
	If:       "if",
	Label:    "label",
	Return:   "return",
	Var:      "var",
	While:    "while",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: ||
//	2: &&
//	3: == != < <= > >=
//	4: + - | ^
//	5: * / % & << >>
func (k Kind) Precedence() int {
	switch k {
	case OrOr:
		return 1
	case AndAnd:
		return 2
	case Eql, Neq, Lss, Leq, Gtr, Geq:
		return 3
	case Add, Sub, Or, Xor:
		return 4
	case Mul, Div, Rem, And, Shl, Shr:
		return 5
	}
	return 0
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k >= As && k <= While
}

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool {
	return k >= IntLit && k <= CharLit
}

// IsOperator reports whether k is an operator kind.
func (k Kind) IsOperator() bool {
	return k >= Assign && k <= Not
}

// IsEOF reports whether k is the EOF kind.
func (k Kind) IsEOF() bool {
	return k == EOF
}

// keywords maps keyword strings to their kind.
var keywords = map[string]Kind{
	"as":       As,
	"break":    Break,
	"class":    Class,
	"continue": Continue,
	"else":     Else,
	"for":      For,
	"function": Function,
	"goto":     Goto,
	"if":       If,
	"label":    Label,
	"return":   Return,
	"var":      Var,
	"while":    While,
}

// LookupKeyword returns the kind for the given identifier string.
// If the identifier is a keyword, returns the keyword kind.
// Otherwise, returns Name.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Name
}

// Token is a single lexical unit: its kind, the source text it was
// scanned from, and where it appeared. Tokens are plain values and are
// stored unchanged inside AST nodes.
type Token struct {
	Kind Kind   // lexical class of the token
	Text string // lexeme as it appeared in the source
	Pos  Pos    // position of the first character
}

// String returns the token text for named and literal tokens, and the
// kind's fixed spelling for everything else.
func (t Token) String() string {
	if t.Kind == Name || t.Kind.IsLiteral() {
		return t.Text
	}
	return t.Kind.String()
}
