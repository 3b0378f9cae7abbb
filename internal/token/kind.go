package token

import "strconv"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks an erroneous token (e.g. an unterminated string).
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	KwVoid        // void
	KwInt         // int
	KwDouble      // double
	KwBool        // bool
	KwString      // string
	KwClass       // class
	KwInterface   // interface
	KwThis        // this
	KwExtends     // extends
	KwImplements  // implements
	KwFor         // for
	KwWhile       // while
	KwIf          // if
	KwElse        // else
	KwReturn      // return
	KwBreak       // break
	KwNew         // New
	KwNewArray    // NewArray
	KwPrint       // Print
	KwReadInteger // ReadInteger
	KwReadLine    // ReadLine

	// NullLit is the null literal.
	NullLit
	// IntLit is a decimal or hexadecimal integer literal.
	IntLit
	// DoubleLit is a floating point literal.
	DoubleLit
	// BoolLit is true or false.
	BoolLit
	// StringLit is a double-quoted string literal, quotes included.
	StringLit

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	Assign    // =
	EqEq      // ==
	BangEq    // !=
	AndAnd    // &&
	OrOr      // ||
	Bang      // !
	Semicolon // ;
	Comma     // ,
	Dot       // .
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Dims      // []

	kindCount
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	KwVoid:        "KwVoid",
	KwInt:         "KwInt",
	KwDouble:      "KwDouble",
	KwBool:        "KwBool",
	KwString:      "KwString",
	KwClass:       "KwClass",
	KwInterface:   "KwInterface",
	KwThis:        "KwThis",
	KwExtends:     "KwExtends",
	KwImplements:  "KwImplements",
	KwFor:         "KwFor",
	KwWhile:       "KwWhile",
	KwIf:          "KwIf",
	KwElse:        "KwElse",
	KwReturn:      "KwReturn",
	KwBreak:       "KwBreak",
	KwNew:         "KwNew",
	KwNewArray:    "KwNewArray",
	KwPrint:       "KwPrint",
	KwReadInteger: "KwReadInteger",
	KwReadLine:    "KwReadLine",
	NullLit:       "NullLit",
	IntLit:        "IntLit",
	DoubleLit:     "DoubleLit",
	BoolLit:       "BoolLit",
	StringLit:     "StringLit",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Assign:        "Assign",
	EqEq:          "EqEq",
	BangEq:        "BangEq",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	Bang:          "Bang",
	Semicolon:     "Semicolon",
	Comma:         "Comma",
	Dot:           "Dot",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	Dims:          "Dims",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword reports whether k is produced by a reserved word other than
// the literal keywords true, false and null.
func (k Kind) IsKeyword() bool {
	return k >= KwVoid && k <= KwReadLine
}

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool {
	return k >= NullLit && k <= StringLit
}

// IsOperator reports whether k is an operator or punctuation.
func (k Kind) IsOperator() bool {
	return k >= Plus && k <= Dims
}
