package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwType represents the 'type' keyword.
	KwType // type
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwImplements represents the 'implements' keyword.
	KwImplements // implements
	// KwReadonly represents the 'readonly' modifier keyword.
	KwReadonly // readonly
	// KwStatic represents the 'static' modifier keyword.
	KwStatic // static
	// KwDeclare represents the 'declare' modifier keyword.
	KwDeclare // declare

	// IntLit represents an integer literal.
	IntLit // 123
	// FloatLit represents a floating point literal.
	FloatLit // 1.5
	// StringLit represents a string literal, quotes included in Text.
	StringLit // "..."
	// BoolLit represents 'true' or 'false'.
	BoolLit // true | false
	// NullLit represents the 'null' literal.
	NullLit // null

	// At represents the decorator marker.
	At // @
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Comma represents ','.
	Comma // ,
	// Semicolon represents ';'.
	Semicolon // ;
	// Colon represents ':'.
	Colon // :
	// Question represents '?'.
	Question // ?
	// Assign represents '='.
	Assign // =
	// Pipe represents '|' in union types.
	Pipe // |
	// Amp represents '&' in intersection types.
	Amp // &
	// Dot represents '.'.
	Dot // .
	// Minus represents '-' (negative number literals in decorator args).
	Minus // -
)

var kindNames = map[Kind]string{
	Invalid:      "invalid",
	EOF:          "end of file",
	Ident:        "identifier",
	KwClass:      "'class'",
	KwInterface:  "'interface'",
	KwType:       "'type'",
	KwImport:     "'import'",
	KwFrom:       "'from'",
	KwExport:     "'export'",
	KwExtends:    "'extends'",
	KwImplements: "'implements'",
	KwReadonly:   "'readonly'",
	KwStatic:     "'static'",
	KwDeclare:    "'declare'",
	IntLit:       "integer literal",
	FloatLit:     "float literal",
	StringLit:    "string literal",
	BoolLit:      "boolean literal",
	NullLit:      "'null'",
	At:           "'@'",
	LParen:       "'('",
	RParen:       "')'",
	LBrace:       "'{'",
	RBrace:       "'}'",
	LBracket:     "'['",
	RBracket:     "']'",
	Lt:           "'<'",
	Gt:           "'>'",
	Comma:        "','",
	Semicolon:    "';'",
	Colon:        "':'",
	Question:     "'?'",
	Assign:       "'='",
	Pipe:         "'|'",
	Amp:          "'&'",
	Dot:          "'.'",
	Minus:        "'-'",
}

// String renders the kind the way diagnostics quote it.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown token"
}
