package lambda

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ    TokenType
	Lexeme string
	// Offset is the position of the first rune of the token in the source,
	// counted in runes.
	Offset int
	Line   int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, offset int, line int) *Token {
	return &Token{typ, lexeme, offset, line}
}

// End returns the offset right after the last rune of the token.
func (t *Token) End() int {
	return t.Offset + len([]rune(t.Lexeme))
}

func (t *Token) String() string {
	if t.Typ == IDENT {
		return t.Lexeme
	}
	return t.Typ.String()
}

// TokenType is a just a wrapped string used to represent token's type
type TokenType string

const (
	// Single-character tokens
	L_PAREN  TokenType = "("
	R_PAREN  TokenType = ")"
	DOT      TokenType = "."
	COLON    TokenType = ":"
	LAMBDA   TokenType = "λ"
	PI       TokenType = "Π"
	SIGMA    TokenType = "Σ"
	UNIVERSE TokenType = "□"

	// Literals
	IDENT TokenType = "IDENT"

	// A rune that does not start any token
	INVALID TokenType = "INVALID"
	EOF     TokenType = "EOF"
)

func (tt TokenType) String() string {
	return string(tt)
}

// BinderTokens maps each binder keyword onto the kind of binder it introduces.
var BinderTokens = map[TokenType]BinderKind{
	LAMBDA: Lambda,
	PI:     Pi,
	SIGMA:  Sigma,
}

// BinderKind tells which of the three binders a node was built with.
type BinderKind int

const (
	Lambda BinderKind = iota
	Pi
	Sigma
)

// String returns the keyword of the binder, which is also its printed prefix.
func (kind BinderKind) String() string {
	switch kind {
	case Lambda:
		return "λ"
	case Pi:
		return "Π"
	case Sigma:
		return "Σ"
	}
	return fmt.Sprintf("BinderKind(%d)", int(kind))
}
