package token

type TokenType = string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	VARIABLE = "VARIABLE" // 'A'..'Z', 'a'..'z'

	TILDE = "TILDE" // The one prefix operator.

	// Infix operators.
	ASSIGN   = "ASSIGN"
	PLUS     = "PLUS"
	MINUS    = "MINUS"
	MULTIPLY = "MULTIPLY"
	DIVIDE   = "DIVIDE"

	LPAREN = "LPAREN"
	RPAREN = "RPAREN"
)

// Every token is one character long and so unlike in a grown-up language we
// need only remember where it starts.
type Token struct {
	Type    TokenType
	Literal string
	ChStart int
	Source  string
}

func MakeToken(tokenType TokenType, literal string, chStart int, source string) Token {
	return Token{Type: tokenType, Literal: literal, ChStart: chStart, Source: source}
}
