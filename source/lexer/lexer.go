package lexer

import (
	"unicode"

	"github.com/nthery/pratt-parser/source/settings"
	"github.com/nthery/pratt-parser/source/text"
	"github.com/nthery/pratt-parser/source/token"
)

// Anything that can supply the parser with tokens. The parser doesn't care
// whether they come from a lexer or from a can.
type TokenSupplier interface {
	NextToken() token.Token
}

// The lexer is as dumb as we can make it: every token is a single character
// and whitespace is forbidden, so all it has to do is classify one rune at a
// time. (This also means it can never get more than one character ahead of
// the parser, which keeps the errors honest.)
type Lexer struct {
	source string // Name of the source of the code, e.g. "repl".
	input  []rune
	pos    int
}

func NewLexer(source, input string) *Lexer {
	return &Lexer{source: source, input: []rune(input)}
}

func (lx *Lexer) NextToken() token.Token {
	tok := lx.nextToken()
	if settings.SHOW_LEXER {
		println(text.PURPLE + tok.Type + " " + tok.Literal + text.RESET)
	}
	return tok
}

func (lx *Lexer) nextToken() token.Token {
	if lx.pos >= len(lx.input) {
		return token.MakeToken(token.EOF, "end of input", lx.pos, lx.source)
	}
	ch := lx.input[lx.pos]
	tok := token.MakeToken(Classify(ch), string(ch), lx.pos, lx.source)
	lx.pos++
	return tok
}

// Classify says what kind of token a character would be. The parser also uses
// it to describe the operator table.
func Classify(ch rune) token.TokenType {
	switch ch {
	case '~':
		return token.TILDE
	case '=':
		return token.ASSIGN
	case '+':
		return token.PLUS
	case '-':
		return token.MINUS
	case '*':
		return token.MULTIPLY
	case '/':
		return token.DIVIDE
	case '(':
		return token.LPAREN
	case ')':
		return token.RPAREN
	}
	if ch <= unicode.MaxASCII && unicode.IsLetter(ch) {
		return token.VARIABLE
	}
	return token.ILLEGAL
}
