package parser

import (
	"github.com/nthery/pratt-parser/source/err"
	"github.com/nthery/pratt-parser/source/lexer"
	"github.com/nthery/pratt-parser/source/settings"
	"github.com/nthery/pratt-parser/source/text"
	"github.com/nthery/pratt-parser/source/token"
)

// A top-down operator precedence parser after the manner of Vaughan Pratt. It
// turns an infix expression into a reverse-Polish one, which it emits token
// by token as it goes: there is no syntax tree, the output *is* the parse.
//
// It consists of two mutually recursive functions. `parsePrimary` deals with
// the atoms of the grammar: variables, prefixed atoms, and parenthesized
// subexpressions. `parseExpression` eats a chain of infix operators whose
// precedence exceeds the floor its caller passed it, recursing with a higher
// floor to bind the right-hand operands. Associativity falls out of the floor
// arithmetic: a right-associative operator recurses with its own precedence
// minus one, so that an operator of equal precedence is absorbed into the
// recursive call; a left-associative one recurses with its precedence
// unchanged, so that an equal operator is left for the outer loop.
type Parser struct {
	TokenizedCode lexer.TokenSupplier
	CurToken      token.Token
	PeekToken     token.Token
	Errors        []*err.Error

	capacity int
	output   *Output
}

func New() *Parser {
	return &Parser{capacity: settings.MAX_OUTPUT}
}

// For callers who know better than the default output capacity, e.g. tests
// that want to see the overflow behavior without typing a kilobyte.
func NewWithCapacity(capacity int) *Parser {
	return &Parser{capacity: capacity}
}

// Parses one expression supplied as a string and returns its postfix form.
// If the returned string is empty the caller should consult ErrorsExist: no
// partial output is ever returned as success.
func (p *Parser) ParseLine(source, input string) string {
	return p.ParseTokenizedChunk(lexer.NewLexer(source, input))
}

// As ParseLine, but the tokens can come from anywhere.
func (p *Parser) ParseTokenizedChunk(supplier lexer.TokenSupplier) string {
	p.ResetAfterError()
	p.TokenizedCode = supplier
	p.output = NewOutput(p.capacity)
	p.NextToken()
	p.NextToken()
	p.parseExpression(LOWEST)
	if p.ErrorsExist() {
		return ""
	}
	p.NextToken()
	if p.CurToken.Type != token.EOF {
		p.Throw("parse/expected", &p.CurToken, "end of input")
		return ""
	}
	return p.output.String()
}

// Parses one primary expression, which begins at CurToken, and emits its
// postfix form. On return CurToken is the last token of the primary.
func (p *Parser) parsePrimary() {
	switch p.CurToken.Type {
	case token.TILDE:
		tildeToken := p.CurToken
		p.NextToken()
		p.parsePrimary()
		if p.ErrorsExist() {
			return
		}
		p.emit(tildeToken) // The prefix operator goes *after* its operand.
	case token.LPAREN:
		p.NextToken()
		p.parseExpression(LOWEST)
		if p.ErrorsExist() {
			return
		}
		if !p.expectPeek(token.RPAREN) {
			p.Throw("parse/expected", &p.PeekToken, ")")
		}
		// The parentheses themselves emit nothing: they have done their work
		// by grouping.
	case token.VARIABLE:
		p.emit(p.CurToken)
	default:
		p.Throw("parse/unexpected", &p.CurToken)
	}
}

// Parses a maximal chain of infix operators of precedence strictly greater
// than the given floor, starting at CurToken, and emits its postfix form.
// At every point the whole state of the parse is the position of the cursor
// and the floor of the current frame.
func (p *Parser) parseExpression(floor int) {
	p.parsePrimary()
	for !p.ErrorsExist() {
		opInfo, ok := OperatorInfo(p.PeekToken.Type)
		if !ok || floor >= opInfo.Precedence {
			return
		}
		opToken := p.PeekToken
		p.NextToken() // Consume the operator ...
		p.NextToken() // ... and move on to the start of its right operand.
		newFloor := opInfo.Precedence
		if opInfo.RightAssociative {
			newFloor--
		}
		p.parseExpression(newFloor)
		if p.ErrorsExist() {
			return
		}
		p.emit(opToken)
	}
}

func (p *Parser) emit(tok token.Token) {
	if settings.SHOW_PARSER {
		println(text.PURPLE + "emitting " + tok.Literal + text.RESET)
	}
	if !p.output.Emit(tok) {
		p.Throw("parse/overflow", &tok, p.capacity)
	}
}

func (p *Parser) NextToken() {
	p.CurToken = p.PeekToken
	p.PeekToken = p.TokenizedCode.NextToken()
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.PeekToken.Type == t {
		p.NextToken()
		return true
	}
	return false
}

// Functions for dealing with errors.

func (p *Parser) Throw(errorID string, tok *token.Token, args ...any) {
	c := *tok
	p.Errors = err.Throw(errorID, p.Errors, &c, args...)
}

func (p *Parser) ErrorsExist() bool {
	return len(p.Errors) > 0
}

func (p *Parser) ReturnErrors() string {
	return err.GetList(p.Errors)
}

func (p *Parser) ResetAfterError() {
	p.Errors = []*err.Error{}
}
