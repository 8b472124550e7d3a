package parser

import (
	"strconv"

	"github.com/nthery/pratt-parser/source/dtypes"
	"github.com/nthery/pratt-parser/source/lexer"
	"github.com/nthery/pratt-parser/source/token"
)

// The precedence classes. There must be gaps between them because the
// recursive parsing call for a right-associative operator passes its
// precedence minus one to achieve right-associativity.
const (
	LOWEST         = 0
	ASSIGNMENT     = 1
	ADDITIVE       = 10
	MULTIPLICATIVE = 20
)

// What the precedence climber needs to know about an infix operator.
type Operator struct {
	Precedence       int
	RightAssociative bool
}

var (
	assignmentOp     = Operator{ASSIGNMENT, true}
	additiveOp       = Operator{ADDITIVE, false}
	multiplicativeOp = Operator{MULTIPLICATIVE, false}
)

// This is the only place where precedence and associativity policy is
// declared: the climber itself is entirely data-driven by it. The second
// return value is false if the token isn't an infix operator at all.
func OperatorInfo(tokenType token.TokenType) (Operator, bool) {
	switch tokenType {
	case token.ASSIGN:
		return assignmentOp, true
	case token.PLUS, token.MINUS:
		return additiveOp, true
	case token.MULTIPLY, token.DIVIDE:
		return multiplicativeOp, true
	}
	return Operator{}, false
}

// For the hub's `ops` command: one line per operator symbol, highest
// precedence first. The ordered set keeps the listing deterministic.
func DescribeOperators() []string {
	symbols := dtypes.NewOrderedSet()
	for _, sym := range []string{"*", "/", "+", "-", "="} {
		symbols.Add(sym)
	}
	result := []string{}
	for _, sym := range symbols.Elements() {
		opInfo, ok := OperatorInfo(lexer.Classify([]rune(sym)[0]))
		if !ok {
			continue
		}
		assoc := "left-associative"
		if opInfo.RightAssociative {
			assoc = "right-associative"
		}
		result = append(result, sym+"  precedence "+strconv.Itoa(opInfo.Precedence)+", "+assoc)
	}
	return result
}
