package parser

import (
	"strings"

	"src.elv.sh/pkg/persistent/vector"

	"github.com/nthery/pratt-parser/source/dtypes"
	"github.com/nthery/pratt-parser/source/lexer"
	"github.com/nthery/pratt-parser/source/token"
)

// The result of a parse: an append-only sequence of tokens in postfix order.
// One Output belongs to one call of ParseLine and is thrown away or handed
// to the caller at the end of it.
type Output struct {
	tokens   vector.Vector
	capacity int
}

func NewOutput(capacity int) *Output {
	return &Output{tokens: vector.Empty, capacity: capacity}
}

// The second return value is false if the output is full.
func (out *Output) Emit(tok token.Token) bool {
	if out.tokens.Len() >= out.capacity {
		return false
	}
	out.tokens = out.tokens.Conj(tok)
	return true
}

func (out *Output) Len() int {
	return out.tokens.Len()
}

func (out *Output) String() string {
	var sb strings.Builder
	for it := out.tokens.Iterator(); it.HasElem(); it.Next() {
		sb.WriteString(it.Elem().(token.Token).Literal)
	}
	return sb.String()
}

// The literals of the emitted tokens, one string per token.
func (out *Output) Literals() []string {
	result := []string{}
	for it := out.tokens.Iterator(); it.HasElem(); it.Next() {
		result = append(result, it.Elem().(token.Token).Literal)
	}
	return result
}

// ToInfix reconstructs a fully parenthesized infix expression from a postfix
// one, which is useful when you want to see how the parser grouped things.
// Since it runs the parser's output backwards it also checks the arity of
// everything: the second return value is false if the string is not a
// well-formed postfix expression.
func ToInfix(postfix string) (string, bool) {
	stack := dtypes.NewStack[string]()
	for _, ch := range postfix {
		tokenType := lexer.Classify(ch)
		switch {
		case tokenType == token.VARIABLE:
			stack.Push(string(ch))
		case tokenType == token.TILDE:
			operand, ok := stack.Pop()
			if !ok {
				return "", false
			}
			stack.Push("~" + operand)
		default:
			if _, isOp := OperatorInfo(tokenType); !isOp {
				return "", false
			}
			right, ok := stack.Pop()
			if !ok {
				return "", false
			}
			left, ok := stack.Pop()
			if !ok {
				return "", false
			}
			stack.Push("(" + left + string(ch) + right + ")")
		}
	}
	if stack.Len() != 1 {
		return "", false
	}
	result, _ := stack.Pop()
	return result, true
}
