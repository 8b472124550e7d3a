// The `pf` package is the public API: everything a Go program needs to turn
// an infix expression into a reverse-Polish one without knowing how the
// sausage is made.
package pf

import (
	"strings"

	"github.com/wundergraph/astjson"

	"github.com/nthery/pratt-parser/source/err"
	"github.com/nthery/pratt-parser/source/parser"
	"github.com/nthery/pratt-parser/source/settings"
)

// We expose the parser's error type so that callers can get at the error id
// and the position of the offending token.
type Error = err.Error

// Convert parses an infix expression and returns its postfix form. The input
// consists of single-character tokens with no whitespace: variables 'A'..'Z'
// and 'a'..'z', the prefix operator '~', the infix operators '+', '-', '*',
// '/' and '=', and parentheses.
func Convert(input string) (string, error) {
	return ConvertWithCapacity(input, settings.MAX_OUTPUT)
}

// As Convert, but with a caller-chosen bound on the size of the output.
func ConvertWithCapacity(input string, capacity int) (string, error) {
	p := parser.NewWithCapacity(capacity)
	result := p.ParseLine("pf", input)
	if p.ErrorsExist() {
		return "", p.Errors[0]
	}
	return result, nil
}

// ConvertToJson returns the postfix form as a JSON array with one string per
// emitted token.
func ConvertToJson(input string) (string, error) {
	postfix, e := Convert(input)
	if e != nil {
		return "", e
	}
	var a astjson.Arena
	arr := a.NewArray()
	for i, sym := range strings.Split(postfix, "") {
		arr.SetArrayItem(i, a.NewString(sym))
	}
	return string(arr.MarshalTo(nil)), nil
}

// Explain parses an infix expression and then renders the result back as a
// fully parenthesized infix expression, showing how everything was grouped.
func Explain(input string) (string, error) {
	postfix, e := Convert(input)
	if e != nil {
		return "", e
	}
	infix, ok := parser.ToInfix(postfix)
	if !ok {
		// The parser emitting ill-formed postfix would be a bug, not an
		// input error.
		panic("pf: parser emitted ill-formed postfix " + postfix)
	}
	return infix, nil
}
