package err

import (
	"strconv"

	"github.com/nthery/pratt-parser/source/text"
	"github.com/nthery/pratt-parser/source/token"
)

// An Error is recoverable by design: the parser accumulates them and the
// caller decides whether to report, retry, or give up. Nothing in this
// repository calls os.Exit or panics on bad input.
type Error struct {
	ErrorId string
	Message string
	Token   token.Token
}

func (e *Error) Error() string {
	return e.Message
}

// The error messages are kept in one place, keyed by error id, so that the
// rest of the code can throw an error by name without knowing or caring how
// it will be phrased.
var errorCreatorMap = map[string]func(tok *token.Token, args ...any) string{

	"parse/unexpected": func(tok *token.Token, args ...any) string {
		return "unexpected character " + text.Emph(tok.Literal)
	},

	"parse/expected": func(tok *token.Token, args ...any) string {
		return "expected " + text.Emph(args[0].(string)) + ", got " + text.Emph(tok.Literal)
	},

	"parse/match": func(tok *token.Token, args ...any) string {
		return "found " + text.Emph(tok.Literal) + " with nothing for it to close"
	},

	"parse/overflow": func(tok *token.Token, args ...any) string {
		return "the output would exceed its capacity of " + strconv.Itoa(args[0].(int)) + " characters"
	},
}

func CreateErr(errorId string, tok *token.Token, args ...any) *Error {
	creator, ok := errorCreatorMap[errorId]
	msg := "oops, '" + errorId + "' is not a real error id. This should never happen"
	if ok {
		msg = creator(tok, args...)
	}
	return &Error{ErrorId: errorId, Message: msg, Token: *tok}
}

// Appends a new error to the given list of errors and returns the list, this
// being the shape of thing the parser wants to do with its errors.
func Throw(errorId string, errors []*Error, tok *token.Token, args ...any) []*Error {
	return append(errors, CreateErr(errorId, tok, args...))
}

// Turns a list of errors into a report we can show a human being.
func GetList(errors []*Error) string {
	result := "\n"
	for i, e := range errors {
		result = result + text.ERROR + e.Message +
			" at character " + strconv.Itoa(e.Token.ChStart) +
			" of " + text.Emph(e.Token.Source)
		if i < len(errors)-1 {
			result = result + "\n"
		}
	}
	return result + "\n"
}
