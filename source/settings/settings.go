// All this does is contain in one place the constants controlling which bits
// of the inner workings of the lexer and parser are displayed for debugging
// purposes. In a release they must all be set to false except SHOW_TESTS,
// which may as well be left as true.
package settings

const (
	SHOW_LEXER  = false
	SHOW_PARSER = false
	SHOW_TESTS  = true // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)

// Maximum number of characters in the output of one parse. The same figure as
// the C original, and for the same reason: nobody sane types an expression
// that long by hand.
const MAX_OUTPUT = 1024
