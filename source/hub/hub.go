package hub

import (
	"io"
	"strings"

	"github.com/nthery/pratt-parser/source/dtypes"
	"github.com/nthery/pratt-parser/source/err"
	"github.com/nthery/pratt-parser/source/parser"
	"github.com/nthery/pratt-parser/source/pf"
	"github.com/nthery/pratt-parser/source/text"
)

// The hub is the thing the user talks to: it owns the I/O and hands anything
// that looks like an expression to the parser. The parser itself neither
// reads nor writes anything.
type Hub struct {
	Out io.Writer
	p   *parser.Parser
}

func New(out io.Writer) *Hub {
	return &Hub{Out: out, p: parser.New()}
}

// The words the hub claims for itself. None of them is a valid expression,
// since expressions are made of single-character tokens.
var commandWords = dtypes.MakeFromSlice([]string{
	"help", "version", "ops", "infix", "json", "quit",
})

// Do interprets one line of input, either as a hub command or as an infix
// expression to convert. It returns true if the hub should quit.
func (hub *Hub) Do(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	if !commandWords.Contains(words[0]) {
		hub.convert(line)
		return false
	}
	switch words[0] {
	case "help":
		hub.WriteString(HELP)
	case "version":
		hub.WriteString("pratt-parser version " + VERSION + ".\n")
	case "ops":
		for _, description := range parser.DescribeOperators() {
			hub.WriteString(text.BULLET + description + "\n")
		}
	case "infix":
		if len(words) != 2 {
			hub.WriteString(text.ERROR + "usage: " + text.Emph("infix <expression>") + "\n")
			return false
		}
		result, e := pf.Explain(words[1])
		hub.emitResult(result, e)
	case "json":
		if len(words) != 2 {
			hub.WriteString(text.ERROR + "usage: " + text.Emph("json <expression>") + "\n")
			return false
		}
		result, e := pf.ConvertToJson(words[1])
		hub.emitResult(result, e)
	case "quit":
		hub.WriteString(text.Green("OK") + "\n")
		return true
	}
	return false
}

func (hub *Hub) convert(line string) {
	result := hub.p.ParseLine("repl", line)
	if hub.p.ErrorsExist() {
		hub.WriteString(hub.p.ReturnErrors())
		return
	}
	hub.WriteString(result + "\n")
}

func (hub *Hub) emitResult(result string, e error) {
	if e != nil {
		if pfErr, ok := e.(*pf.Error); ok {
			hub.WriteString(err.GetList([]*err.Error{pfErr}))
		} else {
			hub.WriteString(text.ERROR + e.Error() + "\n")
		}
		return
	}
	hub.WriteString(result + "\n")
}

func (hub *Hub) WriteString(s string) {
	io.WriteString(hub.Out, s)
}

const VERSION = "0.1.0"

const HELP = "\nUsage: pratt-parser [-v | --version] [-h | --help]\n" +
	"                    [-e | --expr <expression>]\n\n" +
	"With no arguments it starts the REPL, where you can type an infix\n" +
	"expression to see its postfix form, or one of the commands:\n\n" +
	text.BULLET + "help     Displays this message.\n" +
	text.BULLET + "version  Says which version this is.\n" +
	text.BULLET + "ops      Lists the operators with their precedence and associativity.\n" +
	text.BULLET + "infix <expression>  Shows how the expression was grouped.\n" +
	text.BULLET + "json <expression>   Emits the postfix form as a JSON array.\n" +
	text.BULLET + "quit     Quits.\n\n"

func Logo() string {
	titleText := " ⚙ pratt-parser version " + VERSION + " "
	leftMargin := "  "
	bar := strings.Repeat("═", len([]rune(titleText))-1)
	logoString := "\n" +
		leftMargin + "╔" + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + "╝\n\n"
	return logoString
}
