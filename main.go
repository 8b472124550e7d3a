//
// A toy Pratt expression parser.
//
// This is a top-down recursive parser using Vaughan Pratt's operator
// precedence technique. It turns an infix expression into a reverse-Polish
// one.
//
// As the goal is to teach myself this technique the input language is
// minimal. There is notably no lexical analyzer: all tokens are one ASCII
// character long and spaces between tokens are not allowed.
//

package main

import (
	"fmt"
	"os"

	"github.com/nthery/pratt-parser/source/hub"
	"github.com/nthery/pratt-parser/source/pf"
	"github.com/nthery/pratt-parser/source/text"
)

func main() {

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "--help", "help":
			showhelp()
			return
		case "-v", "--version", "version":
			os.Stdout.WriteString("\npratt-parser version " + hub.VERSION + ".\n\n")
			return
		case "-e", "--expr", "expr":
			if len(os.Args) != 3 {
				os.Stdout.WriteString(text.ERROR + "usage: " + text.Emph("pratt-parser -e <expression>") + "\n")
				os.Exit(1)
			}
			result, e := pf.Convert(os.Args[2])
			if e != nil {
				os.Stdout.WriteString(text.ERROR + e.Error() + "\n")
				os.Exit(1)
			}
			os.Stdout.WriteString(result + "\n")
			return
		default:
			os.Stdout.WriteString("\npratt-parser doesn't recognize the command " + text.Emph(os.Args[1]) + ".\n")
			showhelp()
			os.Exit(1)
		}
	}

	fmt.Print(hub.Logo())
	h := hub.New(os.Stdout)
	h.Repl()
}

func showhelp() {
	os.Stdout.WriteString(hub.HELP)
}
