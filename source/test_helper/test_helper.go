package test_helper

import (
	"errors"
	"strings"
	"testing"

	"github.com/nthery/pratt-parser/source/hub"
	"github.com/nthery/pratt-parser/source/parser"
	"github.com/nthery/pratt-parser/source/settings"
	"github.com/nthery/pratt-parser/source/text"
)

// Auxiliary types and functions for testing the parser and the hub.

type TestItem struct {
	Input string
	Want  string
}

func RunTest(t *testing.T, tests []TestItem, F func(p *parser.Parser, s string) (string, error)) {
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.Input))
		}
		p := parser.New()
		got, e := F(p, test.Input)
		if e != nil {
			println(text.Red(test.Input))
			println("There were errors parsing the line: \n" + p.ReturnErrors() + "\n")
		}
		if !(test.Want == got) {
			t.Fatalf("Test failed with input %s \nExp :\n%s\nGot :\n%s", test.Input, test.Want, got)
		}
	}
}

// These functions say in what way to extract information from a parser, given
// a line to put in: do we want to look at the output or at the errors.

func TestParserOutput(p *parser.Parser, s string) (string, error) {
	result := p.ParseLine("test", s)
	if p.ErrorsExist() {
		return p.Errors[0].ErrorId, errors.New(p.Errors[0].Message)
	}
	return result, nil
}

func TestParserErrors(p *parser.Parser, s string) (string, error) {
	p.ParseLine("test", s)
	if p.ErrorsExist() {
		return p.Errors[0].ErrorId, nil
	}
	return "", errors.New("unexpected successful parsing")
}

type capturingWriter struct{ capture string }

func (c *capturingWriter) get() string {
	s := c.capture
	c.capture = ""
	return s
}

func (c *capturingWriter) Write(b []byte) (n int, err error) {
	c.capture = c.capture + string(b)
	return len(b), nil
}

func RunHubTest(t *testing.T, tests []TestItem) {
	h := hub.New(&capturingWriter{})
	for _, item := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(item.Input))
		}
		h.Do(item.Input)
		result := strings.TrimSpace(text.StripColors(h.Out.(*capturingWriter).get()))
		if result != item.Want {
			t.Fatal("\nOn input '" + item.Input + "'\n    Exp : '" + item.Want + "'\n    Got : '" + result + "'")
		}
	}
}
