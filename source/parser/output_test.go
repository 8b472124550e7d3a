package parser_test

import (
	"testing"

	"github.com/nthery/pratt-parser/source/parser"
	"github.com/nthery/pratt-parser/source/token"
)

func TestOutputCapacity(t *testing.T) {
	out := parser.NewOutput(2)
	tok := token.MakeToken(token.VARIABLE, "a", 0, "test")
	if !out.Emit(tok) || !out.Emit(tok) {
		t.Fatal("emit within capacity was refused")
	}
	if out.Emit(tok) {
		t.Fatal("emit beyond capacity was accepted")
	}
	if out.String() != "aa" || out.Len() != 2 {
		t.Fatalf("expected output 'aa' of length 2, got '%s' of length %v", out.String(), out.Len())
	}
	if literals := out.Literals(); len(literals) != 2 || literals[0] != "a" {
		t.Fatalf("unexpected literals %v", literals)
	}
}

func TestToInfix(t *testing.T) {
	tests := []struct{ postfix, want string }{
		{`a`, `a`},
		{`a~`, `~a`},
		{`a~~`, `~~a`},
		{`ab+`, `(a+b)`},
		{`ab+c+`, `((a+b)+c)`},
		{`abc==`, `(a=(b=c))`},
		{`abc*+`, `(a+(b*c))`},
		{`ab~*`, `(a*~b)`},
		{`abc+=`, `(a=(b+c))`},
	}
	for _, test := range tests {
		got, ok := parser.ToInfix(test.postfix)
		if !ok {
			t.Fatalf("ToInfix rejected well-formed postfix '%s'", test.postfix)
		}
		if got != test.want {
			t.Fatalf("ToInfix(%s) = '%s', expected '%s'", test.postfix, got, test.want)
		}
	}
}

func TestToInfixRejectsIllFormed(t *testing.T) {
	for _, bad := range []string{``, `ab`, `+`, `a+`, `~`, `ab+c`, `a(`, `a1+`} {
		if _, ok := parser.ToInfix(bad); ok {
			t.Fatalf("ToInfix accepted ill-formed postfix '%s'", bad)
		}
	}
}

// Every binary operator the parser emits is preceded by two well-formed
// operand subsequences and every prefix operator by one, which is exactly
// what ToInfix checks when it runs the output backwards.
func TestEmittedPostfixIsWellFormed(t *testing.T) {
	inputs := []string{
		`a`, `~a`, `~~a`, `a+b`, `a*~b`, `a+b+c`, `a=b=c`, `a+b*c`,
		`(a+b)*c`, `a=b+c`, `a*(b+c)*d`, `~(a=b)+c`,
	}
	p := parser.New()
	for _, input := range inputs {
		postfix := p.ParseLine("test", input)
		if p.ErrorsExist() {
			t.Fatalf("unexpected errors parsing '%s': %s", input, p.ReturnErrors())
		}
		if _, ok := parser.ToInfix(postfix); !ok {
			t.Fatalf("parse of '%s' emitted ill-formed postfix '%s'", input, postfix)
		}
	}
}

func TestDescribeOperators(t *testing.T) {
	lines := parser.DescribeOperators()
	if len(lines) != 5 {
		t.Fatalf("expected 5 operator descriptions, got %v", len(lines))
	}
	if lines[0] != "*  precedence 20, left-associative" {
		t.Fatalf("unexpected first description '%s'", lines[0])
	}
	if lines[4] != "=  precedence 1, right-associative" {
		t.Fatalf("unexpected last description '%s'", lines[4])
	}
}
