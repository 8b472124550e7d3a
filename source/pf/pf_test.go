package pf_test

import (
	"testing"

	"github.com/nthery/pratt-parser/source/pf"
)

func TestConvert(t *testing.T) {
	postfix, e := pf.Convert(`a=b+c`)
	if e != nil {
		t.Fatal(e)
	}
	if postfix != `abc+=` {
		t.Fatalf("expected 'abc+=', got '%s'", postfix)
	}
}

func TestConvertErrors(t *testing.T) {
	_, e := pf.Convert(`(a+b`)
	if e == nil {
		t.Fatal("unexpected successful conversion")
	}
	pfErr, ok := e.(*pf.Error)
	if !ok {
		t.Fatalf("expected a *pf.Error, got %T", e)
	}
	if pfErr.ErrorId != "parse/expected" {
		t.Fatalf("expected 'parse/expected', got '%s'", pfErr.ErrorId)
	}
}

func TestConvertWithCapacity(t *testing.T) {
	_, e := pf.ConvertWithCapacity(`a+b`, 2)
	if e == nil {
		t.Fatal("unexpected successful conversion")
	}
	if e.(*pf.Error).ErrorId != "parse/overflow" {
		t.Fatalf("expected 'parse/overflow', got '%s'", e.(*pf.Error).ErrorId)
	}
}

func TestConvertToJson(t *testing.T) {
	j, e := pf.ConvertToJson(`a+b*c`)
	if e != nil {
		t.Fatal(e)
	}
	if j != `["a","b","c","*","+"]` {
		t.Fatalf("unexpected JSON %s", j)
	}
}

func TestExplain(t *testing.T) {
	tests := []struct{ input, want string }{
		{`a=b=c`, `(a=(b=c))`},
		{`a+b+c`, `((a+b)+c)`},
		{`a+b*c`, `(a+(b*c))`},
		{`(a+b)*c`, `((a+b)*c)`},
	}
	for _, test := range tests {
		got, e := pf.Explain(test.input)
		if e != nil {
			t.Fatal(e)
		}
		if got != test.want {
			t.Fatalf("Explain(%s) = '%s', expected '%s'", test.input, got, test.want)
		}
	}
}
