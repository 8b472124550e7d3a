package hub_test

import (
	"testing"

	"github.com/nthery/pratt-parser/source/test_helper"
)

func TestHub(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `a+b*c`, Want: `abc*+`},
		{Input: `(a+b)*c`, Want: `ab+c*`},
		{Input: `version`, Want: `pratt-parser version 0.1.0.`},
		{Input: `infix a=b=c`, Want: `(a=(b=c))`},
		{Input: `json a+b`, Want: `["a","b","+"]`},
		{Input: `ops`, Want: "▪ *  precedence 20, left-associative\n" +
			"  ▪ /  precedence 20, left-associative\n" +
			"  ▪ +  precedence 10, left-associative\n" +
			"  ▪ -  precedence 10, left-associative\n" +
			"  ▪ =  precedence 1, right-associative"},
		{Input: `quit`, Want: `OK`},
	}
	test_helper.RunHubTest(t, tests)
}

func TestHubErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `a+`, Want: `error: unexpected character 'end of input' at character 2 of 'repl'`},
		{Input: `(a`, Want: `error: expected ')', got 'end of input' at character 2 of 'repl'`},
		{Input: `a$b`, Want: `error: expected 'end of input', got '$' at character 1 of 'repl'`},
		{Input: `infix`, Want: `error: usage: 'infix <expression>'`},
		{Input: `json a+`, Want: `error: unexpected character 'end of input' at character 2 of 'pf'`},
		{Input: `infix (a`, Want: `error: expected ')', got 'end of input' at character 2 of 'pf'`},
	}
	test_helper.RunHubTest(t, tests)
}
