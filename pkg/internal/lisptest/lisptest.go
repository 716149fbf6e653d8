// Package lisptest runs sequences of expressions against fresh environments
// and compares printed results.
package lisptest

import (
	"bytes"
	"testing"

	"github.com/clarete/lispinho/pkg/eval"
	"github.com/clarete/lispinho/pkg/reader"
	"github.com/clarete/lispinho/pkg/symbol"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially in one environment.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the printed result, or the error message
	Output string // everything print wrote while evaluating Expr
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on an isolated runtime, symbol
// table and default environment.
func RunTestSuite(t *testing.T, tests TestSuite) {
	t.Helper()
	for i, test := range tests {
		var out bytes.Buffer
		table := symbol.NewTable()
		rt := eval.New(eval.WithSymbolTable(table), eval.WithStdout(&out))
		env := rt.DefaultEnv()
		rd := reader.New(table)
		for j, expr := range test.TestSequence {
			out.Reset()
			var result string
			v, err := rd.Read(expr.Expr)
			if err == nil {
				v, err = rt.Eval(v, env)
			}
			if err != nil {
				result = err.Error()
			} else {
				result = rt.Sprint(v)
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if out.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, out.String())
			}
		}
	}
}
