package eval_test

import (
	"testing"

	"github.com/clarete/lispinho/pkg/internal/lisptest"
)

func TestSuite(t *testing.T) {
	tests := lisptest.TestSuite{
		{"atoms", lisptest.TestSequence{
			{"1", "1", ""},
			{"3.5", "3.5", ""},
			{"#t", "#t", ""},
			{"nil", "()", ""},
			{"()", "()", ""},
			{"+", "#<primitive +>", ""},
			{"myatom", "undefined symbol: myatom", ""},
		}},
		{"arithmetic", lisptest.TestSequence{
			{"(+ 2 3)", "5", ""},
			{"(+)", "0", ""},
			{"(+ 1 2 3 4)", "10", ""},
			// - folds from zero like +
			{"(- 5)", "-5", ""},
			{"(- 5 3)", "-8", ""},
			{"(* 2 3)", "6", ""},
			{"(/ 1 4)", "0.25", ""},
			{"(/ 1 0)", "+Inf", ""},
			{"(/ 0 0)", "NaN", ""},
			{"(** 2 10)", "1024", ""},
			{"(% 7 3)", "1", ""},
			{"(% (- 7) 3)", "-1", ""},
			{"(- 7 3)", "-10", ""},
			{"-7", "undefined symbol: -7", ""},
			{"(+ 1 (* 2 3) 4)", "11", ""},
			{"(/ 2)", "arity mismatch: /: expected 2 arguments, received 1", ""},
			{"(* 1 2 3)", "arity mismatch: *: expected 2 arguments, received 3", ""},
			{"(+ 1 'a)", "type mismatch: +: argument is not a number: a", ""},
		}},
		{"comparison", lisptest.TestSequence{
			{"(> 2 1)", "#t", ""},
			{"(< 2 1)", "#f", ""},
			{"(>= 2 2)", "#t", ""},
			{"(<= 3 2)", "#f", ""},
			{"(= 1 1)", "#t", ""},
			{"(= 1 #t)", "#f", ""},
			{"(= '(1 2) '(1 2))", "#t", ""},
			{"(= 'a 'a)", "#t", ""},
			{"(> 1 'a)", "type mismatch: >: argument is not a number: a", ""},
		}},
		{"quote", lisptest.TestSequence{
			{"(quote (a b))", "(a b)", ""},
			{"'x", "x", ""},
			{"''x", "(quote x)", ""},
			{"(quote)", "arity mismatch: quote: expected 1 arguments, received 0", ""},
		}},
		{"define", lisptest.TestSequence{
			{"(define foo 3) (+ foo 4)", "7", ""},
			{"foo", "3", ""},
			{"(define foo (+ foo 1))", "4", ""},
			{"foo", "4", ""},
			{"(define 1 2)", "type mismatch: define: first argument is not a symbol: 1", ""},
		}},
		{"label", lisptest.TestSequence{
			{"(label twice (lambda (x) (* x 2)))", "#<lambda (x) (* x 2)>", ""},
			{"(twice 21)", "42", ""},
			{"(label 1 2)", "type mismatch: label: first argument is not a symbol: 1", ""},
			{"(label x)", "arity mismatch: label: expected 2 arguments, received 1", ""},
		}},
		{"if", lisptest.TestSequence{
			{"(if #t 1 2)", "1", ""},
			{"(if nil 1 2)", "2", ""},
			{"(if nil 1)", "()", ""},
			{"(if 0 1 2)", "1", ""},
			{"(if (< 2 1) 1 2)", "2", ""},
			{"(if '() 1 2)", "2", ""},
			{"(if #t 1 (undefined))", "1", ""},
			{"(if)", "arity mismatch: if: expected 2 to 3 arguments, received 0", ""},
		}},
		{"cond", lisptest.TestSequence{
			{"(cond ((< 2 1) 1) (#t 2))", "2", ""},
			{"(cond ((< 2 1) 1))", "()", ""},
			{"(cond)", "()", ""},
			{"(cond 1)", "type mismatch: cond: clause is not a (test expr) pair: 1", ""},
		}},
		{"progn", lisptest.TestSequence{
			{"(progn 1 2 3)", "3", ""},
			{"(progn (print 1) (print 2))", "()", "1\n2\n"},
			{"(progn)", "arity mismatch: progn: expected at least 1 arguments, received 0", ""},
		}},
		{"lists", lisptest.TestSequence{
			{"(car '(1 2 3))", "1", ""},
			{"(cdr '(1 2 3))", "(2 3)", ""},
			{"(cdr '(1))", "()", ""},
			{"(car nil)", "()", ""},
			{"(cdr nil)", "()", ""},
			{"(len '(1 2 3))", "3", ""},
			{"(len nil)", "0", ""},
			{"(car (cdr '(1 (2 3))))", "(2 3)", ""},
			{"(car 1)", "type mismatch: car: argument is not a list: 1", ""},
			{"(len #t)", "type mismatch: len: argument is not a list: #t", ""},
		}},
		{"print", lisptest.TestSequence{
			{"(print (+ 1 2))", "()", "3\n"},
			{"(print '(a (b) #t))", "()", "(a (b) #t)\n"},
			{"(print (> 1 2))", "()", "#f\n"},
		}},
		{"eval", lisptest.TestSequence{
			{"(eval '(+ 1 2))", "3", ""},
			{"(define form '(* 2 x))", "(* 2 x)", ""},
			{"(define x 21)", "21", ""},
			{"(eval form)", "42", ""},
		}},
		{"lambda", lisptest.TestSequence{
			{"(lambda (a) (+ a 4))", "#<lambda (a) (+ a 4)>", ""},
			{"((lambda (a) (+ a 4)) 1)", "5", ""},
			{"((lambda () 7))", "7", ""},
			{"((lambda (a b) (- a b)) 1 2)", "-3", ""},
			{"((lambda (a) a) 1 2)", "arity mismatch: lambda: expected 1 arguments, received 2", ""},
			{"((lambda (a b) a) 1)", "arity mismatch: lambda: expected 2 arguments, received 1", ""},
			{"(lambda 1 2)", "type mismatch: lambda: formal arguments are not a list: 1", ""},
			{"(lambda (1) 2)", "type mismatch: lambda: formal argument is not a symbol: 1", ""},
			{"(1 2)", "not callable: 1", ""},
			{"((quote (a)) 1)", "not callable: (a)", ""},
		}},
		{"recursion", lisptest.TestSequence{
			{"(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (+ n (- 1)))))))",
				"#<lambda (n) (if (<= n 1) 1 (* n (fact (+ n (- 1)))))>", ""},
			{"(fact 5)", "120", ""},
			{"(fact 1)", "1", ""},
		}},
		{"caller-relative scope", lisptest.TestSequence{
			{"(define x 10) ((lambda (y) (+ x y)) 5)", "15", ""},
			{"(define f (lambda () x))", "#<lambda () x>", ""},
			{"(f)", "10", ""},
			// f sees the x of its caller, not the x where it was written
			{"((lambda (x) (f)) 2)", "2", ""},
			{"x", "10", ""},
			// a returned lambda keeps nothing from the call that made it
			{"(((lambda (z) (lambda () z)) 3))", "undefined symbol: z", ""},
			// parameters shadow without touching the caller's bindings
			{"((lambda (x) (define x 99)) 1)", "99", ""},
			{"x", "10", ""},
			{"((lambda (a) (define b a)) 1)", "1", ""},
			{"b", "undefined symbol: b", ""},
		}},
		{"parse errors", lisptest.TestSequence{
			{"(+ 1", "missing close paren [4]", ""},
			{"", "nothing parsed [0]", ""},
		}},
	}
	lisptest.RunTestSuite(t, tests)
}
