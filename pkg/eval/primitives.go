package eval

import (
	"fmt"
	"math"

	"github.com/clarete/lispinho/pkg/environ"
	"github.com/clarete/lispinho/pkg/lisp"
	"github.com/clarete/lispinho/pkg/symbol"
)

// Builtin implements a primitive procedure.  args are the raw argument forms
// of the call; the builtin evaluates them in env as it sees fit.
type Builtin func(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error)

// arity is an inclusive range of argument counts.  A negative max means there
// is no upper bound.
type arity struct {
	min int
	max int
}

func exactly(n int) arity { return arity{n, n} }
func atLeast(n int) arity { return arity{n, -1} }
func between(m, n int) arity { return arity{m, n} }

func (a arity) accepts(n int) bool {
	return n >= a.min && (a.max < 0 || n <= a.max)
}

func (a arity) String() string {
	switch {
	case a.max < 0:
		return fmt.Sprintf("at least %d", a.min)
	case a.min == a.max:
		return fmt.Sprint(a.min)
	default:
		return fmt.Sprintf("%d to %d", a.min, a.max)
	}
}

type primitive struct {
	name  string
	arity arity
	fn    Builtin
}

var langPrimitives = []*primitive{
	// arithmetic
	{"+", atLeast(0), primAdd},
	{"-", atLeast(0), primSub},
	{"*", exactly(2), arith("*", func(a, b float64) float64 { return a * b })},
	{"/", exactly(2), arith("/", func(a, b float64) float64 { return a / b })},
	{"**", exactly(2), arith("**", math.Pow)},
	{"%", exactly(2), arith("%", math.Mod)},
	// comparison
	{">", exactly(2), compare(">", func(a, b float64) bool { return a > b })},
	{"<", exactly(2), compare("<", func(a, b float64) bool { return a < b })},
	{">=", exactly(2), compare(">=", func(a, b float64) bool { return a >= b })},
	{"<=", exactly(2), compare("<=", func(a, b float64) bool { return a <= b })},
	{"=", exactly(2), primEqual},
	// language
	{"quote", exactly(1), primQuote},
	{"define", exactly(2), primDefine("define")},
	{"label", exactly(2), primDefine("label")},
	{"lambda", exactly(2), primLambda},
	{"progn", atLeast(1), primProgn},
	{"if", between(2, 3), primIf},
	{"cond", atLeast(0), primCond},
	{"eval", exactly(1), primEval},
	{"print", exactly(1), primPrint},
	// lists
	{"car", exactly(1), primCAR},
	{"cdr", exactly(1), primCDR},
	{"len", exactly(1), primLen},
}

func (rt *Runtime) evalNumber(name string, v lisp.LVal, env *environ.Environ) (float64, error) {
	v, err := rt.Eval(v, env)
	if err != nil {
		return 0, err
	}
	x, ok := lisp.GetNumber(v)
	if !ok {
		return 0, rt.typeMismatch(name, v, "argument is not a number")
	}
	return x, nil
}

func (rt *Runtime) evalList(name string, v lisp.LVal, env *environ.Environ) ([]lisp.LVal, error) {
	v, err := rt.Eval(v, env)
	if err != nil {
		return nil, err
	}
	cells, ok := lisp.GetList(v)
	if !ok {
		return nil, rt.typeMismatch(name, v, "argument is not a list")
	}
	return cells, nil
}

func fold(name string, op func(acc, x float64) float64) Builtin {
	return func(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
		var acc float64
		for i := range args {
			x, err := rt.evalNumber(name, args[i], env)
			if err != nil {
				return lisp.Nil(), err
			}
			acc = op(acc, x)
		}
		return lisp.Number(acc), nil
	}
}

// Both + and - fold from zero, so (- 5) is -5 and (- 5 3) is -8.
var (
	primAdd = fold("+", func(acc, x float64) float64 { return acc + x })
	primSub = fold("-", func(acc, x float64) float64 { return acc - x })
)

func (rt *Runtime) evalNumbers2(name string, args []lisp.LVal, env *environ.Environ) (float64, float64, error) {
	a, err := rt.evalNumber(name, args[0], env)
	if err != nil {
		return 0, 0, err
	}
	b, err := rt.evalNumber(name, args[1], env)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func arith(name string, op func(a, b float64) float64) Builtin {
	return func(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
		a, b, err := rt.evalNumbers2(name, args, env)
		if err != nil {
			return lisp.Nil(), err
		}
		return lisp.Number(op(a, b)), nil
	}
}

func compare(name string, op func(a, b float64) bool) Builtin {
	return func(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
		a, b, err := rt.evalNumbers2(name, args, env)
		if err != nil {
			return lisp.Nil(), err
		}
		return lisp.Bool(op(a, b)), nil
	}
}

func primEqual(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	a, err := rt.Eval(args[0], env)
	if err != nil {
		return lisp.Nil(), err
	}
	b, err := rt.Eval(args[1], env)
	if err != nil {
		return lisp.Nil(), err
	}
	return lisp.Bool(lisp.Equal(a, b)), nil
}

func primQuote(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	return args[0], nil
}

// primDefine returns the binding form registered as name.  label is the older
// spelling of define.
func primDefine(name string) Builtin {
	return func(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
		id, ok := lisp.GetSymbol(args[0])
		if !ok {
			return lisp.Nil(), rt.typeMismatch(name, args[0], "first argument is not a symbol")
		}
		v, err := rt.Eval(args[1], env)
		if err != nil {
			return lisp.Nil(), err
		}
		env.Put(id, v)
		return v, nil
	}
}

func primLambda(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	formals, ok := lisp.GetList(args[0])
	if !ok {
		return lisp.Nil(), rt.typeMismatch("lambda", args[0], "formal arguments are not a list")
	}
	params := make([]symbol.ID, len(formals))
	for i := range formals {
		id, ok := lisp.GetSymbol(formals[i])
		if !ok {
			return lisp.Nil(), rt.typeMismatch("lambda", formals[i], "formal argument is not a symbol")
		}
		params[i] = id
	}
	return lisp.Lambda(params, args[1]), nil
}

func primProgn(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	var last lisp.LVal
	for i := range args {
		v, err := rt.Eval(args[i], env)
		if err != nil {
			return lisp.Nil(), err
		}
		last = v
	}
	return last, nil
}

func primIf(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	cond, err := rt.Eval(args[0], env)
	if err != nil {
		return lisp.Nil(), err
	}
	if lisp.IsTrue(cond) {
		return rt.Eval(args[1], env)
	}
	if len(args) == 3 {
		return rt.Eval(args[2], env)
	}
	return lisp.Nil(), nil
}

// primCond evaluates clauses of the form (test expr) in order and returns the
// value of the expr paired with the first true test.
func primCond(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	for i := range args {
		clause, ok := lisp.GetList(args[i])
		if !ok || len(clause) != 2 {
			return lisp.Nil(), rt.typeMismatch("cond", args[i], "clause is not a (test expr) pair")
		}
		test, err := rt.Eval(clause[0], env)
		if err != nil {
			return lisp.Nil(), err
		}
		if lisp.IsTrue(test) {
			return rt.Eval(clause[1], env)
		}
	}
	return lisp.Nil(), nil
}

func primEval(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	v, err := rt.Eval(args[0], env)
	if err != nil {
		return lisp.Nil(), err
	}
	return rt.Eval(v, env)
}

func primPrint(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	v, err := rt.Eval(args[0], env)
	if err != nil {
		return lisp.Nil(), err
	}
	_, err = fmt.Fprintln(rt.Stdout, rt.Sprint(v))
	if err != nil {
		return lisp.Nil(), fmt.Errorf("print: %w", err)
	}
	return lisp.Nil(), nil
}

func primCAR(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	cells, err := rt.evalList("car", args[0], env)
	if err != nil {
		return lisp.Nil(), err
	}
	if len(cells) == 0 {
		return lisp.Nil(), nil
	}
	return cells[0], nil
}

func primCDR(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	cells, err := rt.evalList("cdr", args[0], env)
	if err != nil {
		return lisp.Nil(), err
	}
	if len(cells) == 0 {
		return lisp.Nil(), nil
	}
	return lisp.List(cells[1:]...), nil
}

func primLen(rt *Runtime, env *environ.Environ, args []lisp.LVal) (lisp.LVal, error) {
	cells, err := rt.evalList("len", args[0], env)
	if err != nil {
		return lisp.Nil(), err
	}
	return lisp.Number(float64(len(cells))), nil
}
