package eval

import (
	"github.com/clarete/lispinho/pkg/environ"
	"github.com/clarete/lispinho/pkg/lisp"
)

// Eval reduces v to a value in env.  Numbers, booleans, the empty list and
// procedures evaluate to themselves, symbols to their binding and lists are
// calls.
func (rt *Runtime) Eval(v lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	switch v.Type() {
	case lisp.LSymbol:
		id, _ := lisp.GetSymbol(v)
		val, ok := env.Get(id)
		if !ok {
			return lisp.Nil(), rt.undefinedSymbol(rt.Sprint(v))
		}
		return val, nil
	case lisp.LList:
		cells, _ := lisp.GetList(v)
		fn, err := rt.Eval(cells[0], env)
		if err != nil {
			return lisp.Nil(), err
		}
		if !lisp.IsProcedure(fn) {
			return lisp.Nil(), rt.notCallable(fn)
		}
		return rt.Apply(fn, cells[1:], env)
	default:
		return v, nil
	}
}

// Apply calls fn with the unevaluated argument forms args in the caller's
// environment env.
func (rt *Runtime) Apply(fn lisp.LVal, args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	switch fn.Type() {
	case lisp.LPrimitive:
		_, impl, _ := lisp.GetPrimitive(fn)
		p, ok := impl.(*primitive)
		if !ok {
			return lisp.Nil(), rt.notCallable(fn)
		}
		if !p.arity.accepts(len(args)) {
			return lisp.Nil(), rt.arityMismatch(p.name, p.arity, len(args))
		}
		return p.fn(rt, env, args)
	case lisp.LLambda:
		return rt.applyLambda(fn, args, env)
	default:
		return lisp.Nil(), rt.notCallable(fn)
	}
}

// applyLambda evaluates each argument in the caller's environment, binds the
// results to the lambda's parameters in a child of that environment and
// evaluates the body there.
func (rt *Runtime) applyLambda(fn lisp.LVal, args []lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	lambda, _ := lisp.GetLambda(fn)
	n := len(lambda.Params)
	if len(args) != n {
		return lisp.Nil(), rt.arityMismatch("lambda", exactly(n), len(args))
	}
	vals := make([]lisp.LVal, n)
	for i := range args {
		v, err := rt.Eval(args[i], env)
		if err != nil {
			return lisp.Nil(), err
		}
		vals[i] = v
	}
	local, err := environ.Extend(env, lambda.Params, vals)
	if err != nil {
		return lisp.Nil(), err
	}
	return rt.Eval(lambda.Body, local)
}
