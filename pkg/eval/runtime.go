// Package eval evaluates lisp values against binding environments.
//
// Arguments are never evaluated before a procedure is applied.  Every
// primitive, and every lambda, receives the raw argument forms together with
// the caller's environment and evaluates what it needs.  Lambdas do not close
// over the environment they are created in; their free variables resolve in
// the environment of the call site.
package eval

import (
	"io"
	"os"

	"github.com/clarete/lispinho/pkg/environ"
	"github.com/clarete/lispinho/pkg/lisp"
	"github.com/clarete/lispinho/pkg/symbol"
)

// Runtime holds the facilities shared by all evaluations: the symbol table
// used to print and intern names and the output stream for print.
type Runtime struct {
	Table  symbol.Table
	Stdout io.Writer
}

// Config is a function that configures a Runtime.
type Config func(rt *Runtime)

// WithStdout returns a Config that makes print write to w instead of the
// default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stdout = w
	}
}

// WithSymbolTable returns a Config that makes the runtime use table instead
// of symbol.DefaultGlobalTable.  The table must be the one used to read the
// programs the runtime evaluates.
func WithSymbolTable(table symbol.Table) Config {
	return func(rt *Runtime) {
		rt.Table = table
	}
}

// New returns a Runtime configured by config.
func New(config ...Config) *Runtime {
	rt := &Runtime{
		Table:  symbol.DefaultGlobalTable,
		Stdout: os.Stdout,
	}
	for _, fn := range config {
		fn(rt)
	}
	return rt
}

// Default is the runtime used by the package-level functions.
var Default = New()

// Eval is equivalent to Default.Eval(v, env).
func Eval(v lisp.LVal, env *environ.Environ) (lisp.LVal, error) {
	return Default.Eval(v, env)
}

// DefaultEnv is equivalent to Default.DefaultEnv().
func DefaultEnv() *environ.Environ {
	return Default.DefaultEnv()
}

// DefaultEnv returns a new root environment containing the primitive
// procedures, with nil bound to the empty list.
func (rt *Runtime) DefaultEnv() *environ.Environ {
	env := environ.New(nil, environ.NewBindings(len(langPrimitives)+1))
	env.Put(rt.Table.Intern("nil"), lisp.Nil())
	for _, p := range langPrimitives {
		id := rt.Table.Intern(p.name)
		env.Put(id, lisp.Primitive(id, p))
	}
	return env
}

// Sprint formats v with the runtime's symbol table.
func (rt *Runtime) Sprint(v lisp.LVal) string {
	return lisp.Sprint(v, rt.Table)
}
