// Package environ implements binding environments.  An Environ holds its own
// bindings and a link to a parent; lookups fall through to the parent when a
// symbol is not bound locally.
package environ

import (
	"fmt"

	"github.com/clarete/lispinho/pkg/lisp"
	"github.com/clarete/lispinho/pkg/symbol"
)

// Environ contains local symbol bindings and a parent environment.  Local
// bindings shadow the parent's.
type Environ struct {
	parent   *Environ
	bindings Bindings
}

// New returns a new environment.  If parent is nil a root Environ will be
// returned.
func New(parent *Environ, bindings Bindings) *Environ {
	if bindings == nil {
		bindings = NewBindings(0)
	}
	return &Environ{
		parent:   parent,
		bindings: bindings,
	}
}

// Extend returns a child of parent binding params[i] to vals[i].  Extend
// returns an error if the lists have unequal lengths.  parent is not
// modified.
func Extend(parent *Environ, params []symbol.ID, vals []lisp.LVal) (*Environ, error) {
	bindings, err := NewBindingsZip(params, vals)
	if err != nil {
		return nil, err
	}
	return New(parent, bindings), nil
}

func (env *Environ) Parent() *Environ {
	return env.parent
}

// Len returns the number of local bindings in env.
func (env *Environ) Len() int {
	return env.bindings.Len()
}

// Get returns the value bound to id in env or its nearest ancestor binding
// it.  Get returns false if no environment in the chain binds id.
func (env *Environ) Get(id symbol.ID) (lisp.LVal, bool) {
	for ; env != nil; env = env.parent {
		v, ok := env.bindings.Get(id)
		if ok {
			return v, true
		}
	}
	return lisp.Nil(), false
}

// Put binds id to v in env, replacing any local binding of id.  Ancestors are
// not affected.
func (env *Environ) Put(id symbol.ID, v lisp.LVal) {
	env.bindings.Put(id, v)
}

func (env *Environ) String() string {
	depth := 0
	for p := env.parent; p != nil; p = p.parent {
		depth++
	}
	return fmt.Sprintf("#<environ depth=%d bindings=%d>", depth, env.Len())
}
