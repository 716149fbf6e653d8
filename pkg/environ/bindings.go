package environ

import (
	"fmt"

	"github.com/clarete/lispinho/pkg/lisp"
	"github.com/clarete/lispinho/pkg/symbol"
)

// Bindings is a set of variable bindings (e.g. function arguments).
type Bindings interface {
	// Len returns the number of variables bound
	Len() int
	// Get returns the value bound to the given symbol.
	Get(symbol.ID) (lisp.LVal, bool)
	// Put creates or updates a binding for the given symbol with the given
	// value.
	Put(symbol.ID, lisp.LVal)
}

// NewBindings creates and initializes a new set of variable bindings that has
// initial capacity to hold n values.
func NewBindings(n int) Bindings {
	return newBindings(n)
}

type bindingPair struct {
	name  symbol.ID
	value lisp.LVal
}

type bindings struct {
	pairs []bindingPair
	index map[symbol.ID]int
}

var _ Bindings = (*bindings)(nil)

func newBindings(n int) *bindings {
	return &bindings{
		pairs: make([]bindingPair, 0, n),
		index: make(map[symbol.ID]int, n),
	}
}

// NewBindingsZip pairs names with vals positionally.  If the two slices
// differ in length NewBindingsZip returns an error.  A name repeated in names
// is bound to its last value.
func NewBindingsZip(names []symbol.ID, vals []lisp.LVal) (Bindings, error) {
	if len(names) != len(vals) {
		return nil, fmt.Errorf("variable and value lists have unequal lengths: %d != %d", len(names), len(vals))
	}
	s := newBindings(len(names))
	for i := range names {
		s.Put(names[i], vals[i])
	}
	return s, nil
}

// Len returns the number of symbols bound.
func (s *bindings) Len() int {
	return len(s.pairs)
}

// Get returns the value bound to variable.
func (s *bindings) Get(variable symbol.ID) (lisp.LVal, bool) {
	i, ok := s.index[variable]
	if !ok {
		return lisp.Nil(), false
	}
	return s.pairs[i].value, true
}

// Put binds variable to v.  If variable was previously bound its entry will be
// updated.  Otherwise Put creates a new variable binding.
func (s *bindings) Put(variable symbol.ID, v lisp.LVal) {
	i, ok := s.index[variable]
	if ok {
		s.pairs[i].value = v
		return
	}
	s.index[variable] = len(s.pairs)
	s.pairs = append(s.pairs, bindingPair{variable, v})
}

