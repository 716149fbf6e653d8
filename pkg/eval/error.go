package eval

import (
	"errors"
	"fmt"

	"github.com/clarete/lispinho/pkg/lisp"
)

// Error conditions reported through RuntimeError.  Use errors.Is to test for
// them.
var (
	ErrUndefinedSymbol = errors.New("undefined symbol")
	ErrNotCallable     = errors.New("not callable")
	ErrArityMismatch   = errors.New("arity mismatch")
	ErrTypeMismatch    = errors.New("type mismatch")
)

// RuntimeError is returned when evaluation fails.
type RuntimeError struct {
	// Condition is one of the Err* variables of this package.
	Condition error
	// Name is the undefined symbol or the procedure reporting the error.
	Name string
	// Value is the offending value, when there is one.
	Value lisp.LVal
	// Expected and Received are argument counts for ErrArityMismatch.
	// Expected is the minimum when a procedure accepts a range.
	Expected int
	Received int

	detail string
}

func (err *RuntimeError) Error() string {
	return fmt.Sprintf("%v: %s", err.Condition, err.detail)
}

// Unwrap returns err.Condition.
func (err *RuntimeError) Unwrap() error {
	return err.Condition
}

func (rt *Runtime) undefinedSymbol(name string) error {
	return &RuntimeError{
		Condition: ErrUndefinedSymbol,
		Name:      name,
		detail:    name,
	}
}

func (rt *Runtime) notCallable(v lisp.LVal) error {
	return &RuntimeError{
		Condition: ErrNotCallable,
		Value:     v,
		detail:    rt.Sprint(v),
	}
}

func (rt *Runtime) arityMismatch(name string, a arity, received int) error {
	return &RuntimeError{
		Condition: ErrArityMismatch,
		Name:      name,
		Expected:  a.min,
		Received:  received,
		detail:    fmt.Sprintf("%s: expected %v arguments, received %d", name, a, received),
	}
}

func (rt *Runtime) typeMismatch(name string, v lisp.LVal, format string, args ...interface{}) error {
	return &RuntimeError{
		Condition: ErrTypeMismatch,
		Name:      name,
		Value:     v,
		detail:    fmt.Sprintf("%s: %s: %s", name, fmt.Sprintf(format, args...), rt.Sprint(v)),
	}
}
