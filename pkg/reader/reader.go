// Package reader turns source text into lisp values.
//
//	program := <value>*
//	value   := <list> | <number> | <true> | <symbol> | "'" <value>
//	list    := '(' <value>* ')'
//	number  := [0-9.]+
//	true    := #[#t]*
//	symbol  := [A-Za-z%<>=+*/_-][A-Za-z0-9%<>=+*/_-]*
//
// Whitespace and line comments (';' to end of line) may appear between any two
// values.  There is no token stream: values are built directly while the cursor
// moves over the text.
package reader

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/clarete/lispinho/pkg/lisp"
	"github.com/clarete/lispinho/pkg/symbol"
	parsec "github.com/prataprc/goparsec"
)

const (
	patSkip   = `^(?:[ \t\r\n]|;[^\n]*)+`
	patOpen   = `^\(`
	patClose  = `^\)`
	patQuote  = `^'`
	patNumber = `^[0-9.]+`
	patTrue   = `^#[#t]*`
	patSymbol = `^[A-Za-z%<>=+*/_\-][A-Za-z0-9%<>=+*/_\-]*`
)

// ParseError is returned when source text cannot be read.
type ParseError struct {
	Reason string
	// Pos is the byte offset of the cursor when reading failed.
	Pos int
	// Incomplete is true when the input ended in the middle of a value.
	// More input could make the source readable.
	Incomplete bool
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%s [%d]", err.Reason, err.Pos)
}

// Reader reads values, interning symbols in its table.
type Reader struct {
	table symbol.Table
	progn symbol.ID
	quote symbol.ID
}

// New returns a Reader that interns symbols in table.  If table is nil
// symbol.DefaultGlobalTable is used.
func New(table symbol.Table) *Reader {
	if table == nil {
		table = symbol.DefaultGlobalTable
	}
	return &Reader{
		table: table,
		progn: table.Intern("progn"),
		quote: table.Intern("quote"),
	}
}

// Read is equivalent to New(table).Read(source).
func Read(table symbol.Table, source string) (lisp.LVal, error) {
	return New(table).Read(source)
}

// Read reads source as one program.  A single top-level value is returned as
// is.  Multiple top-level values are wrapped in a progn form so that the
// program evaluates as a unit.
func (r *Reader) Read(source string) (lisp.LVal, error) {
	forms, err := r.ReadForms(source)
	if err != nil {
		return lisp.Nil(), err
	}
	if len(forms) == 1 {
		return forms[0], nil
	}
	prog := make([]lisp.LVal, 0, len(forms)+1)
	prog = append(prog, lisp.Symbol(r.progn))
	prog = append(prog, forms...)
	return lisp.List(prog...), nil
}

// ReadForms returns the top-level values of source in order.  ReadForms
// returns a ParseError if source contains no values.
func (r *Reader) ReadForms(source string) ([]lisp.LVal, error) {
	c := &cursor{
		r:   r,
		src: source,
		s:   parsec.NewScanner([]byte(source)),
	}
	var forms []lisp.LVal
	for {
		v, ok, err := c.value()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		forms = append(forms, v)
	}
	if len(forms) == 0 {
		return nil, c.errorf(false, "nothing parsed")
	}
	if !c.s.Endof() {
		return nil, c.errorf(false, "unexpected character %q", c.peek())
	}
	return forms, nil
}

// cursor is the state of a single pass over a source text.
type cursor struct {
	r   *Reader
	src string
	s   parsec.Scanner
}

func (c *cursor) match(pattern string) ([]byte, bool) {
	var text []byte
	text, c.s = c.s.Match(pattern)
	return text, len(text) > 0
}

func (c *cursor) skip() {
	c.match(patSkip)
}

func (c *cursor) peek() rune {
	ch, _ := utf8.DecodeRuneInString(c.src[c.s.GetCursor():])
	return ch
}

func (c *cursor) errorf(incomplete bool, format string, v ...interface{}) error {
	return &ParseError{
		Reason:     fmt.Sprintf(format, v...),
		Pos:        c.s.GetCursor(),
		Incomplete: incomplete,
	}
}

// value reads the next value.  When the cursor is not at the start of a
// value, including at the end of input, value returns false and no error.
func (c *cursor) value() (lisp.LVal, bool, error) {
	c.skip()
	if _, ok := c.match(patOpen); ok {
		return c.list()
	}
	if _, ok := c.match(patQuote); ok {
		return c.quoted()
	}
	if text, ok := c.match(patNumber); ok {
		x, err := strconv.ParseFloat(string(text), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return lisp.Nil(), false, c.errorf(false, "bad number %q", text)
		}
		return lisp.Number(x), true, nil
	}
	if _, ok := c.match(patTrue); ok {
		return lisp.True(), true, nil
	}
	if text, ok := c.match(patSymbol); ok {
		return lisp.Symbol(c.r.table.Intern(string(text))), true, nil
	}
	return lisp.Nil(), false, nil
}

func (c *cursor) list() (lisp.LVal, bool, error) {
	var cells []lisp.LVal
	for {
		v, ok, err := c.value()
		if err != nil {
			return lisp.Nil(), false, err
		}
		if !ok {
			break
		}
		cells = append(cells, v)
	}
	if _, ok := c.match(patClose); !ok {
		return lisp.Nil(), false, c.errorf(c.s.Endof(), "missing close paren")
	}
	return lisp.List(cells...), true, nil
}

func (c *cursor) quoted() (lisp.LVal, bool, error) {
	v, ok, err := c.value()
	if err != nil {
		return lisp.Nil(), false, err
	}
	if !ok {
		return lisp.Nil(), false, c.errorf(c.s.Endof(), "missing quoted value")
	}
	return lisp.List(lisp.Symbol(c.r.quote), v), true, nil
}
