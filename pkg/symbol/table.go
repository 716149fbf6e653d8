package symbol

import (
	"fmt"
	"sync"
)

// DefaultGlobalTable is the process-wide symbol table.  It is created during
// package initialization and only ever grows.  Readers and runtimes use it
// unless they are given a table of their own.
var DefaultGlobalTable = NewTable()

// Intern uses DefaultGlobalTable to intern s and returns its ID.
func Intern(s string) ID {
	return DefaultGlobalTable.Intern(s)
}

// Table maps symbol IDs to strings.
type Table interface {
	// Len returns the number of symbols interned in the table.
	Len() int
	// Intern inserts the given symbol into the table if it is not present and
	// returns its ID.
	Intern(symbol string) ID
	// Peek retrieves the ID of a symbol without automatically interning it.
	// Peek returns true iff the symbol has been interned into the table.
	Peek(symbol string) (ID, bool)
	// Symbol returns the symbol associated with id.
	Symbol(id ID) (string, bool)
}

// ResolveUnknown returns a Table that returns diagnostic strings when the
// method Symbol is passed an unknown symbol ID.  The Symbol method on the
// returned Table will always return true and will use fmt.Sprintf to create a
// string representing any symbols unknown to t.  All other methods on the
// returned Table proxy the corresponding methods on t.
func ResolveUnknown(format string, t Table) Table {
	return newUnknownResolver(format, t)
}

const defaultUnknownResolverFormat = "#<SYMBOL %#x>"

type unknownResolver struct {
	format string
	Table
}

func newUnknownResolver(format string, t Table) *unknownResolver {
	if format == "" {
		format = defaultUnknownResolverFormat
	}
	return &unknownResolver{format, t}
}

// Symbol overrides t.Table.Symbol and use the t.format to describe unknown
// strings.  Symbol always returns true.
func (t *unknownResolver) Symbol(id ID) (string, bool) {
	s, ok := t.Table.Symbol(id)
	if ok {
		return s, true
	}
	return fmt.Sprintf(t.format, uint64(id)), true
}

// NewTable returns an empty table.
func NewTable() Table {
	return newTable()
}

type table struct {
	sync sync.RWMutex
	g    IDGen
	i    map[ID]string
	s    map[string]ID
}

var _ Table = (*table)(nil)

func newTable() *table {
	return &table{
		g: NewIDGen(0),
		i: make(map[ID]string),
		s: make(map[string]ID),
	}
}

// Len implements the Table interface
func (t *table) Len() int {
	t.sync.RLock()
	defer t.sync.RUnlock()
	return len(t.s)
}

// Intern implements the Table interface
func (t *table) Intern(s string) ID {
	if id, ok := t.Peek(s); ok {
		return id
	}
	t.sync.Lock()
	defer t.sync.Unlock()
	return t.intern(s)
}

func (t *table) intern(s string) ID {
	if id, ok := t.s[s]; ok {
		return id
	}
	id := t.g.NewID()
	t.s[s] = id
	t.i[id] = s
	return id
}

// Peek implements the Table interface
func (t *table) Peek(s string) (ID, bool) {
	t.sync.RLock()
	defer t.sync.RUnlock()
	id, ok := t.s[s]
	return id, ok
}

// Symbol implements the Table interface
func (t *table) Symbol(id ID) (string, bool) {
	t.sync.RLock()
	defer t.sync.RUnlock()
	s, ok := t.i[id]
	return s, ok
}
