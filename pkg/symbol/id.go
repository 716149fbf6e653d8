package symbol

import "sync/atomic"

// An ID is the canonical token of an interned symbol.  Two symbols are the
// same symbol iff their IDs are equal.
type ID uint64

// MaxID is the largest ID a Table will hand out.
const MaxID = 0x00000000FFFFFFFF

// IDGen is a function that generates unique IDs.
type IDGen interface {
	// NewID returns a unique ID.  It is not specified at the interface level
	// what IDs are returned, only that they are unique.
	NewID() ID
}

// NewIDGen returns a basic IDGen that will generate unique ids from min to
// MaxID.  The returned IDGen will not produce the value min.
func NewIDGen(min ID) IDGen {
	if min > MaxID {
		panic("invalid min ID")
	}
	return &gen{lastid: min}
}

type gen struct {
	lastid ID
}

var _ IDGen = (*gen)(nil)

func (g *gen) NewID() ID {
	id := atomic.AddUint64((*uint64)(&g.lastid), 1)
	if id > MaxID {
		panic("too many ids generated")
	}
	return ID(id)
}

// String is equivalent to calling String(id, DefaultGlobalTable).
func (id ID) String() string {
	return String(id, DefaultGlobalTable)
}
