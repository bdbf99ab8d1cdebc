package Trees

import "golang.org/x/exp/constraints"

// Cursor is a position in a BSTree: either a node or the end position. It is
// a small value; copy it freely and compare it with ==.
// A cursor stays valid until the node it references is erased or its tree is
// cleared. Using an invalid cursor panics with an *InvalidCursorError rather
// than reading another node.
// The zero value is an end cursor that belongs to no tree.
type Cursor[K any, S constraints.Unsigned] struct {
	a   *arena[K, S]
	i   S
	gen uint32
}

func (u *arena[K, S]) cursor(i S) Cursor[K, S] {
	if i == 0 {
		return Cursor[K, S]{a: u}
	}
	return Cursor[K, S]{u, i, u.ifs[i].gen}
}

// IsEnd reports whether c is the end position.
func (c Cursor[K, S]) IsEnd() bool {
	return c.i == 0
}

// Valid reports whether c references a node that is still in its tree.
func (c Cursor[K, S]) Valid() bool {
	return c.a != nil && c.a.live(c.i, c.gen)
}

func (c Cursor[K, S]) validate() error {
	if c.i == 0 {
		return invalidCursor(c.i, ErrEndCursor)
	} else if !c.Valid() {
		return invalidCursor(c.i, ErrStaleCursor)
	}
	return nil
}

// Get the key c references, or an error if c isn't on a live node.
func (c Cursor[K, S]) Get() (K, error) {
	if err := c.validate(); err != nil {
		return *new(K), err
	}
	return *c.a.getV(c.i), nil
}

// Key is Get for callers that know c is valid. It panics otherwise.
func (c Cursor[K, S]) Key() K {
	k, err := c.Get()
	if err != nil {
		panic(err)
	}
	return k
}

// Next moves to the in-order successor. The successor of the maximum is end,
// and the successor of end is the minimum.
// Time: amortized O(1) over a full traversal, O(D) for one step.
func (c Cursor[K, S]) Next() Cursor[K, S] {
	if c.i == 0 {
		if c.a == nil {
			return c
		}
		return c.a.cursor(c.a.leftmost(c.a.root))
	}
	if err := c.validate(); err != nil {
		panic(err)
	}
	return c.a.cursor(c.a.next(c.i))
}

// Prev moves to the in-order predecessor. The predecessor of the minimum is
// end, and the predecessor of end is the maximum, which makes end the
// starting point of a reverse traversal.
func (c Cursor[K, S]) Prev() Cursor[K, S] {
	if c.i == 0 {
		if c.a == nil {
			return c
		}
		return c.a.cursor(c.a.rightmost(c.a.root))
	}
	if err := c.validate(); err != nil {
		panic(err)
	}
	return c.a.cursor(c.a.prev(c.i))
}
