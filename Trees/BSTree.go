package Trees

import (
	"cmp"
	"fmt"

	"github.com/anacrolix/log"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/bstset/internal/invariants"
)

// BSTree is an unbalanced binary search tree with no repeated keys. Nodes keep
// a link to their parent, so cursors can walk the tree in both directions
// without a stack, and erasing through a cursor hands back the cursor to
// continue from.
// K is the key type, S is the type of the indexes addressing the nodes; it
// bounds the number of nodes the tree can ever hold at once.
// The shape of the tree only depends on the order of insertions and
// deletions, so D, the height, is O(n) in the worst case.
// A BSTree isn't safe for concurrent use.
type BSTree[K any, S constraints.Unsigned] struct {
	a *arena[K, S]
	// returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	Cmp    func(K, K) int
	logger log.Logger
}

// New tree for cmp.Ordered keys. hint is the expected number of keys.
func New[K cmp.Ordered, S constraints.Unsigned](hint S) *BSTree[K, S] {
	return NewC[K, S](hint, cmp.Compare[K])
}

// NewC creates a tree ordered by c. c must be a strict weak order: keys it
// reports as 0 are the same key to the tree.
func NewC[K any, S constraints.Unsigned](hint S, c func(K, K) int) *BSTree[K, S] {
	return &BSTree[K, S]{newArena[K, S](hint), c, log.Default.WithNames("bstset")}
}

// From a given sorted slice, directly build a tree of minimal height. The
// slice must be strictly increasing under c, otherwise From panics with
// InvalidSliceError. The slice is handed to the tree and mustn't be modified
// by the caller later.
// Time: O(n).
func From[K any, S constraints.Unsigned](vs []K, c func(K, K) int) *BSTree[K, S] {
	for i := 1; i < len(vs); i++ {
		if c(vs[i-1], vs[i]) >= 0 {
			panic(InvalidSliceError[K]{i, vs[i-1], vs[i]})
		}
	}
	if uint64(len(vs)) > uint64(^S(0)) {
		panic(ErrArenaFull)
	}
	u := NewC[K, S](0, c)
	u.a.root, u.a.ifs = buildIfs[S](S(len(vs)))
	u.a.vs = vs
	u.verify("From")
	return u
}

// InvalidSliceError reports the first pair of a slice given to From that
// isn't in strictly increasing order.
type InvalidSliceError[K any] struct {
	Index      int
	Prev, Curr K
}

func (e InvalidSliceError[K]) Error() string {
	return fmt.Sprintf("slice isn't strictly increasing at index %d: %v, %v", e.Index, e.Prev, e.Curr)
}

// SetLogger replaces the logger diagnostics are written to.
func (u *BSTree[K, S]) SetLogger(l log.Logger) {
	u.logger = l
}

// Insert k. Returns the cursor to the node holding k and whether it was
// added; if an equivalent key is present the tree is left untouched.
// Time: O(D)
func (u *BSTree[K, S]) Insert(k K) (Cursor[K, S], bool) {
	a := u.a
	var parent S
	left := false
	for curI := a.root; curI != 0; {
		parent = curI
		if order := u.Cmp(k, *a.getV(curI)); order < 0 {
			curI, left = a.ifs[curI].l, true
		} else if order > 0 {
			curI, left = a.ifs[curI].r, false
		} else {
			return a.cursor(curI), false
		}
	}
	i := a.alloc(k, parent)
	if parent == 0 {
		a.root = i
	} else if left {
		a.ifs[parent].l = i
	} else {
		a.ifs[parent].r = i
	}
	u.verify("Insert")
	return a.cursor(i), true
}

// Find the node equivalent to k. Returns End if there's none.
// Time: O(D); Space: O(1)
func (u *BSTree[K, S]) Find(k K) Cursor[K, S] {
	a := u.a
	for curI := a.root; curI != 0; {
		if order := u.Cmp(k, *a.getV(curI)); order < 0 {
			curI = a.ifs[curI].l
		} else if order > 0 {
			curI = a.ifs[curI].r
		} else {
			return a.cursor(curI)
		}
	}
	return u.End()
}

// Erase the node c references and return the cursor to its in-order
// successor, or End if it was the maximum. Cursors to every other node stay
// valid, so a forward traversal can erase as it goes:
//
//	for c := t.Begin(); !c.IsEnd(); {
//		if drop(c.Key()) {
//			c = t.Erase(c)
//		} else {
//			c = c.Next()
//		}
//	}
//
// Erase panics with an *InvalidCursorError if c is End, stale, or from
// another tree.
// Time: O(D)
func (u *BSTree[K, S]) Erase(c Cursor[K, S]) Cursor[K, S] {
	next, err := u.TryErase(c)
	if err != nil {
		panic(err)
	}
	return next
}

// TryErase is Erase reporting a bad cursor as an error instead of panicking.
func (u *BSTree[K, S]) TryErase(c Cursor[K, S]) (Cursor[K, S], error) {
	if err := u.owns(c); err != nil {
		return u.End(), err
	}
	a := u.a
	n := c.i
	succ := a.next(n)
	if nd := a.ifs[n]; nd.l == 0 {
		a.splice(n, nd.r)
	} else if nd.r == 0 {
		a.splice(n, nd.l)
	} else {
		// succ is the leftmost node of n's right subtree, it has no left child.
		s := &a.ifs[succ]
		s.l = nd.l
		a.ifs[nd.l].p = succ
		if s.p != n {
			a.splice(succ, s.r)
			s.r = nd.r
			a.ifs[nd.r].p = succ
		}
		a.splice(n, succ)
	}
	a.release(n)
	u.verify("Erase")
	return a.cursor(succ), nil
}

func (u *BSTree[K, S]) owns(c Cursor[K, S]) error {
	switch {
	case c.i == 0:
		return invalidCursor(c.i, ErrEndCursor)
	case c.a == nil || c.a.dropped:
		return invalidCursor(c.i, ErrStaleCursor)
	case c.a != u.a:
		return invalidCursor(c.i, ErrForeignCursor)
	case !u.a.live(c.i, c.gen):
		return invalidCursor(c.i, ErrStaleCursor)
	}
	return nil
}

// Begin is the cursor to the minimum, or End if the tree is empty.
func (u *BSTree[K, S]) Begin() Cursor[K, S] {
	return u.a.cursor(u.a.leftmost(u.a.root))
}

// End is the position one past the maximum.
func (u *BSTree[K, S]) End() Cursor[K, S] {
	return u.a.cursor(0)
}

// RBegin is the start of a reverse traversal: the maximum, or REnd if the tree
// is empty. Step it with Cursor.Prev.
func (u *BSTree[K, S]) RBegin() Cursor[K, S] {
	return u.a.cursor(u.a.rightmost(u.a.root))
}

// REnd is the position one before the minimum. It is the same position as End.
func (u *BSTree[K, S]) REnd() Cursor[K, S] {
	return u.End()
}

// LowerBound is the cursor to the smallest key >= k, End if there's none.
// Time: O(D)
func (u *BSTree[K, S]) LowerBound(k K) Cursor[K, S] {
	a := u.a
	var p S
	for curI := a.root; curI != 0; {
		if u.Cmp(*a.getV(curI), k) < 0 {
			curI = a.ifs[curI].r
		} else {
			p = curI
			curI = a.ifs[curI].l
		}
	}
	return a.cursor(p)
}

// UpperBound is the cursor to the smallest key > k, End if there's none.
// Time: O(D)
func (u *BSTree[K, S]) UpperBound(k K) Cursor[K, S] {
	a := u.a
	var p S
	for curI := a.root; curI != 0; {
		if u.Cmp(k, *a.getV(curI)) < 0 {
			p = curI
			curI = a.ifs[curI].l
		} else {
			curI = a.ifs[curI].r
		}
	}
	return a.cursor(p)
}

// Empty reports whether the tree holds no node.
func (u *BSTree[K, S]) Empty() bool {
	return u.a.root == 0
}

// Height of the tree, 0 when empty.
// Time: O(n)
func (u *BSTree[K, S]) Height() int {
	return u.a.height()
}

// Clear the tree. Every cursor into it becomes stale.
// Time: O(1)
func (u *BSTree[K, S]) Clear() {
	u.a.drop()
	u.a = newArena[K, S](0)
}

// Clone returns a deep copy using the same comparator. The copy and u share
// nothing; cursors of u don't apply to it.
// Time: O(n)
func (u *BSTree[K, S]) Clone() *BSTree[K, S] {
	c := &BSTree[K, S]{u.a.clone(), u.Cmp, u.logger}
	c.verify("Clone")
	return c
}

// Move the nodes of u to a new tree and leave u empty. Cursors into u now
// reference the same nodes in the returned tree.
// Time: O(1)
func (u *BSTree[K, S]) Move() *BSTree[K, S] {
	m := &BSTree[K, S]{u.a, u.Cmp, u.logger}
	u.a = newArena[K, S](0)
	return m
}

// CheckAllRight verifies that the parent links mirror the child links: the
// root has no parent, and every other node is a child of its parent. The
// first broken link is logged.
// Time: O(n)
func (u *BSTree[K, S]) CheckAllRight() bool {
	a := u.a
	if a.root == 0 {
		return true
	}
	if p := a.ifs[a.root].p; p != 0 {
		u.logger.Levelf(log.Error, "root %d has parent %d", a.root, p)
		return false
	}
	for st := []S{a.root}; len(st) > 0; {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		for _, c := range [2]S{a.ifs[i].l, a.ifs[i].r} {
			if c == 0 {
				continue
			}
			if a.ifs[c].gen&1 == 0 {
				u.logger.Levelf(log.Error, "node %d links released slot %d", i, c)
				return false
			}
			if p := a.ifs[c].p; p != i {
				u.logger.Levelf(log.Error, "node %d is a child of %d but links %d as parent", c, i, p)
				return false
			}
			st = append(st, c)
		}
	}
	return true
}

// Corrupt returns whether the tree has corrupt structures: a parent link not
// matching a child link, or keys out of order.
// Time: O(n)
func (u *BSTree[K, S]) Corrupt() bool {
	if !u.CheckAllRight() {
		return true
	}
	a := u.a
	prev := a.leftmost(a.root)
	for i := prev; i != 0; prev = i {
		if i = a.next(i); i != 0 && u.Cmp(*a.getV(prev), *a.getV(i)) >= 0 {
			u.logger.Levelf(log.Error, "node %d is not ordered before its successor %d", prev, i)
			return true
		}
	}
	return false
}

func (u *BSTree[K, S]) verify(op string) {
	if invariants.Enabled && u.Corrupt() {
		err := errors.Errorf("tree corrupt after %s", op)
		u.logger.Levelf(log.Error, "%v", err)
		panic(err)
	}
}

// buildIfs of size vsLen to represent a complete binary tree, parent links included.
func buildIfs[S constraints.Unsigned](vsLen S) (root S, ifs []info[S]) {
	ifs = make([]info[S], int(vsLen)+1)
	if vsLen == 0 {
		return 0, ifs
	}
	st := make([][4]S, 0, 64) //[low, high, mid, parent]
	root = 1 + (vsLen-1)/2
	st = append(st, [4]S{1, vsLen, root, 0})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		ifs[top[2]].p, ifs[top[2]].gen = top[3], 1
		if top[0] < top[2] {
			nh := top[2] - 1
			ifs[top[2]].l = top[0] + (nh-top[0])/2
			st = append(st, [4]S{top[0], nh, ifs[top[2]].l, top[2]})
		}
		if top[2] < top[1] {
			nl := top[2] + 1
			ifs[top[2]].r = nl + (top[1]-nl)/2
			st = append(st, [4]S{nl, top[1], ifs[top[2]].r, top[2]})
		}
	}
	return
}
