package OrderedSet

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/anacrolix/log"
	"github.com/emirpasic/gods/containers"

	"github.com/g-m-twostay/bstset/Sets"
	"github.com/g-m-twostay/bstset/Trees"
)

// Cursor is a position in an OrderedSet, see Trees.Cursor.
type Cursor[K any] = Trees.Cursor[K, uint32]

var (
	_ Sets.Ordered[int]    = (*OrderedSet[int])(nil)
	_ containers.Container = (*OrderedSet[int])(nil)
)

// OrderedSet keeps distinct keys sorted by a comparator. It is a thin layer
// over Trees.BSTree that also tracks the number of keys.
// The zero value isn't usable; create one with New or one of its variants.
type OrderedSet[K any] struct {
	n   int
	bst *Trees.BSTree[K, uint32]
}

// New empty set ordered by c, a three-way comparator like cmp.Compare.
func New[K any](c func(K, K) int) *OrderedSet[K] {
	return WithCapacity(0, c)
}

// WithCapacity is New with room for n keys reserved.
func WithCapacity[K any](n uint32, c func(K, K) int) *OrderedSet[K] {
	return &OrderedSet[K]{bst: Trees.NewC[K, uint32](n, c)}
}

// NewOrdered empty set of keys in their natural order.
func NewOrdered[K cmp.Ordered]() *OrderedSet[K] {
	return New(cmp.Compare[K])
}

// NewLess empty set ordered by the strict weak order less.
func NewLess[K any](less func(K, K) bool) *OrderedSet[K] {
	return New(Trees.FromLess(less))
}

// From the given keys. Keys equivalent to an earlier one are dropped.
func From[K any](c func(K, K) int, keys ...K) *OrderedSet[K] {
	u := WithCapacity(uint32(len(keys)), c)
	u.InsertAll(keys...)
	return u
}

// FromSeq builds a set from every key seq yields.
func FromSeq[K any](c func(K, K) int, seq iter.Seq[K]) *OrderedSet[K] {
	u := New(c)
	u.InsertSeq(seq)
	return u
}

// SetLogger replaces the logger diagnostics are written to.
func (u *OrderedSet[K]) SetLogger(l log.Logger) {
	u.bst.SetLogger(l)
}

// Insert k. Returns the cursor to k's node and whether k was added.
func (u *OrderedSet[K]) Insert(k K) (Cursor[K], bool) {
	c, added := u.bst.Insert(k)
	if added {
		u.n++
	}
	return c, added
}

// InsertAll keys in order. Returns how many were added.
func (u *OrderedSet[K]) InsertAll(keys ...K) (n int) {
	for _, k := range keys {
		if _, added := u.Insert(k); added {
			n++
		}
	}
	return
}

// InsertSeq inserts every key seq yields. Returns how many were added.
func (u *OrderedSet[K]) InsertSeq(seq iter.Seq[K]) (n int) {
	for k := range seq {
		if _, added := u.Insert(k); added {
			n++
		}
	}
	return
}

// Assign replaces the content with keys. Cursors into u become stale.
func (u *OrderedSet[K]) Assign(keys ...K) {
	u.Clear()
	u.InsertAll(keys...)
}

// Find the cursor to the key equivalent to k, End if there's none.
func (u *OrderedSet[K]) Find(k K) Cursor[K] {
	return u.bst.Find(k)
}

// Erase the key at c and return the cursor to the key after it. It panics
// with a *Trees.InvalidCursorError if c doesn't reference a key of u.
func (u *OrderedSet[K]) Erase(c Cursor[K]) Cursor[K] {
	next := u.bst.Erase(c)
	u.n--
	return next
}

// TryErase is Erase reporting a bad cursor as an error.
func (u *OrderedSet[K]) TryErase(c Cursor[K]) (Cursor[K], error) {
	next, err := u.bst.TryErase(c)
	if err == nil {
		u.n--
	}
	return next, err
}

// Begin is the cursor to the smallest key, End when empty.
func (u *OrderedSet[K]) Begin() Cursor[K] { return u.bst.Begin() }

// End is the position past the largest key.
func (u *OrderedSet[K]) End() Cursor[K] { return u.bst.End() }

// RBegin is the cursor to the largest key; step it with Prev until REnd.
func (u *OrderedSet[K]) RBegin() Cursor[K] { return u.bst.RBegin() }

// REnd is the position before the smallest key.
func (u *OrderedSet[K]) REnd() Cursor[K] { return u.bst.REnd() }

// LowerBound is the cursor to the smallest key not less than k.
func (u *OrderedSet[K]) LowerBound(k K) Cursor[K] { return u.bst.LowerBound(k) }

// UpperBound is the cursor to the smallest key greater than k.
func (u *OrderedSet[K]) UpperBound(k K) Cursor[K] { return u.bst.UpperBound(k) }

// All keys in ascending order. The set mustn't be modified during the loop,
// erase through cursors instead.
func (u *OrderedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for c := u.Begin(); !c.IsEnd(); c = c.Next() {
			if !yield(c.Key()) {
				return
			}
		}
	}
}

// Backward yields all keys in descending order.
func (u *OrderedSet[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for c := u.RBegin(); !c.IsEnd(); c = c.Prev() {
			if !yield(c.Key()) {
				return
			}
		}
	}
}

func (u *OrderedSet[K]) Range(f func(K) bool) {
	u.All()(f)
}

func (u *OrderedSet[K]) RangeBackward(f func(K) bool) {
	u.Backward()(f)
}

func (u *OrderedSet[K]) Min() (K, bool) {
	k, err := u.Begin().Get()
	return k, err == nil
}

func (u *OrderedSet[K]) Max() (K, bool) {
	k, err := u.RBegin().Get()
	return k, err == nil
}

// Put is Insert without the cursor.
func (u *OrderedSet[K]) Put(k K) bool {
	_, added := u.Insert(k)
	return added
}

// Has is Contains.
func (u *OrderedSet[K]) Has(k K) bool { return u.Contains(k) }

// Remove the key equivalent to k, if any.
func (u *OrderedSet[K]) Remove(k K) bool {
	if c := u.Find(k); !c.IsEnd() {
		u.Erase(c)
		return true
	}
	return false
}

func (u *OrderedSet[K]) Contains(k K) bool {
	return !u.Find(k).IsEnd()
}

// Count is 1 if k is in the set, 0 otherwise.
func (u *OrderedSet[K]) Count(k K) int {
	if u.Contains(k) {
		return 1
	}
	return 0
}

func (u *OrderedSet[K]) Size() int { return u.n }

func (u *OrderedSet[K]) Empty() bool { return u.n == 0 }

// Clear removes every key. Cursors into u become stale.
func (u *OrderedSet[K]) Clear() {
	u.bst.Clear()
	u.n = 0
}

// Clone is a deep copy of u sharing nothing with it.
func (u *OrderedSet[K]) Clone() *OrderedSet[K] {
	return &OrderedSet[K]{u.n, u.bst.Clone()}
}

// Move the keys to a new set and leave u empty. Cursors into u keep working
// on the returned set.
func (u *OrderedSet[K]) Move() *OrderedSet[K] {
	m := &OrderedSet[K]{u.n, u.bst.Move()}
	u.n = 0
	return m
}

// Swap the content, comparator included, of u and o.
func (u *OrderedSet[K]) Swap(o *OrderedSet[K]) {
	*u, *o = *o, *u
}

// CheckAllRight verifies the parent links of the underlying tree.
func (u *OrderedSet[K]) CheckAllRight() bool {
	return u.bst.CheckAllRight()
}

// Height of the underlying tree.
func (u *OrderedSet[K]) Height() int {
	return u.bst.Height()
}

// Values returns the keys in ascending order.
func (u *OrderedSet[K]) Values() []interface{} {
	vs := make([]interface{}, 0, u.n)
	for k := range u.All() {
		vs = append(vs, k)
	}
	return vs
}

func (u *OrderedSet[K]) String() string {
	items := make([]string, 0, u.n)
	for k := range u.All() {
		items = append(items, fmt.Sprintf("%v", k))
	}
	return "OrderedSet\n" + strings.Join(items, ", ")
}

// Compare a and b lexicographically by their keys in ascending order, using
// a's comparator for the keys. A set that is a proper prefix of the other is
// the lesser one.
func Compare[K any](a, b *OrderedSet[K]) int {
	ca, cb := a.Begin(), b.Begin()
	for ; !ca.IsEnd() && !cb.IsEnd(); ca, cb = ca.Next(), cb.Next() {
		if order := a.bst.Cmp(ca.Key(), cb.Key()); order != 0 {
			return order
		}
	}
	switch {
	case ca.IsEnd() && cb.IsEnd():
		return 0
	case ca.IsEnd():
		return -1
	default:
		return 1
	}
}

// Equal reports whether a and b hold equivalent keys.
func Equal[K any](a, b *OrderedSet[K]) bool {
	return a.n == b.n && Compare(a, b) == 0
}
