package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the tree. l and r own the children, p only points back at the
// parent and is 0 for the root.
// gen counts how many times the slot was taken or released, so it is odd
// exactly while the slot holds a node.
type info[S constraints.Unsigned] struct {
	l, r, p S
	gen     uint32
}

// arena holds all nodes of one tree. ifs[0] is the nil sentinel and is never
// written; the key of ifs[i] is vs[i-1].
type arena[K any, S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list that contains all the released indexes; info[S]::l represents next.
	ifs        []info[S]
	vs         []K
	dropped    bool // set once the owning tree let go of the arena; every cursor into it is stale.
}

func newArena[K any, S constraints.Unsigned](hint S) *arena[K, S] {
	return &arena[K, S]{ifs: make([]info[S], 1, int(hint)+1), vs: make([]K, 0, hint)}
}

func (u *arena[K, S]) getV(i S) *K {
	return &u.vs[i-1]
}

// alloc a node holding k under parent. Released slots are reused before the
// arrays grow. The caller links the returned index into the parent.
func (u *arena[K, S]) alloc(k K, parent S) S {
	if i := u.free; i != 0 {
		u.free = u.ifs[i].l
		u.ifs[i] = info[S]{p: parent, gen: u.ifs[i].gen + 1}
		u.vs[i-1] = k
		return i
	}
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) {
		panic(ErrArenaFull)
	}
	u.ifs = append(u.ifs, info[S]{p: parent, gen: 1})
	u.vs = append(u.vs, k)
	return i
}

// release slot i. Its links must already be detached from the tree.
func (u *arena[K, S]) release(i S) {
	u.ifs[i] = info[S]{l: u.free, gen: u.ifs[i].gen + 1}
	u.vs[i-1] = *new(K)
	u.free = i
}

// drop the whole arena in O(1). Memory goes to the GC; cursors into it turn stale.
func (u *arena[K, S]) drop() {
	u.root, u.free, u.ifs, u.vs, u.dropped = 0, 0, nil, nil, true
}

// live reports whether slot i currently holds the node of generation gen.
func (u *arena[K, S]) live(i S, gen uint32) bool {
	return i != 0 && int(i) < len(u.ifs) && u.ifs[i].gen == gen
}

func (u *arena[K, S]) leftmost(i S) S {
	if i != 0 {
		for u.ifs[i].l != 0 {
			i = u.ifs[i].l
		}
	}
	return i
}

func (u *arena[K, S]) rightmost(i S) S {
	if i != 0 {
		for u.ifs[i].r != 0 {
			i = u.ifs[i].r
		}
	}
	return i
}

// next returns the in-order successor of i, 0 if i is the maximum.
func (u *arena[K, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// prev returns the in-order predecessor of i, 0 if i is the minimum.
func (u *arena[K, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].l == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// splice the subtree rooted at v into the slot n occupies. n keeps its own
// links; v may be 0.
func (u *arena[K, S]) splice(n, v S) {
	p := u.ifs[n].p
	if v != 0 {
		u.ifs[v].p = p
	}
	if p == 0 {
		u.root = v
	} else if u.ifs[p].l == n {
		u.ifs[p].l = v
	} else {
		u.ifs[p].r = v
	}
}

// clone into a new compact arena. The copy is built top-down with an explicit
// stack, the parent of every cloned node comes from its frame.
func (u *arena[K, S]) clone() *arena[K, S] {
	c := newArena[K, S](S(len(u.vs)))
	if u.root == 0 {
		return c
	}
	type frame struct {
		src, parent S
		left        bool
	}
	for st := []frame{{src: u.root}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		i := c.alloc(*u.getV(f.src), f.parent)
		if f.parent == 0 {
			c.root = i
		} else if f.left {
			c.ifs[f.parent].l = i
		} else {
			c.ifs[f.parent].r = i
		}
		if r := u.ifs[f.src].r; r != 0 {
			st = append(st, frame{r, i, false})
		}
		if l := u.ifs[f.src].l; l != 0 {
			st = append(st, frame{l, i, true})
		}
	}
	return c
}

// height is the number of nodes on the longest path from the root.
func (u *arena[K, S]) height() (h int) {
	if u.root == 0 {
		return 0
	}
	type frame struct {
		i S
		d int
	}
	for st := []frame{{u.root, 1}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, f.d)
		if l := u.ifs[f.i].l; l != 0 {
			st = append(st, frame{l, f.d + 1})
		}
		if r := u.ifs[f.i].r; r != 0 {
			st = append(st, frame{r, f.d + 1})
		}
	}
	return h
}
