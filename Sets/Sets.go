package Sets

// Set of distinct elements of type E. Which elements count as the same one is
// up to the implementation.
type Set[E any] interface {
	// Put e into the set. Returns false if an equal element was already there.
	Put(E) bool
	Has(E) bool
	// Remove e from the set. Returns false if it wasn't there.
	Remove(E) bool
	Size() int
	// Range over the elements until f returns false. f mustn't modify the set.
	Range(f func(E) bool)
}

// Ordered is a Set whose Range visits the elements in ascending order.
type Ordered[E any] interface {
	Set[E]
	// RangeBackward visits the elements in descending order until f returns false.
	RangeBackward(f func(E) bool)
	Min() (E, bool)
	Max() (E, bool)
}

// PutAll elements of src into dst. Returns how many were new to dst.
func PutAll[E any](dst, src Set[E]) (n uint) {
	src.Range(func(e E) bool {
		if dst.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll elements of src from dst. Returns how many were removed.
func RemoveAll[E any](dst, src Set[E]) (n uint) {
	src.Range(func(e E) bool {
		if dst.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq reports whether a and b hold the same elements, as judged by b.Has.
func Eq[E any](a, b Set[E]) bool {
	if a.Size() != b.Size() {
		return false
	}
	eq := true
	a.Range(func(e E) bool {
		eq = b.Has(e)
		return eq
	})
	return eq
}
