package OrderedSet

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/bstset/Sets"
	"github.com/g-m-twostay/bstset/Trees"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func byAbs(a, b int) bool {
	return abs(a) < abs(b)
}

var scenario = []int{10, -7, 13, -9, 8, -21, -100, 50, 2, 12}

// survivors of erasing forward from start while the key is < 20, computed on
// a plain sorted slice.
func survivors(start int) []int {
	sorted := slices.Clone(scenario)
	slices.SortFunc(sorted, func(a, b int) int { return cmp.Compare(abs(a), abs(b)) })
	i := slices.Index(sorted, start)
	j := i
	for j < len(sorted) && sorted[j] < 20 {
		j++
	}
	return slices.Delete(sorted, i, j)
}

func TestOrderedSet_Scenario(t *testing.T) {
	s := From(Trees.FromLess(byAbs), scenario...)
	require.Equal(t, []int{2, -7, 8, -9, 10, 12, 13, -21, 50, -100}, slices.Collect(s.All()))

	visited := map[int]int{}
	for c := s.Find(10); c.Key() < 20; {
		visited[c.Key()]++
		c = s.Erase(c)
	}
	require.Equal(t, map[int]int{10: 1, 12: 1, 13: 1, -21: 1}, visited)
	require.Equal(t, survivors(10), slices.Collect(s.All()))
	require.Equal(t, 6, s.Size())
	require.True(t, s.CheckAllRight())

	s.Assign(scenario...)
	for c := s.Begin(); c.Key() < 20; {
		c = s.Erase(c)
	}
	require.Equal(t, []int{50, -100}, slices.Collect(s.All()))
	require.Equal(t, survivors(2), slices.Collect(s.All()))
	require.True(t, s.CheckAllRight())
}

func TestOrderedSet_SizeLaw(t *testing.T) {
	s := NewOrdered[int]()
	require.True(t, s.Empty())
	_, added := s.Insert(3)
	require.True(t, added)
	_, added = s.Insert(3)
	require.False(t, added)
	require.Equal(t, 1, s.Size())
	require.Equal(t, 1, s.Count(3))
	require.Equal(t, 0, s.Count(4))

	r := rand.New(rand.NewSource(2))
	ref := treeset.NewWith(utils.IntComparator)
	for range 2000 {
		k := r.Intn(200)
		switch r.Intn(3) {
		case 0:
			require.Equal(t, ref.Contains(k), s.Remove(k))
			ref.Remove(k)
		default:
			require.Equal(t, !ref.Contains(k), s.Put(k))
			ref.Add(k)
		}
		require.Equal(t, ref.Size(), s.Size())
	}
	require.Equal(t, ref.Values(), s.Values())
	require.True(t, s.CheckAllRight())
}

func TestOrderedSet_Reverse(t *testing.T) {
	s := From(cmp.Compare[string], "pear", "apple", "fig", "kiwi")
	fwd := slices.Collect(s.All())
	back := slices.Collect(s.Backward())
	slices.Reverse(back)
	assert.Equal(t, fwd, back)
	assert.Equal(t, []string{"apple", "fig", "kiwi", "pear"}, fwd)

	var got []string
	for c := s.RBegin(); c != s.REnd(); c = c.Prev() {
		got = append(got, c.Key())
	}
	assert.Equal(t, []string{"pear", "kiwi", "fig", "apple"}, got)

	lo, ok := s.Min()
	assert.True(t, ok)
	assert.Equal(t, "apple", lo)
	hi, ok := s.Max()
	assert.True(t, ok)
	assert.Equal(t, "pear", hi)
	_, ok = NewOrdered[string]().Max()
	assert.False(t, ok)
}

func TestOrderedSet_CloneMoveSwap(t *testing.T) {
	s := From(cmp.Compare[int], 5, 1, 9, 3)
	c := s.Clone()
	c.Remove(5)
	c.Insert(7)
	assert.Equal(t, []int{1, 3, 5, 9}, slices.Collect(s.All()))
	assert.Equal(t, []int{1, 3, 7, 9}, slices.Collect(c.All()))
	assert.Equal(t, 4, c.Size())

	nine := s.Find(9)
	m := s.Move()
	assert.True(t, s.Empty())
	assert.Equal(t, 4, m.Size())
	assert.True(t, m.Erase(nine).IsEnd())
	assert.Equal(t, 3, m.Size())

	m.Swap(c)
	assert.Equal(t, []int{1, 3, 7, 9}, slices.Collect(m.All()))
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(c.All()))
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, 3, c.Size())
}

func TestOrderedSet_TryErase(t *testing.T) {
	s := From(cmp.Compare[int], 1, 2)
	one := s.Find(1)
	s.Erase(one)
	_, err := s.TryErase(one)
	require.True(t, errors.Is(err, Trees.ErrStaleCursor))
	_, err = s.TryErase(s.End())
	require.True(t, errors.Is(err, Trees.ErrEndCursor))
	require.Equal(t, 1, s.Size())
	require.Panics(t, func() { s.Erase(one) })
	require.Equal(t, 1, s.Size())

	two := s.Find(2)
	s.Clear()
	require.Equal(t, 0, s.Size())
	_, err = s.TryErase(two)
	require.True(t, errors.Is(err, Trees.ErrStaleCursor))
}

func TestOrderedSet_Compare(t *testing.T) {
	a := From(cmp.Compare[int], 1, 2, 3)
	b := From(cmp.Compare[int], 3, 2, 1)
	assert.Equal(t, 0, Compare(a, b))
	assert.True(t, Equal(a, b))

	b.Remove(3)
	assert.Equal(t, 1, Compare(a, b))
	assert.Equal(t, -1, Compare(b, a))
	assert.False(t, Equal(a, b))

	b.Insert(4)
	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))

	assert.Equal(t, 0, Compare(NewOrdered[int](), NewOrdered[int]()))
	assert.Equal(t, -1, Compare(NewOrdered[int](), a))
}

func TestOrderedSet_Bounds(t *testing.T) {
	s := FromSeq(cmp.Compare[int], slices.Values([]int{10, 30, 20}))
	assert.Equal(t, 20, s.LowerBound(15).Key())
	assert.Equal(t, 20, s.LowerBound(20).Key())
	assert.Equal(t, 30, s.UpperBound(20).Key())
	assert.True(t, s.UpperBound(30).IsEnd())
}

func TestOrderedSet_InsertSeq(t *testing.T) {
	s := NewLess(func(a, b string) bool { return len(a) < len(b) })
	n := s.InsertSeq(slices.Values([]string{"aa", "b", "cc", "ddd"}))
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"b", "aa", "ddd"}, slices.Collect(s.All()))
	assert.True(t, s.Contains("zz"))
	assert.Equal(t, 2, s.InsertAll("eeee", "f", "gggggg"))
}

func TestOrderedSet_Container(t *testing.T) {
	s := From(cmp.Compare[int], 3, 1, 2)
	assert.Equal(t, []interface{}{1, 2, 3}, s.Values())
	assert.Equal(t, "OrderedSet\n1, 2, 3", s.String())
	s.Clear()
	assert.True(t, s.Empty())
	assert.Equal(t, "OrderedSet\n", s.String())
}

func TestOrderedSet_SetsHelpers(t *testing.T) {
	a := From(cmp.Compare[int], 1, 2, 3)
	b := From(cmp.Compare[int], 3, 4)
	assert.Equal(t, uint(1), Sets.PutAll[int](a, b))
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(a.All()))
	assert.Equal(t, uint(2), Sets.RemoveAll[int](a, b))
	assert.True(t, Sets.Eq[int](a, From(cmp.Compare[int], 2, 1)))
	assert.False(t, Sets.Eq[int](a, b))
}
