package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/go-bst/Sets"
	"github.com/g-m-twostay/go-bst/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set of distinct values kept in a Trees.BST.
// The tree isn't exposed, so the repeated values the BST allows can't get in.
// A TreeSet isn't safe for concurrent use.
type TreeSet[T cmp.Ordered, S constraints.Unsigned] struct {
	t *Trees.BST[T, S]
}

var _ Sets.OrderedSet[int] = (*TreeSet[int, uint32])(nil)

// New returns an empty TreeSet, see Trees.New for hint and cfg.
func New[T cmp.Ordered, S constraints.Unsigned](hint S, cfg *Trees.Config) *TreeSet[T, S] {
	return &TreeSet[T, S]{Trees.New[T, S](hint, cfg)}
}

// From returns a balanced TreeSet holding the values of vs. vs can be in any
// order and have repeats.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T, cfg *Trees.Config) *TreeSet[T, S] {
	u := New[T, S](S(len(vs)), cfg)
	for _, v := range vs {
		u.Put(v)
	}
	u.t.Balance()
	return u
}

// Put v if it isn't in u yet.
// Time: O(D)
func (u *TreeSet[T, S]) Put(v T) bool {
	if u.t.Search(v) {
		return false
	}
	u.t.Insert(v)
	return true
}

func (u *TreeSet[T, S]) Has(v T) bool {
	return u.t.Search(v)
}

func (u *TreeSet[T, S]) Remove(v T) bool {
	return u.t.Remove(v)
}

func (u *TreeSet[T, S]) Size() uint {
	return u.t.Size()
}

func (u *TreeSet[T, S]) Empty() bool {
	return u.t.Empty()
}

func (u *TreeSet[T, S]) Clear() {
	u.t.Clear()
}

// Take removes and returns the smallest element.
func (u *TreeSet[T, S]) Take() (T, error) {
	v, err := u.t.Minimum()
	if err == nil {
		u.t.Remove(v)
	}
	return v, err
}

// Range gives f the elements in ascending order until f returns false.
// f mustn't modify u.
func (u *TreeSet[T, S]) Range(f func(T) bool) {
	next := u.t.InOrder()
	for v, ok := next(); ok && f(v); v, ok = next() {
	}
}

// Values of u in ascending order.
func (u *TreeSet[T, S]) Values() []T {
	var r []T
	u.Range(func(v T) bool {
		r = append(r, v)
		return true
	})
	return r
}

func (u *TreeSet[T, S]) LowerBound() (T, error) {
	it, err := u.t.Begin()
	if err != nil {
		return *new(T), err
	}
	return it.Value()
}

func (u *TreeSet[T, S]) UpperBound() (T, error) {
	it, err := u.t.RBegin()
	if err != nil {
		return *new(T), err
	}
	return it.Value()
}

func (u *TreeSet[T, S]) Begin() (Trees.Iterator[T, S], error) {
	return u.t.Begin()
}

func (u *TreeSet[T, S]) End() (Trees.Iterator[T, S], error) {
	return u.t.End()
}

func (u *TreeSet[T, S]) RBegin() (Trees.Iterator[T, S], error) {
	return u.t.RBegin()
}

func (u *TreeSet[T, S]) REnd() (Trees.Iterator[T, S], error) {
	return u.t.REnd()
}

// Balance the underlying tree, see Trees.BST.Balance.
func (u *TreeSet[T, S]) Balance() {
	u.t.Balance()
}

func (u *TreeSet[T, S]) Height() uint {
	return u.t.Height()
}

func (u *TreeSet[T, S]) IsBalanced() bool {
	return u.t.IsBalanced()
}

// Traverse the underlying tree, see Trees.BST.Traverse.
func (u *TreeSet[T, S]) Traverse(o Trees.Order, m Trees.Mode, f func(T) bool) error {
	return u.t.Traverse(o, m, f)
}
