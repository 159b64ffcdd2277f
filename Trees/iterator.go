package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Iterator is a bidirectional cursor over the keys of a BST in ascending
// order, or descending order for the ones made by RBegin and REnd. It moves
// by following child and parent links, so it needs no extra memory.
// Every Insert, Remove, Balance or Clear on the tree invalidates all of its
// Iterators. The zero Iterator is invalid.
type Iterator[T cmp.Ordered, S constraints.Unsigned] struct {
	t   *BST[T, S]
	cur S // 0 is the end sentinel.
	gen uint64
	rev bool
}

func (u *BST[T, S]) cursor(op string, at S, rev bool) (Iterator[T, S], error) {
	if u.root == 0 {
		return Iterator[T, S]{}, &EmptyContainerError{op}
	}
	return Iterator[T, S]{u, at, u.gen, rev}, nil
}

// Begin is the Iterator at the smallest key.
func (u *BST[T, S]) Begin() (Iterator[T, S], error) {
	return u.cursor("Begin", u.leftmost(u.root), false)
}

// End is the sentinel one past the largest key. It can't be dereferenced.
func (u *BST[T, S]) End() (Iterator[T, S], error) {
	return u.cursor("End", 0, false)
}

// RBegin is the reverse Iterator at the largest key.
func (u *BST[T, S]) RBegin() (Iterator[T, S], error) {
	return u.cursor("RBegin", u.rightmost(u.root), true)
}

// REnd is the reverse sentinel one before the smallest key.
func (u *BST[T, S]) REnd() (Iterator[T, S], error) {
	return u.cursor("REnd", 0, true)
}

func (it *Iterator[T, S]) check() error {
	if it.t == nil {
		return &InvalidCursorError{"zero Iterator"}
	}
	if it.gen != it.t.gen {
		return &InvalidCursorError{"tree modified after the Iterator was made"}
	}
	return nil
}

// Valid reports whether Value would succeed.
func (it Iterator[T, S]) Valid() bool {
	return it.cur != 0 && it.check() == nil
}

// AtEnd reports whether it is on the end sentinel.
func (it Iterator[T, S]) AtEnd() bool {
	return it.cur == 0
}

// Value is the key under it.
func (it Iterator[T, S]) Value() (T, error) {
	if err := it.check(); err != nil {
		return *new(T), err
	}
	if it.cur == 0 {
		return *new(T), &InvalidCursorError{"dereferencing the end sentinel"}
	}
	return it.t.ns[it.cur].v, nil
}

// Next moves to the following key, or onto the sentinel after the last one.
func (it *Iterator[T, S]) Next() error {
	if err := it.check(); err != nil {
		return err
	}
	if it.cur == 0 {
		return &InvalidCursorError{"advancing past the end sentinel"}
	}
	if it.rev {
		it.cur = it.t.predecessor(it.cur)
	} else {
		it.cur = it.t.successor(it.cur)
	}
	return nil
}

// Prev moves to the preceding key. From the sentinel it moves to the last
// key; from the first key it moves onto the sentinel.
func (it *Iterator[T, S]) Prev() error {
	if err := it.check(); err != nil {
		return err
	}
	switch {
	case it.cur == 0 && it.rev:
		it.cur = it.t.leftmost(it.t.root)
	case it.cur == 0:
		it.cur = it.t.rightmost(it.t.root)
	case it.rev:
		it.cur = it.t.successor(it.cur)
	default:
		it.cur = it.t.predecessor(it.cur)
	}
	return nil
}

// Equal reports whether it and o are on the same node of the same tree, or
// both on the same sentinel, and were taken from the same version of it.
func (it Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return it.t == o.t && it.cur == o.cur && it.rev == o.rev && it.gen == o.gen
}

// Less compares the keys under it and o in the iteration order of it.
func (it Iterator[T, S]) Less(o Iterator[T, S]) (bool, error) {
	a, err := it.Value()
	if err != nil {
		return false, err
	}
	b, err := o.Value()
	if err != nil {
		return false, err
	}
	if it.rev {
		return b < a, nil
	}
	return a < b, nil
}
