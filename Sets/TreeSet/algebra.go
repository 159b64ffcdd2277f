package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// The set operations below write into dst without clearing it first, so dst
// should normally be empty. dst can't be one of the operands; u and s can be
// the same set.

func aliased[T cmp.Ordered, S constraints.Unsigned](op string, u, s, dst *TreeSet[T, S]) error {
	if dst == u || dst == s {
		return &Trees.InvalidCursorError{Reason: "destination of " + op + " is also an operand"}
	}
	return nil
}

// first is the Iterator at the smallest element, or the zero Iterator, which
// sits on the sentinel, for an empty set.
func first[T cmp.Ordered, S constraints.Unsigned](u *TreeSet[T, S]) (Trees.Iterator[T, S], error) {
	it, err := u.t.Begin()
	var e *Trees.EmptyContainerError
	if errors.As(err, &e) {
		return it, nil
	}
	return it, err
}

// drain gives f every element from it to the end.
func drain[T cmp.Ordered, S constraints.Unsigned](it Trees.Iterator[T, S], f func(T)) error {
	if f == nil {
		return nil
	}
	for !it.AtEnd() {
		v, err := it.Value()
		if err != nil {
			return err
		}
		f(v)
		if err = it.Next(); err != nil {
			return err
		}
	}
	return nil
}

// merge walks u and s in ascending order together. onlyU gets the elements
// of u missing from s, onlyS the reverse, and both the common ones. nil
// callbacks are skipped.
// Time: O(n+m)
func merge[T cmp.Ordered, S constraints.Unsigned](u, s *TreeSet[T, S], onlyU, onlyS, both func(T)) error {
	a, err := first(u)
	if err != nil {
		return err
	}
	b, err := first(s)
	if err != nil {
		return err
	}
	call := func(f func(T), v T) {
		if f != nil {
			f(v)
		}
	}
	for !a.AtEnd() && !b.AtEnd() {
		x, err := a.Value()
		if err != nil {
			return err
		}
		y, err := b.Value()
		if err != nil {
			return err
		}
		switch {
		case x < y:
			call(onlyU, x)
			err = a.Next()
		case y < x:
			call(onlyS, y)
			err = b.Next()
		default:
			call(both, x)
			if err = a.Next(); err == nil {
				err = b.Next()
			}
		}
		if err != nil {
			return err
		}
	}
	if err = drain(a, onlyU); err != nil {
		return err
	}
	return drain(b, onlyS)
}

func putter[T cmp.Ordered, S constraints.Unsigned](dst *TreeSet[T, S]) func(T) {
	return func(v T) {
		dst.Put(v)
	}
}

// UnionWith puts every element of u, then every element of s, into dst.
// Time: O((n+m) log(n+m)) for the puts into dst.
func (u *TreeSet[T, S]) UnionWith(s, dst *TreeSet[T, S]) error {
	if err := aliased("union", u, s, dst); err != nil {
		return err
	}
	put := func(v T) bool {
		dst.Put(v)
		return true
	}
	u.Range(put)
	if s != u {
		s.Range(put)
	}
	return nil
}

// IntersectWith puts the elements found in both u and s into dst.
func (u *TreeSet[T, S]) IntersectWith(s, dst *TreeSet[T, S]) error {
	if err := aliased("intersection", u, s, dst); err != nil {
		return err
	}
	if s == u {
		return u.UnionWith(s, dst)
	}
	return errors.Wrap(merge(u, s, nil, nil, putter(dst)), "intersection")
}

// DifferenceWith puts the elements of u missing from s into dst.
func (u *TreeSet[T, S]) DifferenceWith(s, dst *TreeSet[T, S]) error {
	if err := aliased("difference", u, s, dst); err != nil {
		return err
	}
	if s == u {
		return nil
	}
	return errors.Wrap(merge(u, s, putter(dst), nil, nil), "difference")
}

// SymmetricDifferenceWith puts the elements in exactly one of u and s into dst.
func (u *TreeSet[T, S]) SymmetricDifferenceWith(s, dst *TreeSet[T, S]) error {
	if err := aliased("symmetric difference", u, s, dst); err != nil {
		return err
	}
	if s == u {
		return nil
	}
	put := putter(dst)
	return errors.Wrap(merge(u, s, put, put, nil), "symmetric difference")
}
