package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the arena. l, r and p are indexes into the arena, 0 is the
// absent node. p never owns anything, it is only followed upwards.
type node[T any, S constraints.Unsigned] struct {
	v       T
	l, r, p S
}

type base[T any, S constraints.Unsigned] struct {
	ns         []node[T, S] // ns[0] is the absent node and always stays zero.
	root, free S            // free is the beginning of the linked list of free indexes, in which case l is next.
	live       S            // number of indexes in use.
	gen        uint64       // bumped by every structural mutation.
}

// full reports whether S can't index another new slot.
func (u *base[T, S]) full() bool {
	return u.free == 0 && uint64(len(u.ns)) > uint64(^S(0))
}

// alloc a leaf holding v under parent p. Reuses a free index when there is one.
func (u *base[T, S]) alloc(v T, p S) S {
	u.live++
	if i := u.free; i != 0 {
		u.free = u.ns[i].l
		u.ns[i] = node[T, S]{v: v, p: p}
		return i
	}
	u.ns = append(u.ns, node[T, S]{v: v, p: p})
	return S(len(u.ns) - 1)
}

// addFree index once. The slot is zeroed so it doesn't keep v alive.
func (u *base[T, S]) addFree(i S) {
	u.ns[i] = node[T, S]{l: u.free}
	u.free = i
	u.live--
}

// relink puts c in the place of i under i's parent. c may be 0.
func (u *base[T, S]) relink(i, c S) {
	p := u.ns[i].p
	if p == 0 {
		u.root = c
	} else if u.ns[p].l == i {
		u.ns[p].l = c
	} else {
		u.ns[p].r = c
	}
	if c != 0 {
		u.ns[c].p = p
	}
}

// clearArena drops every node. O(size).
func (u *base[T, S]) clearArena() {
	clear(u.ns[1:])
	u.ns = u.ns[:1]
	u.root, u.free, u.live = 0, 0, 0
}

func (u *base[T, S]) leftmost(i S) S {
	if i != 0 {
		for u.ns[i].l != 0 {
			i = u.ns[i].l
		}
	}
	return i
}

func (u *base[T, S]) rightmost(i S) S {
	if i != 0 {
		for u.ns[i].r != 0 {
			i = u.ns[i].r
		}
	}
	return i
}

// successor of i in in-order, 0 if i is the last.
// Time: amortized O(1).
func (u *base[T, S]) successor(i S) S {
	if r := u.ns[i].r; r != 0 {
		return u.leftmost(r)
	}
	for p := u.ns[i].p; p != 0; i, p = p, u.ns[p].p {
		if u.ns[p].l == i {
			return p
		}
	}
	return 0
}

// predecessor of i in in-order, 0 if i is the first.
func (u *base[T, S]) predecessor(i S) S {
	if l := u.ns[i].l; l != 0 {
		return u.rightmost(l)
	}
	for p := u.ns[i].p; p != 0; i, p = p, u.ns[p].p {
		if u.ns[p].r == i {
			return p
		}
	}
	return 0
}
