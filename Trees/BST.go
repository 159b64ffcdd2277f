package Trees

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// BST is a binary search tree that keeps a parent link in every node.
// Keys in a left subtree are less than the node's key, keys in a right
// subtree are not less than it, so repeated keys go right.
// T is the type of the keys, S is the type of the indexes into the node
// arena; S bounds the number of nodes the tree can ever hold at once.
// The tree is never rebalanced on its own, see Balance.
// A BST isn't safe for concurrent use.
type BST[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
	cfg Config
}

// New returns an empty BST with room for hint nodes before the arena grows.
// cfg may be nil.
func New[T cmp.Ordered, S constraints.Unsigned](hint S, cfg *Config) *BST[T, S] {
	return &BST[T, S]{base[T, S]{ns: make([]node[T, S], 1, int(hint)+1)}, cfg.withDefaults()}
}

// mutated marks the end of a structural change, invalidating every Iterator.
func (u *BST[T, S]) mutated(op string) {
	u.gen++
	if u.cfg.Debug && u.Corrupt() {
		u.cfg.Log.WithField("op", op).Panicf("corrupted tree after %s", op)
	}
}

func (u *BST[T, S]) insert(v T) {
	if u.full() {
		u.cfg.Log.Panicf("no free index left in a tree of %d nodes", u.live)
	}
	var p S
	left := false
	for cur := u.root; cur != 0; {
		p = cur
		if left = v < u.ns[cur].v; left {
			cur = u.ns[cur].l
		} else {
			cur = u.ns[cur].r
		}
	}
	i := u.alloc(v, p)
	if p == 0 {
		u.root = i
	} else if left {
		u.ns[p].l = i
	} else {
		u.ns[p].r = i
	}
}

// Insert v as a new leaf. Repeated values are kept.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Insert(v T) {
	u.insert(v)
	u.mutated("Insert")
}

// find the first node holding v in pre-order, searching both subtrees. Recursive.
func (u *BST[T, S]) find(i S, v T) S {
	if i == 0 {
		return 0
	}
	if u.ns[i].v == v {
		return i
	}
	if f := u.find(u.ns[i].l, v); f != 0 {
		return f
	}
	return u.find(u.ns[i].r, v)
}

// Find reports whether v is in the tree by looking at every node. Recursive.
// It gives the same answer as Search on any tree that isn't Corrupt, but
// doesn't depend on the ordering to do so.
// Time: O(n)
func (u *BST[T, S]) Find(v T) bool {
	return u.find(u.root, v) != 0
}

// Search reports whether v is in the tree by descending from the root.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Search(v T) bool {
	for cur := u.root; cur != 0; {
		if v == u.ns[cur].v {
			return true
		} else if v < u.ns[cur].v {
			cur = u.ns[cur].l
		} else {
			cur = u.ns[cur].r
		}
	}
	return false
}

// ISearch reports whether v is in the tree using the iterative in-order walk.
// The error is the one the walk ran into, see Traverse.
func (u *BST[T, S]) ISearch(v T) (found bool, err error) {
	err = u.Traverse(InOrder, Iterative, func(x T) bool {
		found = x == v
		return !found
	})
	return
}

// locate is the iterative form of find.
func (u *BST[T, S]) locate(from S, v T) S {
	if from == 0 {
		return 0
	}
	for st := []S{from}; len(st) > 0; {
		i := st[len(st)-1]
		st = st[:len(st)-1]
		if u.ns[i].v == v {
			return i
		}
		if r := u.ns[i].r; r != 0 {
			st = append(st, r)
		}
		if l := u.ns[i].l; l != 0 {
			st = append(st, l)
		}
	}
	return 0
}

// unlink node i from the tree. A node with two children takes the key of its
// in-order successor, and the successor's node is removed instead. A node with
// one child is replaced by that child.
func (u *BST[T, S]) unlink(i S) {
	if n := &u.ns[i]; n.l != 0 && n.r != 0 {
		m := u.leftmost(n.r)
		n.v = u.ns[m].v
		i = m
	}
	c := u.ns[i].l
	if c == 0 {
		c = u.ns[i].r
	}
	u.relink(i, c)
	u.addFree(i)
}

// Remove the first occurrence of v, the same one Find would find. Returns
// false if v isn't in the tree.
// Time: O(n) in the worst case.
func (u *BST[T, S]) Remove(v T) bool {
	i := u.locate(u.root, v)
	if i == 0 {
		return false
	}
	u.unlink(i)
	u.mutated("Remove")
	return true
}

// Size counts the nodes reachable from the root.
// Time: O(n)
func (u *BST[T, S]) Size() uint {
	var n uint
	if u.root != 0 {
		for st := []S{u.root}; len(st) > 0; n++ {
			i := st[len(st)-1]
			st = st[:len(st)-1]
			if l := u.ns[i].l; l != 0 {
				st = append(st, l)
			}
			if r := u.ns[i].r; r != 0 {
				st = append(st, r)
			}
		}
	}
	return n
}

func (u *BST[T, S]) Empty() bool {
	return u.root == 0
}

// Clear the tree. Keeps the arena's memory for later inserts.
func (u *BST[T, S]) Clear() {
	u.clearArena()
	u.mutated("Clear")
}

// Minimum key of the tree.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Minimum() (T, error) {
	if u.root == 0 {
		return *new(T), &EmptyContainerError{"Minimum"}
	}
	return u.ns[u.leftmost(u.root)].v, nil
}

// Maximum key of the tree.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Maximum() (T, error) {
	if u.root == 0 {
		return *new(T), &EmptyContainerError{"Maximum"}
	}
	return u.ns[u.rightmost(u.root)].v, nil
}

// Predecessor returns the greatest key less than v.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if v <= u.ns[cur].v {
			cur = u.ns[cur].l
		} else {
			p = cur
			cur = u.ns[cur].r
		}
	}
	return u.ns[p].v, p != 0
}

// Successor returns the smallest key greater than v.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Successor(v T) (T, bool) {
	var p S
	for cur := u.root; cur != 0; {
		if v < u.ns[cur].v {
			p = cur
			cur = u.ns[cur].l
		} else {
			cur = u.ns[cur].r
		}
	}
	return u.ns[p].v, p != 0
}

// Clone returns a deep copy with the same shape. Iterators of u don't work
// on the copy.
func (u *BST[T, S]) Clone() *BST[T, S] {
	c := &BST[T, S]{u.base, u.cfg}
	c.ns, c.gen = slices.Clone(u.ns), 0
	return c
}

// frame of the walk in Corrupt: node i and the bounds its key must respect.
type frame[T any, S constraints.Unsigned] struct {
	i            S
	lo, hi       T
	hasLo, hasHi bool
}

// Corrupt reports whether some node breaks the ordering, a parent link
// doesn't match the child link, or the links don't form a tree.
func (u *BST[T, S]) Corrupt() bool {
	if u.root == 0 {
		return u.live != 0
	}
	if int(u.root) >= len(u.ns) || u.ns[u.root].p != 0 {
		return true
	}
	var seen S
	for st := []frame[T, S]{{i: u.root}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if seen++; seen > u.live || seen == 0 {
			return true
		}
		n := u.ns[f.i]
		if (f.hasLo && n.v < f.lo) || (f.hasHi && !(n.v < f.hi)) {
			return true
		}
		for _, c := range [2]S{n.l, n.r} {
			if c != 0 && (int(c) >= len(u.ns) || u.ns[c].p != f.i) {
				return true
			}
		}
		if n.l != 0 {
			st = append(st, frame[T, S]{n.l, f.lo, n.v, f.hasLo, true})
		}
		if n.r != 0 {
			st = append(st, frame[T, S]{n.r, n.v, f.hi, true, f.hasHi})
		}
	}
	return seen != u.live
}
