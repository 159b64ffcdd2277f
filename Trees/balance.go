package Trees

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/sirupsen/logrus"
)

func (u *BST[T, S]) height(i S) uint {
	if i == 0 {
		return 0
	}
	return 1 + max(u.height(u.ns[i].l), u.height(u.ns[i].r))
}

// Height of the tree, 0 when empty. Recursive.
// Time: O(n)
func (u *BST[T, S]) Height() uint {
	return u.height(u.root)
}

// balanced returns the height of i and whether every node under it has
// subtrees whose heights differ by at most 1.
func (u *BST[T, S]) balanced(i S) (uint, bool) {
	if i == 0 {
		return 0, true
	}
	lh, ok := u.balanced(u.ns[i].l)
	if !ok {
		return 0, false
	}
	rh, ok := u.balanced(u.ns[i].r)
	if !ok || lh > rh+1 || rh > lh+1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// IsBalanced reports whether the heights of the two subtrees of every node
// differ by at most 1. Recursive.
// Time: O(n)
func (u *BST[T, S]) IsBalanced() bool {
	_, ok := u.balanced(u.root)
	return ok
}

// build inserts the middle of data[start:end+1], then recursively the left
// half and the right half.
func (u *BST[T, S]) build(data *arraylist.List, start, end int) {
	if start <= end {
		mid := (start + end) / 2
		v, _ := data.Get(mid)
		u.insert(v.(T))
		u.build(data, start, mid-1)
		u.build(data, mid+1, end)
	}
}

// Balance rebuilds the tree from its sorted keys, always inserting the middle
// key of a range first. Without repeated keys the result has height
// ceil(log2(n+1)) and IsBalanced is true.
// Time: O(n log n); Space: O(n)
func (u *BST[T, S]) Balance() {
	debug := u.cfg.Log.Logger.IsLevelEnabled(logrus.DebugLevel)
	var before uint
	if debug {
		before = u.Height()
	}
	data := arraylist.New()
	for i := u.leftmost(u.root); i != 0; i = u.successor(i) {
		data.Add(u.ns[i].v)
	}
	u.clearArena()
	u.build(data, 0, data.Size()-1)
	u.mutated("Balance")
	if debug {
		u.cfg.Log.WithFields(logrus.Fields{
			"size":   data.Size(),
			"before": before,
			"after":  u.Height(),
		}).Debug("balanced tree")
	}
}
