package Trees

import (
	"github.com/g-m-twostay/go-bst/Queues"
	"github.com/g-m-twostay/go-bst/Stacks"
	"github.com/pkg/errors"
)

// Order of a traversal.
type Order byte

const (
	InOrder    Order = iota // left, self, right.
	PreOrder                // self, left, right.
	PostOrder               // left, right, self.
	LevelOrder              // top down, left to right.
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	}
	return "unknown order"
}

// Mode selects between the recursive walks and the ones driven by an
// explicit Stacks.ArrayStack. LevelOrder always uses a queue.
type Mode byte

const (
	Recursive Mode = iota
	Iterative
)

// Traverse the tree in order o, giving every key to f. The walk stops early
// when f returns false. f mustn't modify the tree; if it does the walk stops
// with InvalidCursorError.
// Iterative walks fail with the wrapped Stacks.StackFullError when the tree
// is deeper than Config.StackCap allows.
func (u *BST[T, S]) Traverse(o Order, m Mode, f func(T) bool) (err error) {
	g, stale := u.gen, false
	visit := func(i S) bool {
		ok := f(u.ns[i].v)
		stale = u.gen != g
		return ok && !stale
	}
	switch {
	case o == LevelOrder:
		err = u.levelOrder(visit)
	case m == Recursive:
		switch o {
		case InOrder:
			u.inOrder(u.root, visit)
		case PreOrder:
			u.preOrder(u.root, visit)
		case PostOrder:
			u.postOrder(u.root, visit)
		}
	default:
		switch o {
		case InOrder:
			err = u.iInOrder(visit)
		case PreOrder:
			err = u.iPreOrder(visit)
		case PostOrder:
			err = u.iPostOrder(visit)
		}
	}
	if stale {
		return &InvalidCursorError{"tree modified during " + o.String() + " traversal"}
	}
	return errors.Wrapf(err, "%s traversal", o)
}

func (u *BST[T, S]) inOrder(i S, f func(S) bool) bool {
	if i == 0 {
		return true
	}
	return u.inOrder(u.ns[i].l, f) && f(i) && u.inOrder(u.ns[i].r, f)
}

func (u *BST[T, S]) preOrder(i S, f func(S) bool) bool {
	if i == 0 {
		return true
	}
	return f(i) && u.preOrder(u.ns[i].l, f) && u.preOrder(u.ns[i].r, f)
}

func (u *BST[T, S]) postOrder(i S, f func(S) bool) bool {
	if i == 0 {
		return true
	}
	return u.postOrder(u.ns[i].l, f) && u.postOrder(u.ns[i].r, f) && f(i)
}

// stack for one iterative walk. An in-order walk holds at most two
// entries per level.
func (u *BST[T, S]) stack() *Stacks.ArrayStack[S] {
	c := u.cfg.StackCap
	if c == 0 {
		c = 2*uint(u.live) + 1
	}
	return Stacks.MakeArrayStack[S](c)
}

func (u *BST[T, S]) iPreOrder(f func(S) bool) error {
	if u.root == 0 {
		return nil
	}
	st := u.stack()
	if err := st.Push(u.root); err != nil {
		return err
	}
	for !st.Empty() {
		i, err := st.Pop()
		if err != nil {
			return err
		}
		if !f(i) {
			return nil
		}
		if r := u.ns[i].r; r != 0 {
			if err = st.Push(r); err != nil {
				return err
			}
		}
		if l := u.ns[i].l; l != 0 {
			if err = st.Push(l); err != nil {
				return err
			}
		}
	}
	return nil
}

// iInOrder stacks the right child (if any) and the node itself while going
// left, then visits popped nodes until one with a right child, which is
// visited too before the walk continues from its right child.
func (u *BST[T, S]) iInOrder(f func(S) bool) (err error) {
	st := u.stack()
	for p := u.root; p != 0; {
		for ; p != 0; p = u.ns[p].l {
			if r := u.ns[p].r; r != 0 {
				if err = st.Push(r); err != nil {
					return
				}
			}
			if err = st.Push(p); err != nil {
				return
			}
		}
		if p, err = st.Pop(); err != nil {
			return
		}
		for !st.Empty() && u.ns[p].r == 0 {
			if !f(p) {
				return
			}
			if p, err = st.Pop(); err != nil {
				return
			}
		}
		if !f(p) {
			return
		}
		if st.Empty() {
			p = 0
		} else if p, err = st.Pop(); err != nil {
			return
		}
	}
	return
}

// iPostOrder stacks the left spine, then visits a node once its right child
// is absent or was the last visited node q.
func (u *BST[T, S]) iPostOrder(f func(S) bool) (err error) {
	st := u.stack()
	for p, q := u.root, u.root; p != 0; p = u.ns[p].r {
		for ; u.ns[p].l != 0; p = u.ns[p].l {
			if err = st.Push(p); err != nil {
				return
			}
		}
		for u.ns[p].r == 0 || u.ns[p].r == q {
			if !f(p) {
				return
			}
			q = p
			if st.Empty() {
				return
			}
			if p, err = st.Pop(); err != nil {
				return
			}
		}
		if err = st.Push(p); err != nil {
			return
		}
	}
	return
}

func (u *BST[T, S]) levelOrder(f func(S) bool) error {
	if u.root == 0 {
		return nil
	}
	q := Queues.MakeArrayQueue[S](u.cfg.QueueCap)
	for q.Push(u.root); !q.Empty(); {
		i, err := q.Pop()
		if err != nil {
			return err
		}
		if !f(i) {
			return nil
		}
		if l := u.ns[i].l; l != 0 {
			q.Push(l)
		}
		if r := u.ns[i].r; r != 0 {
			q.Push(r)
		}
	}
	return nil
}

// InOrder returns a closure f acting like an iterator over the keys in
// ascending order: val, valid=f(). val is meaningful only if valid is true.
// Once valid is false f is exhausted. f also stops if the tree is modified.
// Time: amortized O(1) at each call to f. Space: O(1)
func (u *BST[T, S]) InOrder() func() (T, bool) {
	cur, g := u.leftmost(u.root), u.gen
	return func() (r T, has bool) {
		if cur == 0 || u.gen != g {
			return
		}
		r, has = u.ns[cur].v, true
		cur = u.successor(cur)
		return
	}
}
