package Trees

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers that has an error as the last return value fail with
// EmptyContainerError when they need an element and the tree has none.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Always succeeds.
	Insert(v T)
	//Remove v from the Tree. Returning true if something was removed.
	Remove(v T) bool
	//Find v by looking at every node.
	Find(v T) bool
	//Search v by descending from the root.
	Search(v T) bool
	//Minimum element of the tree.
	Minimum() (T, error)
	//Maximum element of the tree.
	Maximum() (T, error)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	Empty() bool
	Clear()
	//Height is the number of nodes on the longest root to leaf path.
	Height() uint
	//IsBalanced checks every node, not only the root.
	IsBalanced() bool
	//Balance rebuilds the whole tree to minimal height.
	Balance()
	//Traverse gives f every element in order o until f returns false.
	Traverse(o Order, m Mode, f func(T) bool) error
	//InOrder returns A closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or the links are inconsistent.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*BST[int, uint32])(nil)
