package Stacks

import "github.com/emirpasic/gods/stacks/arraystack"

// ArrayStack is a LIFO stack holding at most a fixed number of items.
// The zero value is not usable, use MakeArrayStack.
type ArrayStack[T any] struct {
	st  *arraystack.Stack
	cap uint
}

var _ Stack[int] = (*ArrayStack[int])(nil)

// MakeArrayStack returns an empty stack that accepts at most cap items.
func MakeArrayStack[T any](cap uint) *ArrayStack[T] {
	return &ArrayStack[T]{arraystack.New(), cap}
}

func (u *ArrayStack[T]) Push(item T) error {
	if uint(u.st.Size()) >= u.cap {
		return &StackFullError{u.cap}
	}
	u.st.Push(item)
	return nil
}

func (u *ArrayStack[T]) Pop() (T, error) {
	if v, ok := u.st.Pop(); ok {
		return v.(T), nil
	}
	return *new(T), &StackEmptyError{"Pop"}
}

func (u *ArrayStack[T]) Top() (T, error) {
	if v, ok := u.st.Peek(); ok {
		return v.(T), nil
	}
	return *new(T), &StackEmptyError{"Top"}
}

func (u *ArrayStack[T]) Empty() bool {
	return u.st.Empty()
}

func (u *ArrayStack[T]) Size() uint {
	return uint(u.st.Size())
}

// Cap is the number of items the stack accepts before Push fails.
func (u *ArrayStack[T]) Cap() uint {
	return u.cap
}

// Clear removes all items, keeping the capacity.
func (u *ArrayStack[T]) Clear() {
	u.st.Clear()
}
