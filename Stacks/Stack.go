package Stacks

import "strconv"

type Stack[T any] interface {
	//Push item on top. Fails with StackFullError when the stack is at capacity.
	Push(item T) error
	//Pop the top item. Fails with StackEmptyError when there is nothing to pop.
	Pop() (T, error)
	//Top returns the top item without removing it.
	Top() (T, error)
	Empty() bool
	Size() uint
}

type StackFullError struct {
	Cap uint
}

func (e *StackFullError) Error() string {
	return "Stack is Full: cannot Push beyond capacity " + strconv.FormatUint(uint64(e.Cap), 10) + "."
}

type StackEmptyError struct {
	Op string
}

func (e *StackEmptyError) Error() string {
	return "Stack is Empty: cannot " + e.Op + "."
}
