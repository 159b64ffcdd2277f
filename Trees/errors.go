package Trees

// EmptyContainerError is returned by operations that need at least one
// element, such as Begin or Minimum, when the tree is empty.
type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	return "Tree is Empty: cannot " + e.Op + "."
}

// InvalidCursorError is returned when an Iterator can't be used: it is the
// zero Iterator, it sits on the end sentinel, or the tree was modified after
// the Iterator was made.
type InvalidCursorError struct {
	Reason string
}

func (e *InvalidCursorError) Error() string {
	return "Iterator is Invalid: " + e.Reason + "."
}
