package Sets

type Set[E any] interface {
	//Put e, returning false if it was already there.
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	//Take removes and returns some element.
	Take() (E, error)
	Range(func(E) bool)
}

// OrderedSet is a Set whose Range gives elements in ascending order.
type OrderedSet[E any] interface {
	Set[E]
	//LowerBound is the smallest element.
	LowerBound() (E, error)
	//UpperBound is the largest element.
	UpperBound() (E, error)
}
