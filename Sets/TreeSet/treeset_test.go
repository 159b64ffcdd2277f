package TreeSet

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/g-m-twostay/go-bst/Trees"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _R = rand.New(rand.NewSource(0))

func quiet() *Trees.Config {
	l := logrus.New()
	l.Out = io.Discard
	return &Trees.Config{Log: logrus.NewEntry(l), Debug: true}
}

func of(vs ...int) *TreeSet[int, uint32] {
	u := New[int, uint32](0, quiet())
	for _, v := range vs {
		u.Put(v)
	}
	return u
}

// random returns a TreeSet of n values drawn from [0, valRange) and the same
// values in a gods treeset.
func random(n, valRange int) (*TreeSet[int, uint32], *treeset.Set) {
	u, o := New[int, uint32](0, quiet()), treeset.NewWithIntComparator()
	for range n {
		v := _R.Intn(valRange)
		u.Put(v)
		o.Add(v)
	}
	return u, o
}

func ints(o *treeset.Set) []int {
	var r []int
	for _, v := range o.Values() {
		r = append(r, v.(int))
	}
	return r
}

func TestTreeSet_Put(t *testing.T) {
	g := NewWithT(t)
	u := of()
	for i := range 10 {
		g.Expect(u.Put(i)).To(BeTrue())
		g.Expect(u.Put(i)).To(BeFalse())
	}
	g.Expect(u.Size()).To(Equal(uint(10)))
	for i := range 5 {
		g.Expect(u.Remove(i)).To(BeTrue())
		g.Expect(u.Remove(i)).To(BeFalse())
	}
	for i := range 10 {
		g.Expect(u.Has(i)).To(Equal(i >= 5))
	}
	g.Expect(u.Values()).To(Equal([]int{5, 6, 7, 8, 9}))
}

func TestTreeSet_Bounds(t *testing.T) {
	g := NewWithT(t)
	u := of()
	var e *Trees.EmptyContainerError
	_, err := u.LowerBound()
	g.Expect(errors.As(err, &e)).To(BeTrue())
	_, err = u.UpperBound()
	g.Expect(errors.As(err, &e)).To(BeTrue())
	_, err = u.Take()
	g.Expect(errors.As(err, &e)).To(BeTrue())

	u = of(7, 3, 9, 1)
	g.Expect(u.LowerBound()).To(Equal(1))
	g.Expect(u.UpperBound()).To(Equal(9))
	g.Expect(u.Take()).To(Equal(1))
	g.Expect(u.Values()).To(Equal([]int{3, 7, 9}))
}

func TestTreeSet_From(t *testing.T) {
	g := NewWithT(t)
	vs := make([]int, 5000)
	for i := range vs {
		vs[i] = _R.Intn(3000)
	}
	u := From[int, uint32](vs, quiet())
	o := treeset.NewWithIntComparator()
	for _, v := range vs {
		o.Add(v)
	}
	g.Expect(u.Values()).To(Equal(ints(o)))
	g.Expect(u.IsBalanced()).To(BeTrue())
	g.Expect(u.Height()).To(BeNumerically("<=", 12))
}

func TestTreeSet_Range(t *testing.T) {
	g := NewWithT(t)
	u := of(5, 1, 4, 2, 3)
	var s []int
	u.Range(func(v int) bool {
		s = append(s, v)
		return v < 3
	})
	g.Expect(s).To(Equal([]int{1, 2, 3}))
	s = s[:0]
	g.Expect(u.Traverse(Trees.PreOrder, Trees.Iterative, func(v int) bool {
		s = append(s, v)
		return true
	})).To(Succeed())
	g.Expect(s).To(Equal([]int{5, 1, 4, 2, 3}))
}

func TestTreeSet_Example(t *testing.T) {
	g := NewWithT(t)
	a, b := of(1, 3, 5, 7), of(3, 4, 5, 6)
	for _, c := range []struct {
		op   func(s, dst *TreeSet[int, uint32]) error
		want []int
	}{
		{a.UnionWith, []int{1, 3, 4, 5, 6, 7}},
		{a.IntersectWith, []int{3, 5}},
		{a.DifferenceWith, []int{1, 7}},
		{a.SymmetricDifferenceWith, []int{1, 4, 6, 7}},
	} {
		dst := of()
		g.Expect(c.op(b, dst)).To(Succeed())
		g.Expect(dst.Values()).To(Equal(c.want))
	}
	dst := of()
	g.Expect(b.DifferenceWith(a, dst)).To(Succeed())
	g.Expect(dst.Values()).To(Equal([]int{4, 6}))
}

func TestTreeSet_SymmetricDifferenceTails(t *testing.T) {
	g := NewWithT(t)
	dst := of()
	g.Expect(of(1, 2, 8, 9).SymmetricDifferenceWith(of(2, 3), dst)).To(Succeed())
	g.Expect(dst.Values()).To(Equal([]int{1, 3, 8, 9}))
	dst = of()
	g.Expect(of(2, 3).SymmetricDifferenceWith(of(1, 2, 8, 9), dst)).To(Succeed())
	g.Expect(dst.Values()).To(Equal([]int{1, 3, 8, 9}))
}

func TestTreeSet_Algebra(t *testing.T) {
	g := NewWithT(t)
	sizes := []int{0, 1, 2, 50, 1000}
	for _, n := range sizes {
		for _, m := range sizes {
			a, oa := random(n, 2*max(n, m)+1)
			b, ob := random(m, 2*max(n, m)+1)
			union, inter := oa.Union(ob), oa.Intersection(ob)
			diff, rdiff := oa.Difference(ob), ob.Difference(oa)
			sym := diff.Union(rdiff)
			for _, c := range []struct {
				name string
				op   func(s, dst *TreeSet[int, uint32]) error
				want *treeset.Set
			}{
				{"union", a.UnionWith, union},
				{"intersection", a.IntersectWith, inter},
				{"difference", a.DifferenceWith, diff},
				{"symmetric difference", a.SymmetricDifferenceWith, sym},
			} {
				dst := of()
				g.Expect(c.op(b, dst)).To(Succeed())
				g.Expect(dst.Values()).To(Equal(ints(c.want)), "%s of sizes %d and %d", c.name, n, m)
			}
		}
	}
}

func TestTreeSet_Aliasing(t *testing.T) {
	g := NewWithT(t)
	for _, n := range []int{0, 1, 100} {
		a, oa := random(n, 1000)
		for _, c := range []struct {
			op   func(s, dst *TreeSet[int, uint32]) error
			want []int
		}{
			{a.UnionWith, ints(oa)},
			{a.IntersectWith, ints(oa)},
			{a.DifferenceWith, nil},
			{a.SymmetricDifferenceWith, nil},
		} {
			dst := of()
			g.Expect(c.op(a, dst)).To(Succeed())
			g.Expect(dst.Values()).To(Equal(c.want))
		}
		var e *Trees.InvalidCursorError
		g.Expect(errors.As(a.UnionWith(a, a), &e)).To(BeTrue())
		g.Expect(errors.As(a.IntersectWith(of(1), a), &e)).To(BeTrue())
		g.Expect(errors.As(of(1).DifferenceWith(a, a), &e)).To(BeTrue())
	}
}

func TestTreeSet_DestinationKept(t *testing.T) {
	g := NewWithT(t)
	dst := of(100)
	g.Expect(of(1, 2).IntersectWith(of(2, 3), dst)).To(Succeed())
	g.Expect(dst.Values()).To(Equal([]int{2, 100}))
}
