package TreeSet

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-bst/Trees"
)

// compares membership with https://github.com/alphadose/haxmap and
// https://github.com/cornelk/hashmap, which don't keep any order.
const bItemCount = 1 << 14

var (
	bKeys   = _R.Perm(bItemCount)
	sideEff bool
)

func fast() *Trees.Config {
	cfg := quiet()
	cfg.Debug = false
	return cfg
}

func BenchmarkTreeSet_Has(b *testing.B) {
	u := From[int, uint32](bKeys, fast())
	b.ResetTimer()
	for range b.N {
		for _, k := range bKeys {
			sideEff = u.Has(k)
		}
	}
}

func BenchmarkHaxMap_Get(b *testing.B) {
	m := haxmap.New[int, struct{}]()
	for _, k := range bKeys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range bKeys {
			_, sideEff = m.Get(k)
		}
	}
}

func BenchmarkHashMap_Get(b *testing.B) {
	m := hashmap.New[int, struct{}]()
	for _, k := range bKeys {
		m.Set(k, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for _, k := range bKeys {
			_, sideEff = m.Get(k)
		}
	}
}

func BenchmarkTreeSet_Put(b *testing.B) {
	cfg := fast()
	for range b.N {
		u := New[int, uint32](bItemCount, cfg)
		for _, k := range bKeys {
			u.Put(k)
		}
	}
}

func BenchmarkHaxMap_Set(b *testing.B) {
	for range b.N {
		m := haxmap.New[int, struct{}]()
		for _, k := range bKeys {
			m.Set(k, struct{}{})
		}
	}
}

func BenchmarkHashMap_Set(b *testing.B) {
	for range b.N {
		m := hashmap.New[int, struct{}]()
		for _, k := range bKeys {
			m.Set(k, struct{}{})
		}
	}
}

func BenchmarkTreeSet_Intersect(b *testing.B) {
	cfg := fast()
	u := From[int, uint32](bKeys[:bItemCount/2], cfg)
	s := From[int, uint32](bKeys[bItemCount/4:], cfg)
	b.ResetTimer()
	for range b.N {
		if err := u.IntersectWith(s, New[int, uint32](bItemCount, cfg)); err != nil {
			b.Fatal(err)
		}
	}
}
