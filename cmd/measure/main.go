package main

import (
	"math/rand"
	"os"
	"testing"

	"github.com/g-m-twostay/go-bst/Sets/TreeSet"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var log = logrus.New()

func report(name string, tree *Trees.BST[int, uint32]) {
	log.WithFields(logrus.Fields{
		"keys":     name,
		"size":     tree.Size(),
		"height":   tree.Height(),
		"balanced": tree.IsBalanced(),
	}).Info("tree shape")
}

func shapes(keys map[string][]int) {
	for name, ks := range keys {
		tree := Trees.New[int, uint32](uint32(len(ks)), &Trees.Config{Log: logrus.NewEntry(log)})
		for _, k := range ks {
			tree.Insert(k)
		}
		report(name, tree)
		tree.Balance()
		report(name+" after balance", tree)
	}
}

func algebra() {
	cfg := &Trees.Config{Log: logrus.NewEntry(log)}
	a := TreeSet.From[int, uint32]([]int{1, 3, 5, 7}, cfg)
	b := TreeSet.From[int, uint32]([]int{3, 4, 5, 6}, cfg)
	for name, op := range map[string]func(s, dst *TreeSet.TreeSet[int, uint32]) error{
		"union":                a.UnionWith,
		"intersection":         a.IntersectWith,
		"difference":           a.DifferenceWith,
		"symmetric difference": a.SymmetricDifferenceWith,
	} {
		dst := TreeSet.New[int, uint32](0, cfg)
		if err := op(b, dst); err != nil {
			log.WithError(err).Fatal(name)
		}
		log.WithFields(logrus.Fields{"a": a.Values(), "b": b.Values(), "result": dst.Values()}).Info(name)
	}
}

func searches(keys []int) {
	cfg := &Trees.Config{Log: logrus.NewEntry(log)}
	tree := Trees.New[int, uint32](uint32(len(keys)), cfg)
	bt := btree.NewOrderedG[int](32)
	for _, k := range keys {
		tree.Insert(k)
		bt.ReplaceOrInsert(k)
	}
	var sideEff bool
	run := func(name string, has func(int) bool) {
		r := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				for _, k := range keys {
					sideEff = has(k)
				}
			}
		})
		log.WithFields(logrus.Fields{
			"ms/op": float64(r.NsPerOp()) / 1e6,
			"n":     r.N,
		}).Info(name)
	}
	run("bst search", tree.Search)
	tree.Balance()
	run("balanced bst search", tree.Search)
	run("btree search", bt.Has)
	_ = sideEff
}

type options struct {
	n       int
	seed    int64
	verbose bool
	bench   bool
}

func parse(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("measure", pflag.ContinueOnError)
	fs.IntVarP(&o.n, "keys", "n", 1<<14, "number of keys")
	fs.Int64VarP(&o.seed, "seed", "s", 0, "random seed")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log at debug level")
	fs.BoolVarP(&o.bench, "bench", "b", false, "time searches against github.com/google/btree")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.n < 0 || uint64(o.n) >= 1<<32 {
		return o, errors.Errorf("key count %d out of range", o.n)
	}
	return o, nil
}

func main() {
	testing.Init()
	o, err := parse(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("bad arguments")
	}
	log.SetOutput(os.Stdout)
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	r := rand.New(rand.NewSource(o.seed))
	ascending := make([]int, o.n)
	for i := range ascending {
		ascending[i] = i
	}
	shapes(map[string][]int{
		"ascending": ascending,
		"random":    r.Perm(o.n),
	})
	algebra()
	if o.bench {
		searches(r.Perm(o.n))
	}
}
