package bench

import (
	"github.com/alphadose/haxmap"
	cornelk "github.com/cornelk/hashmap"
	godshashmap "github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/scottcagno/hashlab/pkg/util"
)

// baseline is the minimal surface a third-party engine needs to take part
// in a suite run. Baselines only provide context rows for the report; they
// never stand in for the tables under study.
type baseline interface {
	Name() string
	Insert(key int)
	Search(key int) bool
}

// newBaselines builds one fresh engine of every supported kind.
func newBaselines() []baseline {
	return []baseline{
		&godsHashMapBaseline{m: godshashmap.New()},
		&godsTreeMapBaseline{m: treemap.NewWithIntComparator()},
		&haxmapBaseline{m: haxmap.New[int, struct{}]()},
		&cornelkBaseline{m: cornelk.New[int, struct{}]()},
		&btreeBaseline{t: btree.NewOrderedG[int](32)},
		&llrbBaseline{t: llrb.New()},
	}
}

// runBaselines times the same insert and search batches against every
// third-party engine. Capacity, collisions, and load factor do not apply
// to engines that manage their own storage, so those columns stay zero.
func (r *Runner) runBaselines(keys, searchKeys []int) []Result {
	var results []Result
	for _, engine := range newBaselines() {
		engine := engine
		insertTime := util.Timed(func() {
			for _, key := range keys {
				engine.Insert(key)
			}
		})
		searchTime := util.Timed(func() {
			for _, key := range searchKeys {
				engine.Search(key)
			}
		})
		results = append(results, Result{
			RunID:      r.id,
			Table:      engine.Name(),
			Keys:       len(keys),
			Hash:       "native",
			InsertTime: insertTime,
			SearchTime: searchTime,
		})
	}
	return results
}

type godsHashMapBaseline struct {
	m *godshashmap.Map
}

func (b *godsHashMapBaseline) Name() string { return "gods-hashmap" }

func (b *godsHashMapBaseline) Insert(key int) { b.m.Put(key, struct{}{}) }

func (b *godsHashMapBaseline) Search(key int) bool {
	_, found := b.m.Get(key)
	return found
}

type godsTreeMapBaseline struct {
	m *treemap.Map
}

func (b *godsTreeMapBaseline) Name() string { return "gods-treemap" }

func (b *godsTreeMapBaseline) Insert(key int) { b.m.Put(key, struct{}{}) }

func (b *godsTreeMapBaseline) Search(key int) bool {
	_, found := b.m.Get(key)
	return found
}

type haxmapBaseline struct {
	m *haxmap.Map[int, struct{}]
}

func (b *haxmapBaseline) Name() string { return "haxmap" }

func (b *haxmapBaseline) Insert(key int) { b.m.Set(key, struct{}{}) }

func (b *haxmapBaseline) Search(key int) bool {
	_, found := b.m.Get(key)
	return found
}

type cornelkBaseline struct {
	m *cornelk.Map[int, struct{}]
}

func (b *cornelkBaseline) Name() string { return "cornelk-hashmap" }

func (b *cornelkBaseline) Insert(key int) { b.m.Set(key, struct{}{}) }

func (b *cornelkBaseline) Search(key int) bool {
	_, found := b.m.Get(key)
	return found
}

type btreeBaseline struct {
	t *btree.BTreeG[int]
}

func (b *btreeBaseline) Name() string { return "google-btree" }

func (b *btreeBaseline) Insert(key int) { b.t.ReplaceOrInsert(key) }

func (b *btreeBaseline) Search(key int) bool { return b.t.Has(key) }

type llrbBaseline struct {
	t *llrb.LLRB
}

func (b *llrbBaseline) Name() string { return "gollrb" }

func (b *llrbBaseline) Insert(key int) { b.t.ReplaceOrInsert(llrb.Int(key)) }

func (b *llrbBaseline) Search(key int) bool { return b.t.Has(llrb.Int(key)) }
