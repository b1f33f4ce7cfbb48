package bench

import (
	"testing"

	"github.com/scottcagno/hashlab/pkg/dataset"
	"github.com/scottcagno/hashlab/pkg/hash"
	"github.com/scottcagno/hashlab/pkg/hashtable/chained"
	"github.com/scottcagno/hashlab/pkg/hashtable/openaddr"
	"github.com/scottcagno/hashlab/pkg/util"
)

// the baseline engines double as an oracle: whatever they say about
// membership, the tables under study must agree with

func Test_Baselines_AgreeWithTables(t *testing.T) {
	keys := dataset.Generate(500, 1, 10000, 11)
	probes := dataset.Generate(200, 1, 10000, 12)

	ct, err := chained.NewTable(97)
	util.AssertNoError(t, err)
	ot, err := openaddr.NewTable(nextPrime(1000))
	util.AssertNoError(t, err)
	engines := newBaselines()
	for _, key := range keys {
		ct.Insert(key, hash.Division)
		util.AssertNoError(t, ot.Insert(key, hash.Division))
		for _, engine := range engines {
			engine.Insert(key)
		}
	}
	for _, key := range probes {
		want := engines[0].Search(key)
		util.AssertExpected(t, want, ct.Search(key, hash.Division))
		util.AssertExpected(t, want, ot.Search(key, hash.Division))
		for _, engine := range engines[1:] {
			util.AssertExpected(t, want, engine.Search(key))
		}
	}
}

var benchKeys = dataset.Generate(10000, 1, 1000000, 1)
var benchProbes = dataset.Generate(1000, 1, 1000000, 2)

var sideEff bool

func BenchmarkChainedTable(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		t, _ := chained.NewTable(911)
		for _, key := range benchKeys {
			t.Insert(key, hash.Division)
		}
		for _, key := range benchProbes {
			sideEff = t.Search(key, hash.Division)
		}
	}
}

func BenchmarkOpenTable(b *testing.B) {
	capacity := nextPrime(len(benchKeys) * 2)
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		t, _ := openaddr.NewTable(capacity)
		for _, key := range benchKeys {
			_ = t.Insert(key, hash.Division)
		}
		for _, key := range benchProbes {
			sideEff = t.Search(key, hash.Division)
		}
	}
}

func BenchmarkBaselines(b *testing.B) {
	for _, engine := range newBaselines() {
		engine := engine
		b.Run(engine.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				for _, key := range benchKeys {
					engine.Insert(key)
				}
				for _, key := range benchProbes {
					sideEff = engine.Search(key)
				}
			}
		})
	}
}
