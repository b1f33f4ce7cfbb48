package bench

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/scottcagno/hashlab/pkg/dataset"
	"github.com/scottcagno/hashlab/pkg/hash"
	"github.com/scottcagno/hashlab/pkg/hashtable/chained"
	"github.com/scottcagno/hashlab/pkg/hashtable/openaddr"
	"github.com/scottcagno/hashlab/pkg/util"
)

// Runner drives the comparison suite: for every dataset size it populates
// both table kinds under both hash kinds, times the insert and search
// batches, and pulls the diagnostics into Result rows.
type Runner struct {
	cfg *Config
	id  string
}

// NewRunner returns a Runner for the given config; a nil config gets the
// defaults. Every row the Runner emits carries the same run id.
func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = NewConfig()
	}
	cfg.checkDefault()
	return &Runner{
		cfg: cfg,
		id:  uuid.NewString(),
	}
}

// Run executes the full suite and returns one Result per variant.
func (r *Runner) Run() ([]Result, error) {
	var results []Result
	// the search batch is shared across every variant so the timed work
	// is identical row to row
	searchKeys := dataset.Generate(r.cfg.SearchKeys, r.cfg.KeyMin, r.cfg.KeyMax, r.cfg.Seed+1)
	for _, n := range r.cfg.DataSizes {
		keys := dataset.Generate(n, r.cfg.KeyMin, r.cfg.KeyMax, r.cfg.Seed)
		for _, kind := range hash.Kinds {
			for _, capacity := range r.cfg.TableSizes {
				res, err := r.runChained(keys, searchKeys, capacity, kind)
				if err != nil {
					return nil, err
				}
				results = append(results, res)
			}
			res, err := r.runOpen(keys, searchKeys, kind)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		}
		if r.cfg.Baselines {
			results = append(results, r.runBaselines(keys, searchKeys)...)
		}
	}
	return results, nil
}

func (r *Runner) runChained(keys, searchKeys []int, capacity int, kind hash.Kind) (Result, error) {
	t, err := chained.NewTable(capacity)
	if err != nil {
		return Result{}, err
	}
	insertTime := util.Timed(func() {
		for _, key := range keys {
			t.Insert(key, kind)
		}
	})
	searchTime := util.Timed(func() {
		for _, key := range searchKeys {
			t.Search(key, kind)
		}
	})
	stats := t.DistributionStats()
	return Result{
		RunID:      r.id,
		Table:      "chained",
		Capacity:   capacity,
		Keys:       len(keys),
		Hash:       kind.String(),
		InsertTime: insertTime,
		SearchTime: searchTime,
		Collisions: stats.Collisions,
		LoadFactor: t.LoadFactor(),
	}, nil
}

func (r *Runner) runOpen(keys, searchKeys []int, kind hash.Kind) (Result, error) {
	// the open table sizes itself off the dataset so the whole load stays
	// under the insert ceiling; prime capacity keeps the division hash
	// honest, same as the fixed size list
	capacity := nextPrime(int(float64(len(keys)) / r.cfg.Headroom))
	t, err := openaddr.NewTable(capacity)
	if err != nil {
		return Result{}, err
	}
	insertTime := util.Timed(func() {
		for _, key := range keys {
			err := t.Insert(key, kind)
			if errors.Is(err, openaddr.ErrCapacityExceeded) || errors.Is(err, openaddr.ErrTableFull) {
				// a saturated table is a normal stop condition, not a
				// corrupted one
				log.Printf("bench: open table saturated at %d/%d keys: %v\n", t.Len(), len(keys), err)
				return
			}
		}
	})
	searchTime := util.Timed(func() {
		for _, key := range searchKeys {
			t.Search(key, kind)
		}
	})
	stats := t.ProbeStats()
	return Result{
		RunID:      r.id,
		Table:      "openaddr",
		Capacity:   capacity,
		Keys:       len(keys),
		Hash:       kind.String(),
		InsertTime: insertTime,
		SearchTime: searchTime,
		// every probe step past the first marks a slot the key had to
		// skip, which is the open-addressing analogue of a collision
		Collisions: stats.TotalProbes - t.Len(),
		LoadFactor: t.LoadFactor(),
	}, nil
}

// nextPrime returns the smallest prime >= n. Trial division is plenty for
// the capacities the suite works with.
func nextPrime(n int) int {
	if n < 2 {
		return 2
	}
	for !isPrime(n) {
		n++
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
