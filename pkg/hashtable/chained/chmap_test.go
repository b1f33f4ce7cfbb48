package chained

import (
	"testing"

	"github.com/scottcagno/hashlab/pkg/hash"
	"github.com/scottcagno/hashlab/pkg/util"
)

func Test_Table_New(t *testing.T) {
	_, err := NewTable(0)
	util.AssertExpected(t, ErrInvalidCapacity, err)
	_, err = NewTable(-5)
	util.AssertExpected(t, ErrInvalidCapacity, err)
	tbl, err := NewTable(29)
	util.AssertNoError(t, err)
	util.AssertExpected(t, 29, tbl.Capacity())
	util.AssertExpected(t, 0, tbl.Len())
}

func Test_Table_InsertIdempotent(t *testing.T) {
	tbl, err := NewTable(29)
	util.AssertNoError(t, err)
	tbl.Insert(42, hash.Division)
	tbl.Insert(42, hash.Division)
	util.AssertExpected(t, 1, tbl.Len())
	util.AssertExpected(t, true, tbl.Search(42, hash.Division))
}

func Test_Table_RemoveRoundTrip(t *testing.T) {
	tbl, err := NewTable(29)
	util.AssertNoError(t, err)
	tbl.Insert(42, hash.Division)
	util.AssertExpected(t, true, tbl.Remove(42, hash.Division))
	util.AssertExpected(t, false, tbl.Search(42, hash.Division))
	util.AssertExpected(t, false, tbl.Remove(42, hash.Division))
	util.AssertExpected(t, 0, tbl.Len())
	// a removed key inserts again as if it were new
	tbl.Insert(42, hash.Division)
	util.AssertExpected(t, true, tbl.Search(42, hash.Division))
	util.AssertExpected(t, 1, tbl.Len())
}

func Test_Table_RemoveSplice(t *testing.T) {
	// capacity 1 forces every key into one chain, so all three unlink
	// shapes get exercised: head, middle, and tail
	tbl, err := NewTable(1)
	util.AssertNoError(t, err)
	tbl.Insert(1, hash.Division)
	tbl.Insert(2, hash.Division)
	tbl.Insert(3, hash.Division) // chain is now 3 -> 2 -> 1
	util.AssertExpected(t, true, tbl.Remove(2, hash.Division))
	util.AssertExpected(t, true, tbl.Search(3, hash.Division))
	util.AssertExpected(t, true, tbl.Search(1, hash.Division))
	util.AssertExpected(t, true, tbl.Remove(3, hash.Division))
	util.AssertExpected(t, true, tbl.Search(1, hash.Division))
	util.AssertExpected(t, true, tbl.Remove(1, hash.Division))
	util.AssertExpected(t, 0, tbl.Len())
}

func Test_Table_ChainSumMatchesLen(t *testing.T) {
	for _, kind := range hash.Kinds {
		tbl, err := NewTable(29)
		util.AssertNoError(t, err)
		for key := 0; key < 500; key += 3 {
			tbl.Insert(key, kind)
		}
		var counted int
		tbl.Range(func(key int) bool {
			counted++
			return true
		})
		util.AssertExpected(t, tbl.Len(), counted)
	}
}

func Test_Table_DistributionStats(t *testing.T) {
	// 29, 58, and 0 all land on bucket 0 under the division hash
	tbl, err := NewTable(29)
	util.AssertNoError(t, err)
	tbl.Insert(29, hash.Division)
	tbl.Insert(58, hash.Division)
	tbl.Insert(0, hash.Division)
	stats := tbl.DistributionStats()
	util.AssertExpected(t, 28, stats.EmptyBuckets)
	util.AssertExpected(t, 3, stats.MaxChainLen)
	util.AssertExpected(t, 3.0, stats.MeanChainLen)
	util.AssertExpected(t, 2, stats.Collisions)
}

func Test_Table_DistributionStats_Empty(t *testing.T) {
	tbl, err := NewTable(7)
	util.AssertNoError(t, err)
	stats := tbl.DistributionStats()
	util.AssertExpected(t, 7, stats.EmptyBuckets)
	util.AssertExpected(t, 0, stats.MaxChainLen)
	util.AssertExpected(t, 0.0, stats.MeanChainLen)
	util.AssertExpected(t, 0, stats.Collisions)
}

func Test_Table_LoadFactorUnbounded(t *testing.T) {
	tbl, err := NewTable(3)
	util.AssertNoError(t, err)
	for key := 0; key < 6; key++ {
		tbl.Insert(key, hash.Division)
	}
	util.AssertExpected(t, 2.0, tbl.LoadFactor())
}

func Test_Table_MultiplicationKind(t *testing.T) {
	tbl, err := NewTable(97)
	util.AssertNoError(t, err)
	for key := 1; key <= 200; key++ {
		tbl.Insert(key, hash.Multiplication)
	}
	util.AssertExpected(t, 200, tbl.Len())
	for key := 1; key <= 200; key++ {
		util.AssertExpected(t, true, tbl.Search(key, hash.Multiplication))
	}
	util.AssertExpected(t, false, tbl.Search(201, hash.Multiplication))
}
