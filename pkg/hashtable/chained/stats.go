package chained

// DistributionStats summarizes how the stored keys spread across the
// buckets after a workload has been inserted.
type DistributionStats struct {
	EmptyBuckets int     // buckets holding no keys
	MaxChainLen  int     // length of the longest chain
	MeanChainLen float64 // mean length over non-empty buckets
	Collisions   int     // every key after the first in a chain
}

// DistributionStats walks every bucket once and reports the chain-length
// distribution. Each element beyond the first in a bucket counts as one
// collision.
func (t *Table) DistributionStats() DistributionStats {
	var stats DistributionStats
	var nonEmpty, total int
	for i := 0; i < len(t.buckets); i++ {
		length := t.buckets[i].length()
		if length == 0 {
			stats.EmptyBuckets++
			continue
		}
		nonEmpty++
		total += length
		if length > stats.MaxChainLen {
			stats.MaxChainLen = length
		}
		if length > 1 {
			stats.Collisions += length - 1
		}
	}
	if nonEmpty > 0 {
		stats.MeanChainLen = float64(total) / float64(nonEmpty)
	}
	return stats
}
