package openaddr

import "github.com/scottcagno/hashlab/pkg/hash"

// ProbeStats summarizes probe distances and clustering after a workload
// has been inserted.
type ProbeStats struct {
	TotalProbes int     // probe steps summed over every live key
	MeanProbes  float64 // mean probe count per live key
	MaxProbes   int     // worst probe count for a single key
	Clusters    int     // contiguous non-empty runs longer than one slot
	MaxCluster  int     // length of the longest run
}

// ProbeStats recomputes, for every occupied slot, how many probe steps it
// takes to reach that slot from the key's division-hash start index, and
// scans the slot array for clusters. The division hash is the fixed
// reference for probe distance regardless of which kind populated the
// table, so distances stay comparable between hash kinds. A key found at
// its start index counts as one probe.
func (t *Table) ProbeStats() ProbeStats {
	var stats ProbeStats
	if t.size == 0 {
		return stats
	}
	for i := 0; i < t.capacity; i++ {
		if t.slots[i].state != stateOccupied {
			continue
		}
		start := hash.DivisionIndex(t.slots[i].key, t.capacity)
		probes := 1
		for j := start; j != i; j = (j + 1) % t.capacity {
			probes++
			if probes > t.capacity {
				break
			}
		}
		stats.TotalProbes += probes
		if probes > stats.MaxProbes {
			stats.MaxProbes = probes
		}
	}
	stats.MeanProbes = float64(stats.TotalProbes) / float64(t.size)

	stats.Clusters, stats.MaxCluster = t.clusters()
	return stats
}

// clusters counts maximal contiguous runs of non-empty slots that are
// longer than one slot, and the length of the longest. Tombstones count as
// non-empty since probes walk through them. A run touching both the last
// and first slot index wraps and counts as one cluster.
func (t *Table) clusters() (count, longest int) {
	// find an empty slot to anchor the scan so no run is split in two by
	// the array boundary
	anchor := -1
	for i := 0; i < t.capacity; i++ {
		if t.slots[i].state == stateEmpty {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		// every slot is non-empty: one run covering the whole table
		if t.capacity > 1 {
			return 1, t.capacity
		}
		return 0, 0
	}
	var run int
	flush := func() {
		if run > 1 {
			count++
			if run > longest {
				longest = run
			}
		}
		run = 0
	}
	for n := 0; n < t.capacity; n++ {
		i := (anchor + 1 + n) % t.capacity
		if t.slots[i].state != stateEmpty {
			run++
			continue
		}
		flush()
	}
	flush()
	return count, longest
}
