package openaddr

import (
	"errors"

	"github.com/scottcagno/hashlab/pkg/hash"
)

const (
	// DefaultMaxLoadFactor is the occupied-over-capacity ceiling at which
	// Insert refuses to add new keys, unless the table was built with a
	// different one.
	DefaultMaxLoadFactor = 0.70

	// MaxOccupancyFactor is the live-plus-tombstone threshold at which
	// NeedsMaintenance reports true.
	MaxOccupancyFactor = 0.50
)

var (
	// ErrInvalidCapacity is returned by NewTable when the requested
	// capacity cannot hold a single slot.
	ErrInvalidCapacity = errors.New("openaddr: capacity must be greater than zero")

	// ErrCapacityExceeded is returned by Insert once the load factor has
	// reached MaxLoadFactor. It signals the caller to stop inserting; the
	// table itself is still intact.
	ErrCapacityExceeded = errors.New("openaddr: load factor at maximum, table needs maintenance")

	// ErrTableFull is returned by Insert when no eligible slot turns up
	// within capacity probe attempts.
	ErrTableFull = errors.New("openaddr: no eligible slot within capacity probes")
)

// slotState tracks the lifecycle of a single slot. A slot starts out empty,
// becomes occupied on insert, and turns into a tombstone on remove. A
// tombstone may be reoccupied by a later insert but never reverts to empty.
type slotState uint8

const (
	stateEmpty slotState = iota
	stateOccupied
	stateTombstone
)

// slot is one cell of the flat table array
type slot struct {
	state slotState
	key   int
}

// Table represents a closed hashing hashtable implementation using linear
// probing with lazy deletion. Capacity is fixed for the lifetime of the
// table; the table never rehashes itself, it only signals saturation.
type Table struct {
	capacity int
	maxLoad  float64
	size     int // occupied slots
	removed  int // tombstone slots
	slots    []slot
}

// NewTable returns an empty Table with the given fixed capacity and the
// DefaultMaxLoadFactor insert ceiling.
func NewTable(capacity int) (*Table, error) {
	return NewTableMaxLoad(capacity, DefaultMaxLoadFactor)
}

// NewTableMaxLoad is the variant for callers that want their own insert
// ceiling. A ceiling outside (0, 1] falls back to the default.
func NewTableMaxLoad(capacity int, maxLoad float64) (*Table, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if maxLoad <= 0 || maxLoad > 1 {
		maxLoad = DefaultMaxLoadFactor
	}
	return &Table{
		capacity: capacity,
		maxLoad:  maxLoad,
		slots:    make([]slot, capacity),
	}, nil
}

// Insert adds key to the table. It returns ErrCapacityExceeded once the
// load factor is at or above the table's ceiling, and ErrTableFull if no
// eligible slot turns up within capacity probes. Inserting a key that is
// already present is a no-op. A failed insert leaves the table untouched.
func (t *Table) Insert(key int, kind hash.Kind) error {
	if t.LoadFactor() >= t.maxLoad {
		return ErrCapacityExceeded
	}
	i := hash.Index(kind, key, t.capacity)
	// probe linearly with wraparound; the first empty slot, tombstone, or
	// matching occupied key ends the probe
	for n := 0; n < t.capacity; n++ {
		s := &t.slots[i]
		switch s.state {
		case stateOccupied:
			if s.key == key {
				// already present
				return nil
			}
		case stateTombstone:
			// reuse the dead slot
			s.state = stateOccupied
			s.key = key
			t.removed--
			t.size++
			return nil
		case stateEmpty:
			s.state = stateOccupied
			s.key = key
			t.size++
			return nil
		}
		i = (i + 1) % t.capacity
	}
	return ErrTableFull
}

// Search reports whether key is present. Probing stops as soon as an empty
// slot is reached; tombstones do not terminate the probe, since the key may
// have been displaced past them before the removal. At most capacity slots
// are examined.
func (t *Table) Search(key int, kind hash.Kind) bool {
	i := hash.Index(kind, key, t.capacity)
	for n := 0; n < t.capacity; n++ {
		s := t.slots[i]
		if s.state == stateEmpty {
			return false
		}
		if s.state == stateOccupied && s.key == key {
			return true
		}
		i = (i + 1) % t.capacity
	}
	return false
}

// Remove deletes key from the table and returns the removed key. The slot
// is marked as a tombstone rather than vacated, so probe chains running
// through it stay intact for the other keys.
func (t *Table) Remove(key int, kind hash.Kind) (int, bool) {
	i := hash.Index(kind, key, t.capacity)
	for n := 0; n < t.capacity; n++ {
		s := &t.slots[i]
		if s.state == stateEmpty {
			return 0, false
		}
		if s.state == stateOccupied && s.key == key {
			s.state = stateTombstone
			t.size--
			t.removed++
			return key, true
		}
		i = (i + 1) % t.capacity
	}
	return 0, false
}

// LoadFactor returns occupied slots over capacity.
func (t *Table) LoadFactor() float64 {
	return float64(t.size) / float64(t.capacity)
}

// OccupancyFactor returns occupied plus tombstoned slots over capacity.
// Tombstones slow probes down just like live keys do, so this is the number
// that predicts probe cost.
func (t *Table) OccupancyFactor() float64 {
	return float64(t.size+t.removed) / float64(t.capacity)
}

// NeedsMaintenance reports whether further inserts are unsafe. The table
// never rehashes itself; the caller is expected to build a larger table and
// reinsert when this trips.
func (t *Table) NeedsMaintenance() bool {
	return t.LoadFactor() >= t.maxLoad || t.OccupancyFactor() >= MaxOccupancyFactor
}

// Len returns the number of live keys currently in the Table.
func (t *Table) Len() int {
	return t.size
}

// Tombstones returns the number of removed-and-not-reused slots.
func (t *Table) Tombstones() int {
	return t.removed
}

// Capacity returns the fixed slot count.
func (t *Table) Capacity() int {
	return t.capacity
}

// Iterator is an iterator function type
type Iterator func(key int) bool

// Range takes an Iterator and ranges the live keys of the Table as long as
// the iterator function continues to be true. Range is not safe to perform
// an insert or remove operation while ranging!
func (t *Table) Range(it Iterator) {
	for i := 0; i < len(t.slots); i++ {
		if t.slots[i].state != stateOccupied {
			continue
		}
		if !it(t.slots[i].key) {
			return
		}
	}
}
