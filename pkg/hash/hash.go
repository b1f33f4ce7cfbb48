package hash

import "math"

// A is the fractional constant used by the multiplication method. Both table
// implementations share it so their index streams stay comparable.
const A = 0.63274838

// Kind selects which hash function a table operation uses.
type Kind int

const (
	Division Kind = iota
	Multiplication
)

// Kinds lists every hash kind, in a stable order suitable for sweeps.
var Kinds = []Kind{Division, Multiplication}

func (k Kind) String() string {
	switch k {
	case Division:
		return "division"
	case Multiplication:
		return "multiplication"
	}
	return "unknown"
}

// DivisionIndex returns abs(key) mod capacity. Distribution quality depends
// on capacity being prime; that is the caller's call to make.
func DivisionIndex(key, capacity int) int {
	if key < 0 {
		key = -key
	}
	return key % capacity
}

// MultiplicationIndex scales the fractional part of abs(key)*A up to the
// table capacity. The result is always in [0, capacity).
func MultiplicationIndex(key, capacity int) int {
	if key < 0 {
		key = -key
	}
	product := float64(key) * A
	frac := product - math.Floor(product)
	i := int(frac * float64(capacity))
	if i >= capacity {
		// frac can round up to 1.0 for large keys
		i = capacity - 1
	}
	return i
}

// Index computes the table index for key under the selected kind.
func Index(k Kind, key, capacity int) int {
	if k == Multiplication {
		return MultiplicationIndex(key, capacity)
	}
	return DivisionIndex(key, capacity)
}
