package chained

import (
	"errors"

	"github.com/scottcagno/hashlab/pkg/hash"
)

// ErrInvalidCapacity is returned by NewTable when the requested capacity
// cannot hold a single bucket.
var ErrInvalidCapacity = errors.New("chained: capacity must be greater than zero")

// entryNode is a node in part of a bucket's linked list
type entryNode struct {
	key  int
	next *entryNode
}

// bucket represents a single slot in the Table
type bucket struct {
	head *entryNode
}

func (b *bucket) search(key int) bool {
	current := b.head
	for current != nil {
		if current.key == key {
			return true
		}
		current = current.next
	}
	return false
}

func (b *bucket) insert(key int) {
	b.head = &entryNode{
		key:  key,
		next: b.head,
	}
}

func (b *bucket) delete(key int) bool {
	if b.head == nil {
		return false
	}
	if b.head.key == key {
		b.head = b.head.next
		return true
	}
	previous := b.head
	for previous.next != nil {
		if previous.next.key == key {
			previous.next = previous.next.next
			return true
		}
		previous = previous.next
	}
	return false
}

func (b *bucket) scan(it Iterator) bool {
	current := b.head
	for current != nil {
		if !it(current.key) {
			return false
		}
		current = current.next
	}
	return true
}

func (b *bucket) length() int {
	var n int
	current := b.head
	for current != nil {
		n++
		current = current.next
	}
	return n
}

// Table represents an open hashing hashtable implementation using separate
// chaining. Capacity is fixed for the lifetime of the table; the chains
// grow without bound, so the load factor may exceed 1.0.
type Table struct {
	capacity int
	size     int
	buckets  []bucket
}

// NewTable returns an empty Table with the given fixed capacity.
func NewTable(capacity int) (*Table, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Table{
		capacity: capacity,
		buckets:  make([]bucket, capacity),
	}, nil
}

// Insert adds key to the table. Inserting a key that is already present is
// a no-op, so a key is never stored twice.
func (t *Table) Insert(key int, kind hash.Kind) {
	i := hash.Index(kind, key, t.capacity)
	if t.buckets[i].search(key) {
		// already present
		return
	}
	// new keys go at the head of the chain
	t.buckets[i].insert(key)
	t.size++
}

// Search reports whether key is present. Cost is proportional to the
// occupancy of one bucket, not the table capacity.
func (t *Table) Search(key int, kind hash.Kind) bool {
	i := hash.Index(kind, key, t.capacity)
	return t.buckets[i].search(key)
}

// Remove deletes key from the table and reports whether it was present.
func (t *Table) Remove(key int, kind hash.Kind) bool {
	i := hash.Index(kind, key, t.capacity)
	if !t.buckets[i].delete(key) {
		return false
	}
	t.size--
	return true
}

// LoadFactor returns size over capacity. Chains are unbounded, so this may
// legitimately exceed 1.0.
func (t *Table) LoadFactor() float64 {
	return float64(t.size) / float64(t.capacity)
}

// Len returns the number of keys currently in the Table.
func (t *Table) Len() int {
	return t.size
}

// Capacity returns the fixed bucket count.
func (t *Table) Capacity() int {
	return t.capacity
}

// Iterator is an iterator function type
type Iterator func(key int) bool

// Range takes an Iterator and ranges the Table as long as the iterator
// function continues to be true. Range is not safe to perform an insert or
// remove operation while ranging!
func (t *Table) Range(it Iterator) {
	for i := 0; i < len(t.buckets); i++ {
		if !t.buckets[i].scan(it) {
			return
		}
	}
}
