// Package hashmap implements a mutable hash map using separate chaining.
package hashmap

import (
	"fmt"
	"strings"

	"github.com/guimauveb/hashmap/hash"
)

const (
	defaultBuckets = 16

	// Grow when count exceeds maxLoadNum/maxLoadDen of the bucket count.
	maxLoadNum = 3
	maxLoadDen = 4
)

// EqualFunc is the type of a function that reports whether two keys are
// equal.
type EqualFunc[K any] func(k1, k2 K) bool

// HashFunc is the type of a function that returns the hash code of a key.
// Two keys that are equal under the map's EqualFunc must hash identically.
type HashFunc[K any] func(k K) uint32

// entry is a single key-value pair stored in a bucket.
type entry[K, V any] struct {
	key   K
	value V
}

// Map is an associative data structure mapping keys to values. It is built
// on an array of buckets, each holding the entries whose keys hash to that
// bucket's index. It is not safe for concurrent use.
type Map[K, V any] struct {
	equal   EqualFunc[K]
	hash    HashFunc[K]
	seed    uint32
	count   int
	buckets [][]entry[K, V]
}

// New creates a new Map with the given equality and hash functions.
func New[K, V any](equal EqualFunc[K], hash HashFunc[K]) *Map[K, V] {
	return NewSized[K, V](equal, hash, defaultBuckets)
}

// NewSized is like New, but the map starts with n buckets. Values of n below
// 1 are treated as 1.
func NewSized[K, V any](equal EqualFunc[K], hash HashFunc[K], n int) *Map[K, V] {
	if n < 1 {
		n = 1
	}
	return &Map[K, V]{
		equal:   equal,
		hash:    hash,
		buckets: make([][]entry[K, V], n),
	}
}

// NewSeeded is like New, but every hash code is additionally mixed with seed
// before it is reduced to a bucket index. Seeding changes how entries spread
// across buckets, not which entries the map holds.
func NewSeeded[K, V any](equal EqualFunc[K], hashFn HashFunc[K], seed uint32) *Map[K, V] {
	m := New[K, V](equal, hashFn)
	m.seed = seed
	return m
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Insert associates k with v. If the map already holds an entry with an
// equal key, its value is replaced in place and the previous value is
// returned with true; the stored key is kept and k is discarded. Otherwise a
// new entry is appended to the key's bucket and the zero value of V is
// returned with false. Insert may grow the bucket array; its return value is
// not affected by growth.
func (m *Map[K, V]) Insert(k K, v V) (V, bool) {
	i := m.index(k, len(m.buckets))
	b := m.buckets[i]
	if j := m.scan(b, k); j >= 0 {
		prev := b[j].value
		b[j].value = v
		return prev, true
	}
	m.buckets[i] = append(b, entry[K, V]{k, v})
	m.count++
	if m.count*maxLoadDen > len(m.buckets)*maxLoadNum {
		m.grow()
	}
	var zero V
	return zero, false
}

// Get returns the value associated with k and whether such an entry exists.
// It never mutates the map.
func (m *Map[K, V]) Get(k K) (V, bool) {
	b := m.buckets[m.index(k, len(m.buckets))]
	if j := m.scan(b, k); j >= 0 {
		return b[j].value, true
	}
	var zero V
	return zero, false
}

// Remove deletes the entry with a key equal to k, returning its value and
// true, or the zero value of V and false if no such entry exists. The
// relative order of the remaining entries in the bucket is preserved.
// Removal never shrinks the bucket array.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	i := m.index(k, len(m.buckets))
	b := m.buckets[i]
	j := m.scan(b, k)
	if j < 0 {
		var zero V
		return zero, false
	}
	removed := b[j].value
	copy(b[j:], b[j+1:])
	var zero entry[K, V]
	b[len(b)-1] = zero
	m.buckets[i] = b[:len(b)-1]
	m.count--
	return removed, true
}

// Clear removes all entries, resetting the map to its initial bucket count.
func (m *Map[K, V]) Clear() {
	m.buckets = make([][]entry[K, V], defaultBuckets)
	m.count = 0
}

// HasKey reports whether m has an entry with the given key.
func HasKey[K, V any](m *Map[K, V], k K) bool {
	_, ok := m.Get(k)
	return ok
}

// index returns the bucket index of k in an array of n buckets.
func (m *Map[K, V]) index(k K, n int) int {
	h := m.hash(k)
	if m.seed != 0 {
		h = hash.Combine(m.seed, h)
	}
	return int(h % uint32(n))
}

// scan returns the position of the entry with a key equal to k in the
// bucket, or -1.
func (m *Map[K, V]) scan(b []entry[K, V], k K) int {
	for j := range b {
		if m.equal(b[j].key, k) {
			return j
		}
	}
	return -1
}

// grow doubles the bucket array, moving every entry into the bucket given by
// its hash modulo the new count. The new array replaces the old one only
// after all entries have been placed.
func (m *Map[K, V]) grow() {
	newBuckets := make([][]entry[K, V], 2*len(m.buckets))
	for _, b := range m.buckets {
		for _, e := range b {
			i := m.index(e.key, len(newBuckets))
			newBuckets[i] = append(newBuckets[i], e)
		}
	}
	m.buckets = newBuckets
}

// String implements fmt.Stringer, printing entries in iteration order.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for it := m.Iterator(); it.HasElem(); it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		k, v := it.Elem()
		fmt.Fprintf(&sb, "%v: %v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
