package hashmap

// Iterator is an iterator over map entries. It can be used like this:
//
//	for it := m.Iterator(); it.HasElem(); it.Next() {
//	    key, value := it.Elem()
//	    // do something with elem...
//	}
//
// The iteration order is unspecified. The map must not be mutated while an
// iterator is in use.
type Iterator[K, V any] interface {
	// Elem returns the current key-value pair.
	Elem() (K, V)
	// HasElem returns whether the iterator is pointing to an entry.
	HasElem() bool
	// Next moves the iterator to the next position.
	Next()
}

// Iterator returns an iterator over the map, in bucket order and, within a
// bucket, insertion order.
func (m *Map[K, V]) Iterator() Iterator[K, V] {
	it := &iterator[K, V]{buckets: m.buckets}
	it.fixCurrent()
	return it
}

type iterator[K, V any] struct {
	buckets [][]entry[K, V]
	bucket  int
	pos     int
}

// fixCurrent advances past empty buckets so that the iterator either points
// at an entry or is exhausted.
func (it *iterator[K, V]) fixCurrent() {
	for it.bucket < len(it.buckets) && it.pos >= len(it.buckets[it.bucket]) {
		it.bucket++
		it.pos = 0
	}
}

func (it *iterator[K, V]) Elem() (K, V) {
	e := it.buckets[it.bucket][it.pos]
	return e.key, e.value
}

func (it *iterator[K, V]) HasElem() bool {
	return it.bucket < len(it.buckets)
}

func (it *iterator[K, V]) Next() {
	it.pos++
	it.fixCurrent()
}
