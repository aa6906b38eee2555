package unicase

import "hash/maphash"

type mapEntry[V any] struct {
	key UniCase
	val V
}

// Map is a hash map keyed case-insensitively by UniCase values. Buckets
// are addressed by the seeded hash of the folded key, so Get, Delete,
// and Contains accept a plain borrowed string and locate entries whose
// stored key is case-insensitively equal without allocating or building
// a wrapper for the query.
//
// The zero value is not usable; call NewMap. Map is not safe for
// concurrent mutation.
type Map[V any] struct {
	seed    maphash.Seed
	buckets map[uint64][]mapEntry[V]
	n       int
}

// NewMap returns an empty Map with a fresh hash seed.
func NewMap[V any]() *Map[V] {
	return &Map[V]{
		seed:    maphash.MakeSeed(),
		buckets: make(map[uint64][]mapEntry[V]),
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int { return m.n }

// Set stores val under key. If a case-insensitively equal key is already
// present its value is replaced but the stored key keeps its original
// spelling.
func (m *Map[V]) Set(key UniCase, val V) {
	sum := key.Hash(m.seed)
	b := m.buckets[sum]
	for i := range b {
		if b[i].key.EqualString(key.s) {
			b[i].val = val
			return
		}
	}
	m.buckets[sum] = append(b, mapEntry[V]{key: key, val: val})
	m.n++
}

// Get returns the value stored under a key case-insensitively equal to
// key. The lookup performs no allocation.
func (m *Map[V]) Get(key string) (V, bool) {
	for _, e := range m.buckets[hashString(m.seed, key)] {
		if e.key.EqualString(key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// GetKey is Get but also returns the stored key, preserving the
// spelling it was inserted with.
func (m *Map[V]) GetKey(key string) (UniCase, V, bool) {
	for _, e := range m.buckets[hashString(m.seed, key)] {
		if e.key.EqualString(key) {
			return e.key, e.val, true
		}
	}
	var zero V
	return UniCase{}, zero, false
}

// Contains reports whether a case-insensitively equal key is present.
func (m *Map[V]) Contains(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes the entry stored under a case-insensitively equal key
// and reports whether one was present.
func (m *Map[V]) Delete(key string) bool {
	sum := hashString(m.seed, key)
	b := m.buckets[sum]
	for i := range b {
		if b[i].key.EqualString(key) {
			b = append(b[:i], b[i+1:]...)
			if len(b) == 0 {
				delete(m.buckets, sum)
			} else {
				m.buckets[sum] = b
			}
			m.n--
			return true
		}
	}
	return false
}

// Range calls fn for every entry until fn returns false. The iteration
// order is unspecified.
func (m *Map[V]) Range(fn func(key UniCase, val V) bool) {
	for _, b := range m.buckets {
		for _, e := range b {
			if !fn(e.key, e.val) {
				return
			}
		}
	}
}

// Set is a hash set of case-insensitively unique strings with the same
// borrowed-string lookups as Map.
type Set struct {
	m *Map[struct{}]
}

// NewSet returns an empty Set seeded like NewMap.
func NewSet() *Set {
	return &Set{m: NewMap[struct{}]()}
}

// Add inserts key. Adding a case-insensitively equal key again is a
// no-op that keeps the first spelling.
func (s *Set) Add(key UniCase) {
	s.m.Set(key, struct{}{})
}

// Contains reports whether a case-insensitively equal key is present.
// The lookup performs no allocation.
func (s *Set) Contains(key string) bool { return s.m.Contains(key) }

// Delete removes key and reports whether it was present.
func (s *Set) Delete(key string) bool { return s.m.Delete(key) }

// Len returns the number of keys.
func (s *Set) Len() int { return s.m.Len() }

// Range calls fn for every key until fn returns false.
func (s *Set) Range(fn func(key UniCase) bool) {
	s.m.Range(func(key UniCase, _ struct{}) bool { return fn(key) })
}
