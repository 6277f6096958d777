// Package occmap implements the occurrence-multiplicity map used by the
// log-derivative lookup witness: a mapping from a folded field-element row
// value to a remaining occurrence count, keyed on the element's canonical
// 32-byte encoding and hashed with FNV-1a into collision-safe buckets
// rather than a bare map[string]int, which would silently merge distinct
// keys on any hash collision.
package occmap

import (
	"hash/fnv"

	"github.com/consensys/witness-air/field"
)

type key [32]byte

func keyOf(v field.Element) key {
	return v.Bytes()
}

func (k key) hash() uint64 {
	h := fnv.New64a()
	h.Write(k[:])

	return h.Sum64()
}

type bucket struct {
	keys   []key
	counts []int
}

// Map is the occurrence-multiplicity map: value -> remaining count.
type Map struct {
	buckets map[uint64]bucket
}

// New constructs an empty occurrence map.
func New() *Map {
	return &Map{buckets: make(map[uint64]bucket)}
}

// Add increments the occurrence count for v by one.
func (m *Map) Add(v field.Element) {
	k := keyOf(v)
	h := k.hash()
	b := m.buckets[h]

	for i, bk := range b.keys {
		if bk == k {
			b.counts[i]++
			m.buckets[h] = b

			return
		}
	}

	b.keys = append(b.keys, k)
	b.counts = append(b.counts, 1)
	m.buckets[h] = b
}

// TakeAndRemove looks up v's remaining occurrence count. If present, it
// returns (count, true) and removes the key entirely, so that any later
// lookup of the same value reports (0, false): each occurrence may only be
// claimed by one B-row. If absent, it returns (0, false) and leaves the
// map untouched.
func (m *Map) TakeAndRemove(v field.Element) (int, bool) {
	k := keyOf(v)
	h := k.hash()
	b, ok := m.buckets[h]

	if !ok {
		return 0, false
	}

	for i, bk := range b.keys {
		if bk == k {
			count := b.counts[i]
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			b.counts = append(b.counts[:i], b.counts[i+1:]...)

			if len(b.keys) == 0 {
				delete(m.buckets, h)
			} else {
				m.buckets[h] = b
			}

			return count, true
		}
	}

	return 0, false
}
