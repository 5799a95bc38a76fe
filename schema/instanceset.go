package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

// InstanceSet is the accumulating deduplicated container spec.md §2
// describes generate_instances pushing candidates into, keyed by JSON
// structural equality (jsonval.Equal), not Go value identity. Insertion
// order is preserved internally purely so tests and the CLI get
// deterministic output; spec.md §5 explicitly does not require any
// particular order from the underlying container.
type InstanceSet struct {
	order []jsonval.Value
	index map[uint64][]int
}

// NewInstanceSet returns an empty InstanceSet.
func NewInstanceSet() *InstanceSet {
	return &InstanceSet{index: make(map[uint64][]int)}
}

// Add inserts v if no structurally-equal value is already present,
// reporting whether v was newly added.
func (s *InstanceSet) Add(v jsonval.Value) bool {
	h := jsonval.Hash(v)
	for _, idx := range s.index[h] {
		if jsonval.Equal(s.order[idx], v) {
			return false
		}
	}
	s.index[h] = append(s.index[h], len(s.order))
	s.order = append(s.order, v)
	return true
}

// AddAll inserts every element of vs.
func (s *InstanceSet) AddAll(vs []jsonval.Value) {
	for _, v := range vs {
		s.Add(v)
	}
}

// Values returns the accumulated values in insertion order.
func (s *InstanceSet) Values() []jsonval.Value { return s.order }

// Len reports the number of distinct values accumulated so far.
func (s *InstanceSet) Len() int { return len(s.order) }
