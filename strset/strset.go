// Package strset implements the immutable, hash-consable finite set of
// UTF-8 strings used by the object composite generator to reason about
// property dependencies (spec.md §4.2).
//
// Every constructor and every operation returns a brand-new Set; none
// of them mutate a receiver. The teacher language this was distilled
// from (see spec.md §9 "Floating references") treats a freshly built
// set as owned-but-not-yet-retained until a caller sinks it; Go has no
// such concept; a returned Set is simply an owned value from the
// moment the constructor returns.
package strset

import "sort"

// Set is an immutable set of strings.
type Set struct {
	m map[string]struct{}
}

// Empty returns the empty set.
func Empty() Set {
	return Set{m: map[string]struct{}{}}
}

// Singleton returns a set containing exactly s.
func Singleton(s string) Set {
	return Set{m: map[string]struct{}{s: {}}}
}

// FromSlice returns a set containing every distinct element of items.
func FromSlice(items []string) Set {
	m := make(map[string]struct{}, len(items))
	for _, s := range items {
		m[s] = struct{}{}
	}
	return Set{m: m}
}

// Len reports the number of members.
func (s Set) Len() int { return len(s.m) }

// Contains reports whether v is a member of s.
func (s Set) Contains(v string) bool {
	_, ok := s.m[v]
	return ok
}

// Union returns a new set containing every member of s and other.
func (s Set) Union(other Set) Set {
	m := make(map[string]struct{}, len(s.m)+len(other.m))
	for k := range s.m {
		m[k] = struct{}{}
	}
	for k := range other.m {
		m[k] = struct{}{}
	}
	return Set{m: m}
}

// Add returns a new set containing every member of s plus v.
func (s Set) Add(v string) Set {
	return s.Union(Singleton(v))
}

// Equal reports whether s and other contain exactly the same members.
func (s Set) Equal(other Set) bool {
	if len(s.m) != len(other.m) {
		return false
	}
	for k := range s.m {
		if _, ok := other.m[k]; !ok {
			return false
		}
	}
	return true
}

// Hash returns an order-independent hash: the XOR of each member's
// string hash, so Equal sets always hash equal regardless of any
// incidental iteration order.
func (s Set) Hash() uint64 {
	var h uint64
	for k := range s.m {
		h ^= fnv1a(k)
	}
	return h
}

// ToSlice returns the members of s as a sorted slice, for deterministic
// iteration and output.
func (s Set) ToSlice() []string {
	out := make([]string, 0, len(s.m))
	for k := range s.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Closure computes the least fixed point of X → X ∪ seed ∪ ⋃_{k∈X}
// deps[k], starting from X = seed (spec.md §4.2 "union_dependencies").
// deps maps a property name to the array of property names it
// requires; entries are looked up only by key, so a schema-valued
// dependency (absent from deps) is silently ignored, per spec.md §4.2's
// note that schema dependencies are "intentionally ignored here".
func Closure(seed Set, deps map[string][]string) Set {
	x := seed
	for {
		next := x
		for _, k := range x.ToSlice() {
			if vals, ok := deps[k]; ok {
				next = next.Union(FromSlice(vals))
			}
		}
		next = next.Union(seed)
		if next.Equal(x) {
			return x
		}
		x = next
	}
}

func fnv1a(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
