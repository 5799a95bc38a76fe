package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

// generateAllItems is the composite array generator. Because which
// sub-schema governs element i of an array interacts across items,
// additionalItems, minItems, maxItems and uniqueItems, no single
// keyword's generate callback can produce a representative sample on
// its own; items.go instead calls this once per schema (guarded by
// generation.arrayOnce) and it drives every array-shaped candidate.
//
// It proceeds in five phases: enumerate candidate lengths, cache each
// governing sub-schema's own generated instances once, enumerate which
// positions should hold a valid vs. an invalid sub-instance, emit the
// resulting arrays, and finally apply boundary mutations to a valid
// baseline array of max(minItems, 1) elements (the baseline one element
// shorter, one element longer, and with its first element duplicated
// when uniqueItems is set). Lengths one past maxItems come from the
// candidate-length enumeration, not from these mutations.
func generateAllItems(s *Schema, out *InstanceSet, gen *generation) {
	lengths := arrayCandidateLengths(s)
	subCache := cacheItemSubInstances(s, lengths)

	for _, n := range lengths {
		for pos := -1; pos < n; pos++ {
			// pos == -1: every element valid under its governing schema.
			// pos >= 0: element at pos is deliberately invalid, to probe
			// the joint items/additionalItems boundary at that position.
			arr := make([]jsonval.Value, n)
			ok := true
			for i := 0; i < n; i++ {
				cache := subCache[governingIndex(s, i)]
				var v jsonval.Value
				if i == pos {
					v, ok = cache.pickInvalid()
				} else {
					v, ok = cache.pickValid()
				}
				if !ok {
					break
				}
				arr[i] = v
			}
			if ok {
				out.Add(jsonval.Arr(arr...))
			}
		}
	}

	emitArrayBoundaryMutations(s, out, subCache)
}

// arrayCandidateLengths enumerates the lengths worth exercising: the
// empty and singleton arrays, the positional-tuple length (if any) and
// its neighbours, and the minItems/maxItems boundaries.
func arrayCandidateLengths(s *Schema) []int {
	seen := map[int]bool{}
	var out []int
	add := func(n int) {
		if n < 0 || seen[n] {
			return
		}
		seen[n] = true
		out = append(out, n)
	}
	add(0)
	add(1)
	add(2)
	if s.Items.isTuple() {
		t := len(s.Items.Tuple)
		add(t)
		add(t + 1)
		if t > 0 {
			add(t - 1)
		}
	}
	if s.MinItems > 0 {
		add(int(s.MinItems))
		add(int(s.MinItems) - 1)
	}
	if s.HasMaxItems {
		add(int(s.MaxItems))
		add(int(s.MaxItems) + 1)
	}
	return out
}

// governingIndex returns a cache key identifying which sub-schema
// governs array position i: tuple index when within a positional
// tuple, or a sentinel for "the single items schema" / "additionalItems".
func governingIndex(s *Schema, i int) int {
	if !s.Items.isTuple() {
		return -1 // single items schema governs every position
	}
	if i < len(s.Items.Tuple) {
		return i
	}
	return -2 // additionalItems governs positions past the tuple
}

func cacheItemSubInstances(s *Schema, lengths []int) map[int]*subInstanceCache {
	cache := map[int]*subInstanceCache{}
	if !s.Items.isTuple() {
		cache[-1] = partitionSubInstances(s.Items.Single)
		return cache
	}
	for i, sub := range s.Items.Tuple {
		cache[i] = partitionSubInstances(sub)
	}
	if s.AdditionalItems.isSchema() {
		cache[-2] = partitionSubInstances(s.AdditionalItems.Schema)
	} else if !s.AdditionalItems.isFalse() {
		cache[-2] = partitionSubInstances(nil)
	}
	return cache
}

func subInstances(sub *Schema) []jsonval.Value {
	if sub == nil {
		return baselineInstances()
	}
	tmp := NewInstanceSet()
	generateNode(sub, tmp, newGeneration())
	return tmp.Values()
}

// subInstanceCache holds a sub-schema's own generated candidates split
// into the valid and invalid partitions spec.md §4.5.a Phase 2 and
// §4.5.b Phase 1 require ("partition that set into valid and invalid
// by applying the sub-schema to each"), so the composite generators can
// draw a definitely-valid or definitely-invalid probe for a position
// without re-deriving the split at every call site.
type subInstanceCache struct {
	valid, invalid []jsonval.Value
}

// partitionSubInstances generates sub's own candidates and partitions
// them by sub.Validate. A nil sub stands for an unconstrained position
// (e.g. additionalItems/additionalProperties left at its draft-04
// default of true): every candidate is valid there, and none is
// invalid, since there is no constraint left to violate.
func partitionSubInstances(sub *Schema) *subInstanceCache {
	c := &subInstanceCache{}
	for _, v := range subInstances(sub) {
		if sub == nil || sub.Validate(v) == nil {
			c.valid = append(c.valid, v)
		} else {
			c.invalid = append(c.invalid, v)
		}
	}
	return c
}

// pickValid returns one definitely-valid candidate. ok is false only
// when the cache is nil (no governing sub-schema was cached for this
// position) or its valid partition is empty.
func (c *subInstanceCache) pickValid() (jsonval.Value, bool) {
	if c == nil || len(c.valid) == 0 {
		return jsonval.Value{}, false
	}
	return c.valid[0], true
}

// pickInvalid returns one definitely-invalid candidate. ok is false
// when the sub-schema accepted every generated candidate (e.g. an
// unconstrained sub-schema); callers must skip the deliberately-invalid
// probe at that position rather than fabricate one that might in fact
// be valid.
func (c *subInstanceCache) pickInvalid() (jsonval.Value, bool) {
	if c == nil || len(c.invalid) == 0 {
		return jsonval.Value{}, false
	}
	return c.invalid[0], true
}

func emitArrayBoundaryMutations(s *Schema, out *InstanceSet, subCache map[int]*subInstanceCache) {
	base := make([]jsonval.Value, 0, int(s.MinItems)+1)
	n := int(s.MinItems)
	if n == 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		v, ok := subCache[governingIndex(s, i)].pickValid()
		if !ok {
			return
		}
		base = append(base, v)
	}
	baseArr := jsonval.Arr(base...)
	out.Add(baseArr)
	out.Add(jsonval.WithDroppedSuffix(baseArr, 1))
	if v, ok := subCache[governingIndex(s, len(base))].pickValid(); ok {
		out.Add(jsonval.WithAppended(baseArr, v))
	}

	if s.UniqueItems && len(base) > 0 {
		dup := jsonval.WithAppended(baseArr, base[0])
		out.Add(dup)
	}
}
