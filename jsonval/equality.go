package jsonval

import "math"

// Equal implements JSON structural equality per spec.md §3.6.
//
//   - Bools compare by value; nulls always compare equal.
//   - Strings compare byte-wise (no Unicode normalisation).
//   - Integer vs Integer compares by integer value; Integer vs Double
//     (in either order) and Double vs Double both coerce to float64 and
//     compare bit-exact — no epsilon, so two independently-parsed "1.0"
//     values are equal, but two doubles one ULP apart are not.
//   - Arrays compare by length then pairwise by index.
//   - Objects compare by member count, identical key sets, and
//     pairwise-equal values by key (order does not matter).
func Equal(a, b Value) bool {
	switch {
	case a.kind == KindNull && b.kind == KindNull:
		return true
	case a.kind == KindBool && b.kind == KindBool:
		return a.b == b.b
	case a.kind == KindInteger && b.kind == KindInteger:
		return a.i == b.i
	case a.kind == KindString && b.kind == KindString:
		return a.s == b.s
	case (a.kind == KindInteger || a.kind == KindDouble) && (b.kind == KindInteger || b.kind == KindDouble):
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()
		return bitExactEqual(af, bf)
	case a.kind == KindArray && b.kind == KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case a.kind == KindObject && b.kind == KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for pair := a.obj.Oldest(); pair != nil; pair = pair.Next() {
			bv, ok := b.obj.Get(pair.Key)
			if !ok || !Equal(pair.Value, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// bitExactEqual compares two float64 values by exact bit pattern,
// except that it treats the two NaN bit patterns as never equal (JSON
// has no NaN literal, so this only matters for values constructed
// programmatically) and +0/-0 as equal, matching IEEE-754 identity.
func bitExactEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return a == b
}

// Contains reports whether any element of set is structurally equal to
// v.
func Contains(set []Value, v Value) bool {
	for _, e := range set {
		if Equal(e, v) {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first element of set structurally
// equal to v, or -1.
func IndexOf(set []Value, v Value) int {
	for i, e := range set {
		if Equal(e, v) {
			return i
		}
	}
	return -1
}
