package jsonval

import (
	"strconv"
	"strings"
)

// Compare orders two numeric Values. The integer/integer path uses a
// pure integer comparison; any path touching a Double promotes both
// sides to float64 and compares ordered, never attempting arithmetic
// that could overflow int64. ok is false if either value is not
// numeric.
func Compare(a, b Value) (cmp int, ok bool) {
	if a.kind == KindInteger && b.kind == KindInteger {
		switch {
		case a.i < b.i:
			return -1, true
		case a.i > b.i:
			return 1, true
		default:
			return 0, true
		}
	}
	af, aok := a.AsFloat64()
	bf, bok := b.AsFloat64()
	if !aok || !bok {
		return 0, false
	}
	switch {
	case af < bf:
		return -1, true
	case af > bf:
		return 1, true
	default:
		return 0, true
	}
}

// NumberString renders a numeric Value as a locale-independent decimal
// string. Integers render without a decimal point; Doubles always
// include one (appending ".0" when the value is whole) so that
// re-parsing the string yields a Double, not an Integer.
func NumberString(v Value) string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return ""
	}
}
