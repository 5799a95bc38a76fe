// Package jsonval implements the tagged JSON value used throughout the
// engine: Null | Bool | Integer | Double | String | Array | Object, with
// structural equality, hashing and a primitive-type lattice matching
// JSON Schema's notion of "instance type".
//
// Integer and Double are kept as distinct variants on purpose: a value
// parsed from the literal "1" is an Integer, a value parsed from "1.0"
// is a Double, and the two only ever compare equal through an explicit
// bit-exact coercion (see Equal). Collapsing both into a single Go
// float64, the way most JSON libraries decode numbers, would silently
// break that distinction.
package jsonval

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind discriminates the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindDouble
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Object is the insertion-order-preserving mapping used by the Object
// variant. Keys are unique UTF-8 strings.
type Object = orderedmap.OrderedMap[string, Value]

// Value is the tagged JSON value. The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a JSON Integer value.
func Int(i int64) Value { return Value{kind: KindInteger, i: i} }

// Double returns a JSON Double value.
func Double(f float64) Value { return Value{kind: KindDouble, f: f} }

// Str returns a JSON String value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Arr returns a JSON Array value, taking ownership of items.
func Arr(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arr: items}
}

// NewObject returns an empty JSON Object value.
func NewObject() Value {
	return Value{kind: KindObject, obj: orderedmap.New[string, Value]()}
}

// ObjFromPairs builds an Object value from ordered key/value pairs.
func ObjFromPairs(pairs ...Pair) Value {
	o := orderedmap.New[string, Value](len(pairs))
	for _, p := range pairs {
		o.Set(p.Key, p.Value)
	}
	return Value{kind: KindObject, obj: o}
}

// Pair is a single member of an Object literal built with ObjFromPairs.
type Pair struct {
	Key   string
	Value Value
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsBool() bool   { return v.kind == KindBool }
func (v Value) IsInt() bool    { return v.kind == KindInteger }
func (v Value) IsDouble() bool { return v.kind == KindDouble }
func (v Value) IsNumber() bool { return v.kind == KindInteger || v.kind == KindDouble }
func (v Value) IsString() bool { return v.kind == KindString }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }

// AsBool returns the boolean payload and whether v held one.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the integer payload and whether v held one.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// AsDouble returns the double payload and whether v held one.
func (v Value) AsDouble() (float64, bool) {
	if v.kind != KindDouble {
		return 0, false
	}
	return v.f, true
}

// AsFloat64 returns any numeric value (Integer or Double) coerced to
// float64, for callers that only need magnitude, not variant.
func (v Value) AsFloat64() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.i), true
	case KindDouble:
		return v.f, true
	default:
		return 0, false
	}
}

// AsString returns the string payload and whether v held one.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsArray returns the backing slice and whether v held one. The slice
// must not be mutated by callers; treat it as read-only.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the backing ordered map and whether v held one. The
// map must not be mutated by callers; treat it as read-only.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Len returns the number of elements/members for Array and Object
// values, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	default:
		return 0
	}
}

// Get returns an object member by name, or (Null, false) if v is not
// an Object or the member is absent.
func (v Value) Get(name string) (Value, bool) {
	if v.kind != KindObject {
		return Null(), false
	}
	return v.obj.Get(name)
}

// Has reports whether v is an Object containing the named member.
func (v Value) Has(name string) bool {
	_, ok := v.Get(name)
	return ok
}

// Keys returns the member names of an Object in insertion order, or
// nil otherwise.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Clone performs a deep copy of v.
func Clone(v Value) Value {
	switch v.kind {
	case KindArray:
		out := make([]Value, len(v.arr))
		for i, e := range v.arr {
			out[i] = Clone(e)
		}
		return Value{kind: KindArray, arr: out}
	case KindObject:
		out := orderedmap.New[string, Value](v.obj.Len())
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, Clone(pair.Value))
		}
		return Value{kind: KindObject, obj: out}
	default:
		return v
	}
}

// WithSet returns a shallow clone of an Object value with name set to
// val, preserving insertion order of existing keys and appending new
// ones at the end. v must be an Object.
func WithSet(v Value, name string, val Value) Value {
	out := orderedmap.New[string, Value](v.obj.Len() + 1)
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, pair.Value)
	}
	out.Set(name, val)
	return Value{kind: KindObject, obj: out}
}

// WithDeleted returns a shallow clone of an Object value with name
// removed. v must be an Object.
func WithDeleted(v Value, name string) Value {
	out := orderedmap.New[string, Value](v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == name {
			continue
		}
		out.Set(pair.Key, pair.Value)
	}
	return Value{kind: KindObject, obj: out}
}

// WithAppended returns a shallow clone of an Array value with item
// appended. v must be an Array.
func WithAppended(v Value, item Value) Value {
	out := make([]Value, len(v.arr)+1)
	copy(out, v.arr)
	out[len(v.arr)] = item
	return Value{kind: KindArray, arr: out}
}

// WithDroppedSuffix returns a shallow clone of an Array value with the
// trailing n elements removed (n clamped to len(v.arr)). v must be an
// Array.
func WithDroppedSuffix(v Value, n int) Value {
	if n > len(v.arr) {
		n = len(v.arr)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Value, len(v.arr)-n)
	copy(out, v.arr[:len(v.arr)-n])
	return Value{kind: KindArray, arr: out}
}

// WithSetIndex returns a shallow clone of an Array value with the
// element at index i replaced by item. v must be an Array and i must
// be in range.
func WithSetIndex(v Value, i int, item Value) Value {
	out := make([]Value, len(v.arr))
	copy(out, v.arr)
	out[i] = item
	return Value{kind: KindArray, arr: out}
}
