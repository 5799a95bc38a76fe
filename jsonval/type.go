package jsonval

// PrimitiveType projects a Value onto the seven JSON Schema primitive
// type names: "array", "boolean", "integer", "number", "null",
// "object", "string". Integer values report "integer", never "number" —
// the "integer is-a number" relationship lives in IsA, not here.
func PrimitiveType(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "number"
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

// PrimitiveTypes lists the seven recognised JSON Schema primitive type
// names, in the order spec.md §3 lists them.
var PrimitiveTypes = []string{"array", "boolean", "integer", "null", "number", "object", "string"}

// IsPrimitiveType reports whether name is one of the seven recognised
// primitive type names.
func IsPrimitiveType(name string) bool {
	for _, t := range PrimitiveTypes {
		if t == name {
			return true
		}
	}
	return false
}

// IsA implements the primitive-type lattice's single subtype edge:
// integer <: number. IsA(sub, sub) is always true.
func IsA(sub, super string) bool {
	if sub == super {
		return true
	}
	return super == "number" && sub == "integer"
}

// MatchesType reports whether v's instance type satisfies the named
// schema type, accounting for the integer/number subtype edge (so a
// Double value never satisfies "integer", but an Integer value
// satisfies "number").
func MatchesType(v Value, typeName string) bool {
	vt := PrimitiveType(v)
	if vt == typeName {
		return true
	}
	return typeName == "number" && vt == "integer"
}
