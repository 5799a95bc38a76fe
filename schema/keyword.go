package schema

import "github.com/kjs-tools/draftfuzz/jsonval"

// keyword is one entry of the static keyword table described in
// spec.md §4.3: a name, an optional default literal ({}, true, false or
// 0), and up to three callbacks. Every per-keyword *.go file in this
// package appends one or more entries to keywordTable from its init
// function; dispatch.go walks the table in that registration order,
// which follows the order the package's files are initialised in (by
// file name under the go tool), so which keyword's error surfaces
// first is deterministic.
type keyword struct {
	name           string
	defaultLiteral func() jsonval.Value // nil if the keyword has no default

	validate func(s *Schema, v jsonval.Value) *MalformedError
	apply    func(s *Schema, instance jsonval.Value) *EvaluationError
	generate func(s *Schema, out *InstanceSet, gen *generation)
}

// present looks up k.name on the raw schema object, falling back to the
// synthesised default literal when absent. ok is false only when the
// keyword is both absent and has no default, meaning the keyword simply
// does not apply.
func (k keyword) present(s *Schema) (jsonval.Value, bool) {
	if v, ok := s.raw.Get(k.name); ok {
		return v, true
	}
	if k.defaultLiteral != nil {
		return k.defaultLiteral(), true
	}
	return jsonval.Null(), false
}

func defEmptyObject() jsonval.Value { return jsonval.NewObject() }
func defFalse() jsonval.Value       { return jsonval.Bool(false) }
func defZero() jsonval.Value        { return jsonval.Int(0) }

// keywordTable is the full ordered dispatch table, filled by the
// registerKeywords calls in each keyword file's init function.
var keywordTable []keyword

func registerKeywords(ks ...keyword) {
	keywordTable = append(keywordTable, ks...)
}
