// Package metaschema bundles the draft-04 core and hyper-schema
// meta-schema documents so the CLI drivers can print or compare against
// them without a network fetch. These documents use $ref and format,
// neither of which this module's evaluation engine implements (both
// are explicitly out of scope); they are exposed only as reference
// text, never run through schema.Load/Validate/GenerateInstances.
package metaschema

import _ "embed"

//go:embed draft-04.json
var core []byte

//go:embed draft-04-hyper.json
var hyper []byte

// Kind selects which bundled meta-schema document to load.
type Kind int

const (
	Core Kind = iota
	Hyper
)

// Bytes returns the raw JSON text of the requested meta-schema.
func Bytes(k Kind) []byte {
	switch k {
	case Hyper:
		return hyper
	default:
		return core
	}
}
