package jsonval

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Decode reads one JSON value from r using a jsontext token decoder,
// building the tagged Value tree directly off the token stream instead
// of going through a generic any-typed decode. This is what lets it
// keep Integer and Double distinct: a jsontext number token exposes its
// raw source text, and a literal containing '.', 'e' or 'E' becomes a
// Double while anything else becomes an Integer (falling back to
// Double only if the integer literal overflows int64).
func Decode(r io.Reader) (Value, error) {
	dec := jsontext.NewDecoder(r)
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	return v, nil
}

// Parse decodes a single JSON value from data.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

func decodeValue(dec *jsontext.Decoder) (Value, error) {
	switch dec.PeekKind() {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		return Str(tok.String()), nil
	case 't':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Bool(true), nil
	case 'f':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Bool(false), nil
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Null(), nil
	case '0':
		return decodeNumber(dec)
	default:
		return Value{}, fmt.Errorf("jsonval: unexpected token kind %q", dec.PeekKind())
	}
}

func decodeNumber(dec *jsontext.Decoder) (Value, error) {
	raw, err := dec.ReadValue()
	if err != nil {
		return Value{}, err
	}
	text := string(raw)
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("jsonval: invalid number %q: %w", text, err)
		}
		return Double(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// Integer literal out of int64 range; fall back to Double
		// rather than fail the whole decode.
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil {
			return Value{}, fmt.Errorf("jsonval: invalid number %q: %w", text, err)
		}
		return Double(f), nil
	}
	return Int(i), nil
}

func decodeObject(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil { // consume '{'
		return Value{}, err
	}
	obj := orderedmap.New[string, Value]()
	for dec.PeekKind() != '}' {
		keyTok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		obj.Set(keyTok.String(), val)
	}
	if _, err := dec.ReadToken(); err != nil { // consume '}'
		return Value{}, err
	}
	return Value{kind: KindObject, obj: obj}, nil
}

func decodeArray(dec *jsontext.Decoder) (Value, error) {
	if _, err := dec.ReadToken(); err != nil { // consume '['
		return Value{}, err
	}
	items := []Value{}
	for dec.PeekKind() != ']' {
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)
	}
	if _, err := dec.ReadToken(); err != nil { // consume ']'
		return Value{}, err
	}
	return Value{kind: KindArray, arr: items}, nil
}
