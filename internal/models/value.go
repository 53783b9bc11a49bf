// internal/models/value.go
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindMissing Kind = iota
	KindNull
	KindBool
	KindNumber
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
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "missing"
	}
}

// Value is a decoded JSON node. The zero Value is Missing, which is what
// lookups return for absent keys, so callers never need to nil-check parents.
type Value struct {
	kind Kind
	raw  interface{}
}

// Missing returns the value of an absent key.
func Missing() Value {
	return Value{}
}

// NewValue wraps a value produced by encoding/json (decoded with UseNumber).
// Plain Go numbers are accepted too and stored as json.Number.
func NewValue(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Value{kind: KindNull}
	case Value:
		return v
	case bool:
		return Value{kind: KindBool, raw: v}
	case json.Number:
		return Value{kind: KindNumber, raw: v}
	case float64:
		return Value{kind: KindNumber, raw: json.Number(strconv.FormatFloat(v, 'f', -1, 64))}
	case int:
		return Value{kind: KindNumber, raw: json.Number(strconv.Itoa(v))}
	case int64:
		return Value{kind: KindNumber, raw: json.Number(strconv.FormatInt(v, 10))}
	case string:
		return Value{kind: KindString, raw: v}
	case []interface{}:
		return Value{kind: KindArray, raw: v}
	case map[string]interface{}:
		return Value{kind: KindObject, raw: v}
	default:
		return Value{kind: KindString, raw: fmt.Sprint(v)}
	}
}

func (v Value) Kind() Kind { return v.kind }

// Exists reports whether the key was present, including explicit nulls.
func (v Value) Exists() bool { return v.kind != KindMissing }

// Present reports whether the value carries data: neither missing nor null.
func (v Value) Present() bool { return v.kind != KindMissing && v.kind != KindNull }

func (v Value) IsObject() bool { return v.kind == KindObject }

func (v Value) IsArray() bool { return v.kind == KindArray }

// Has reports whether v is an object holding key.
func (v Value) Has(key string) bool {
	obj, ok := v.raw.(map[string]interface{})
	if !ok || v.kind != KindObject {
		return false
	}
	_, exists := obj[key]
	return exists
}

// Field returns the member key of an object, or Missing.
func (v Value) Field(key string) Value {
	if v.kind != KindObject {
		return Missing()
	}
	raw, exists := v.raw.(map[string]interface{})[key]
	if !exists {
		return Missing()
	}
	return NewValue(raw)
}

// Items returns the elements of an array; nil for every other kind.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	arr := v.raw.([]interface{})
	out := make([]Value, len(arr))
	for i, item := range arr {
		out[i] = NewValue(item)
	}
	return out
}

// Len is the element count of an array or the key count of an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.raw.([]interface{}))
	case KindObject:
		return len(v.raw.(map[string]interface{}))
	case KindString:
		return len(v.raw.(string))
	}
	return 0
}

// Truthy follows the loose truthiness display code expects: missing, null,
// false, zero and "" are false; arrays and objects are true even when empty.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.raw.(bool)
	case KindNumber:
		f, err := v.raw.(json.Number).Float64()
		return err != nil || f != 0
	case KindString:
		return v.raw.(string) != ""
	case KindArray, KindObject:
		return true
	}
	return false
}

// String renders scalars for use as display keys. Composite values render
// as compact JSON.
func (v Value) String() string {
	switch v.kind {
	case KindMissing, KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.raw.(bool))
	case KindNumber:
		return v.raw.(json.Number).String()
	case KindString:
		return v.raw.(string)
	}
	b, err := marshalRaw(v.raw)
	if err != nil {
		return ""
	}
	return string(b)
}

// Raw returns the underlying decoded value; nil for Missing and Null.
func (v Value) Raw() interface{} {
	return v.raw
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindMissing {
		return []byte("null"), nil
	}
	return marshalRaw(v.raw)
}
