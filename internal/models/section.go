// internal/models/section.go
package models

import (
	"bytes"
	"encoding/json"
)

// Section is an insertion-ordered label -> value map. Setting an existing
// label replaces its value and keeps the original position.
type Section struct {
	keys   []string
	values map[string]interface{}
}

// DisplayDocument is the top-level section keyed by section title.
type DisplayDocument = Section

func NewSection() *Section {
	return &Section{values: make(map[string]interface{})}
}

func (s *Section) Set(label string, value interface{}) {
	if _, exists := s.values[label]; !exists {
		s.keys = append(s.keys, label)
	}
	s.values[label] = value
}

// Put stores v under label when it carries data and reports whether it did.
// Missing and null values are omitted.
func (s *Section) Put(label string, v Value) bool {
	if !v.Present() {
		return false
	}
	s.Set(label, v.Raw())
	return true
}

func (s *Section) Get(label string) (interface{}, bool) {
	v, ok := s.values[label]
	return v, ok
}

// Child returns the nested section stored under label, or nil.
func (s *Section) Child(label string) *Section {
	child, _ := s.values[label].(*Section)
	return child
}

func (s *Section) Has(label string) bool {
	_, ok := s.values[label]
	return ok
}

func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Section) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

func (s *Section) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Section) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalRaw(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := marshalRaw(s.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalRaw encodes v without HTML escaping; display text is written as is.
func marshalRaw(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
