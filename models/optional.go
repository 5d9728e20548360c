package models

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Optional tracks whether a payload field was present, and whether it was
// explicitly null. The zero value means "absent".
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null Optional
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns a present Optional carrying JSON null
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether the field carries a non-null value
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// Ptr returns nil for absent or null fields
func (o Optional[T]) Ptr() *T {
	if !o.Present() {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON is only called for keys present in the document, null included
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON writes null for absent or null fields
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalYAML lets seed files use the same input type as the API.
// yaml.v3 does not call this for null nodes, so those stay absent.
func (o *Optional[T]) UnmarshalYAML(value *yaml.Node) error {
	o.Set = true
	o.Null = false
	return value.Decode(&o.Value)
}
