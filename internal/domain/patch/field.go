// Package patch models partial updates: a field the caller omitted is
// different from a field the caller explicitly set to null.
package patch

import "encoding/json"

// Field is one optional value of a partial update.
//
//	omitted        -> Set == false
//	"key": null    -> Set == true, Value == nil
//	"key": <value> -> Set == true, Value != nil
type Field[T any] struct {
	Set   bool
	Value *T
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func (f Field[T]) IsNull() bool {
	return f.Set && f.Value == nil
}

// Column returns the value to store: nil becomes SQL NULL.
func (f Field[T]) Column() any {
	if f.Value == nil {
		return nil
	}
	return *f.Value
}

func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: &v}
}

func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}
