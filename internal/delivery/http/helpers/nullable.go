package helpers

import (
	"bytes"
	"encoding/json"
)

// Nullable tells an omitted JSON field apart from an explicit null.
type Nullable[T any] struct {
	Value T
	// Set is true when the field appeared in the body, null included.
	Set bool
	// Null is true when the field was sent as null.
	Null bool
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		n.Value = zero
		n.Null = true
		return nil
	}
	n.Null = false
	return json.Unmarshal(b, &n.Value)
}

// Ptr returns the value when one was sent, and nil when the field was omitted or null.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || n.Null {
		return nil
	}
	v := n.Value
	return &v
}

// Cleared reports whether the field was sent as null.
func (n Nullable[T]) Cleared() bool {
	return n.Set && n.Null
}
