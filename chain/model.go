// SPDX-License-Identifier: MIT
// Package: chainable/chain
//
// model.go — the canonical Model configured by Decorator.

package chain

// Model is an insertion-ordered attribute bag plus an accumulating tag list.
// It never references the builder that configures it. The zero value is ready
// to use; a nil *Model is not.
type Model struct {
	keys  []string       // insertion order of live keys
	attrs map[string]any // key → value
	tags  []string       // accumulated by Decorator.Tag
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{attrs: make(map[string]any)}
}

// Set stores value under key. Setting an existing key overwrites it in place
// and keeps its original position.
// Complexity: O(1) amortized.
func (m *Model) Set(key string, value any) {
	if m.attrs == nil {
		m.attrs = make(map[string]any)
	}
	if _, ok := m.attrs[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.attrs[key] = value
}

// Get returns the value stored under key.
func (m *Model) Get(key string) (any, bool) {
	v, ok := m.attrs[key]
	return v, ok
}

// Delete removes key and reports whether it was present.
// Complexity: O(n) in the number of keys.
func (m *Model) Delete(key string) bool {
	if _, ok := m.attrs[key]; !ok {
		return false
	}
	delete(m.attrs, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}

	return true
}

// Keys returns a copy of the live keys in insertion order.
func (m *Model) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of stored attributes.
func (m *Model) Len() int {
	return len(m.keys)
}

// Tags returns a copy of the accumulated tags in call order.
func (m *Model) Tags() []string {
	out := make([]string, len(m.tags))
	copy(out, m.tags)
	return out
}
