// SPDX-License-Identifier: MIT
// Package: chainable/form
//
// options.go — functional options for Encode/Load.
//
// Contract:
//   • Options resolve into a value-typed encodeConfig; last wins.
//   • Option constructors panic on meaningless input; Encode/Load never panic.

package form

// Deterministic defaults.
const (
	defaultIndent  = 2        // spaces per YAML nesting level
	defaultRootKey = "fields" // top-level key holding the field list
)

// encodeConfig aggregates the codec knobs.
type encodeConfig struct {
	indent  int
	rootKey string
}

// EncodeOption customizes Encode and Load.
type EncodeOption func(*encodeConfig)

// WithIndent sets the YAML indentation. Panics if spaces < 1.
func WithIndent(spaces int) EncodeOption {
	if spaces < 1 {
		panic("form: WithIndent(spaces<1)")
	}
	return func(c *encodeConfig) { c.indent = spaces }
}

// WithRootKey sets the top-level key of the document. Panics on "".
func WithRootKey(key string) EncodeOption {
	if key == "" {
		panic("form: WithRootKey(\"\")")
	}
	return func(c *encodeConfig) { c.rootKey = key }
}

func newEncodeConfig(opts ...EncodeOption) encodeConfig {
	cfg := encodeConfig{indent: defaultIndent, rootKey: defaultRootKey}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
