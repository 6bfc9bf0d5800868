// Package ambiguous must not compile: Ambiguous embeds two makers at the same
// depth, so neither bind method is promoted.
package ambiguous

import "github.com/keqiongpan/chainable/chain"

type left struct {
	chain.Decorator[*Ambiguous]
}

type right struct {
	chain.Decorator[*Ambiguous]
}

type Ambiguous struct {
	left
	right
}

var _ = chain.Decorate[Ambiguous]()
