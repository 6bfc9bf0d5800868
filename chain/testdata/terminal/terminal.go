// Package terminal must not compile: Extended tries to extend a leaf.
package terminal

import "github.com/keqiongpan/chainable/chain"

type Extended struct {
	chain.Chainable
}

var _ = chain.Decorate[Extended]()
