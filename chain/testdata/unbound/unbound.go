// Package unbound must not compile: Unbound binds Other instead of itself.
package unbound

import "github.com/keqiongpan/chainable/chain"

type Other struct {
	chain.Decorator[*Other]
}

type Unbound struct {
	chain.Decorator[*Other]
}

var _ = chain.Decorate[Unbound]()
