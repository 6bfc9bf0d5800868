// Package bound is the control case for the compile checks: it must build.
package bound

import "github.com/keqiongpan/chainable/chain"

type Leaf struct {
	chain.Decorator[*Leaf]
}

var _ *Leaf = chain.Decorate[Leaf]().Attr("k", 1).Tag("t")
