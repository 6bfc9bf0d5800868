package chain_test

import "github.com/keqiongpan/chainable/chain"

// record is the data of a two-level test hierarchy.
type record struct {
	Value string
	Dumps []string
}

// baseMaker declares SetValue with S still generic.
type baseMaker[S any] struct {
	chain.Builder[S, *record]
}

func (m *baseMaker[S]) SetValue(v string) S {
	return m.Apply(func(r *record) { r.Value = v })
}

// childMaker adds Dump, which accumulates the current value.
type childMaker[S any] struct {
	baseMaker[S]
}

func (m *childMaker[S]) Dump() S {
	return m.Apply(func(r *record) { r.Dumps = append(r.Dumps, r.Value) })
}

// child is the leaf that collapses S for both levels.
type child struct {
	childMaker[*child]
}

// point is a value-like model mutated through Update.
type point struct{ X, Y int }

type pointMaker struct {
	chain.Builder[*pointMaker, point]
}

func (m *pointMaker) Move(dx, dy int) *pointMaker {
	return m.Update(func(p *point) { p.X += dx; p.Y += dy })
}

func (m *pointMaker) At(x, y int) *pointMaker {
	return m.Update(func(p *point) { *p = point{X: x, Y: y} })
}

// recoverErr runs fn and returns the error it panicked with, if any.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()

	return nil
}
