package chain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/keqiongpan/chainable/chain"
)

// BuilderSuite exercises Builder, Bind and New across a two-level hierarchy.
type BuilderSuite struct {
	suite.Suite
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

// TestMixedLevelsReturnLeaf checks that ops from both ancestor levels return
// *child at every step and operate on the same object.
func (s *BuilderSuite) TestMixedLevelsReturnLeaf() {
	c := chain.New[child](&record{})

	var step1 *child = c.SetValue("a")
	var step2 *child = step1.Dump()
	var step3 *child = step2.SetValue("b").Dump().SetValue("c")

	require.Same(s.T(), c, step1)
	require.Same(s.T(), c, step3)
	want := &record{Value: "c", Dumps: []string{"a", "b"}}
	if diff := cmp.Diff(want, c.Data()); diff != "" {
		s.T().Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

// TestOverwrite verifies that repeating an overwrite op keeps the last value.
func (s *BuilderSuite) TestOverwrite() {
	c := chain.New[child](&record{}).SetValue("first").SetValue("last")
	require.Equal(s.T(), "last", c.Data().Value)
}

// TestAccumulate verifies Dump twice equals the combined effect of both calls.
func (s *BuilderSuite) TestAccumulate() {
	a := chain.New[child](&record{}).SetValue("x").Dump().SetValue("y").Dump()
	require.Equal(s.T(), []string{"x", "y"}, a.Data().Dumps)
}

// TestMakeIsTypePivot verifies Make().Data() observes the same state as Data().
func (s *BuilderSuite) TestMakeIsTypePivot() {
	c := chain.New[child](&record{Value: "v"})
	require.Same(s.T(), c, c.Make())
	require.Same(s.T(), c.Data(), c.Make().Data())
}

// TestValueModel verifies Update mutates an inline value model in place and
// Data hands out a copy.
func (s *BuilderSuite) TestValueModel() {
	m := chain.New[pointMaker](point{X: 1, Y: 1})
	m.Move(2, 3).Move(1, 1)
	require.Equal(s.T(), point{X: 4, Y: 5}, m.Data())

	snapshot := m.Data()
	snapshot.X = 100
	require.Equal(s.T(), 4, m.Data().X, "Data must not alias the stored value")

	require.Equal(s.T(), point{X: 9, Y: 9}, m.At(9, 9).Data())
}

// TestNilFuncsAreNoOps verifies Apply(nil) and Update(nil) only return self.
func (s *BuilderSuite) TestNilFuncsAreNoOps() {
	c := chain.New[child](&record{Value: "keep"})
	require.Same(s.T(), c, c.Apply(nil))
	require.Equal(s.T(), "keep", c.Data().Value)

	p := chain.New[pointMaker](point{X: 7})
	require.Same(s.T(), p, p.Update(nil))
	require.Equal(s.T(), 7, p.Data().X)
}

// TestBindInPlace binds a leaf that lives inside another value.
func (s *BuilderSuite) TestBindInPlace() {
	var holder struct {
		leaf child
		rec  record
	}
	got := chain.Bind(&holder.leaf, &holder.rec)
	require.Same(s.T(), &holder.leaf, got)
	got.SetValue("in-place")
	require.Equal(s.T(), "in-place", holder.rec.Value)
	require.True(s.T(), holder.leaf.Bound())
}

// TestUnboundPanics verifies a zero-value leaf refuses to chain.
func (s *BuilderSuite) TestUnboundPanics() {
	var c child
	require.False(s.T(), c.Bound())
	err := recoverErr(func() { c.SetValue("x") })
	require.ErrorIs(s.T(), err, chain.ErrUnbound)
}

// TestRebindPanics verifies a leaf can only be bound once.
func (s *BuilderSuite) TestRebindPanics() {
	c := chain.New[child](&record{})
	err := recoverErr(func() { chain.Bind(c, &record{}) })
	require.ErrorIs(s.T(), err, chain.ErrAlreadyBound)
}

// TestNilLeafPanics verifies Bind rejects a nil leaf pointer.
func (s *BuilderSuite) TestNilLeafPanics() {
	err := recoverErr(func() { chain.Bind[child]((*child)(nil), &record{}) })
	require.ErrorIs(s.T(), err, chain.ErrNilLeaf)
}
