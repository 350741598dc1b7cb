package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/blossom/core"
)

// StructureSuite exercises connectivity and view helpers on shared fixtures.
type StructureSuite struct {
	suite.Suite
	g *core.Graph // two components: path 1–2–3 and edge 4–6, isolated 5
}

// SetupTest rebuilds the fixture before each test.
func (s *StructureSuite) SetupTest() {
	s.g = core.NewGraph(6)
	s.Require().NoError(s.g.AddEdge(1, 2))
	s.Require().NoError(s.g.AddEdge(2, 3))
	s.Require().NoError(s.g.AddEdge(4, 6))
}

// TestConnected covers connected, disconnected and empty graphs.
func (s *StructureSuite) TestConnected() {
	s.False(s.g.Connected())
	s.True(core.NewGraph(0).Connected(), "empty graph is vacuously connected")
	s.True(core.NewGraph(1).Connected())

	s.Require().NoError(s.g.AddEdge(3, 4))
	s.Require().NoError(s.g.AddEdge(6, 5))
	s.True(s.g.Connected())
}

// TestComponents checks member sorting and component ordering.
func (s *StructureSuite) TestComponents() {
	s.Equal([][]int{{1, 2, 3}, {4, 6}, {5}}, s.g.Components())
	s.Nil(core.NewGraph(0).Components())
}

// TestClone verifies the copy is deep.
func (s *StructureSuite) TestClone() {
	c := s.g.Clone()
	s.Equal(s.g.Edges(), c.Edges())
	s.Equal(s.g.VertexCount(), c.VertexCount())

	s.Require().NoError(c.AddEdge(1, 5))
	s.False(s.g.HasEdge(1, 5), "mutating the clone leaks into the source")
	s.Equal(3, s.g.EdgeCount())
	s.Equal(4, c.EdgeCount())
}

// TestInducedSubgraph checks relabeling and edge filtering.
func (s *StructureSuite) TestInducedSubgraph() {
	sub, global, err := core.InducedSubgraph(s.g, []int{3, 2, 6})
	s.Require().NoError(err)
	s.Equal(3, sub.VertexCount())
	s.Equal([]int{core.Ground, 3, 2, 6}, global)
	// only 2–3 survives; locally it is 1–2
	s.Equal([]core.Edge{{U: 1, V: 2}}, sub.Edges())
	s.Equal(1, sub.EdgeCount())

	_, _, err = core.InducedSubgraph(s.g, []int{1, 9})
	s.ErrorIs(err, core.ErrVertexNotFound)
	_, _, err = core.InducedSubgraph(s.g, []int{2, 4, 2})
	s.ErrorIs(err, core.ErrDuplicateVertex)
	s.NotErrorIs(err, core.ErrMultiEdgeNotAllowed)
}

func TestStructureSuite(t *testing.T) {
	suite.Run(t, new(StructureSuite))
}

// TestInducedSubgraph_Empty keeps nothing and yields the empty graph.
func TestInducedSubgraph_Empty(t *testing.T) {
	sub, global, err := core.InducedSubgraph(core.NewGraph(3), nil)
	require.NoError(t, err)
	require.Equal(t, 0, sub.VertexCount())
	require.Equal(t, []int{core.Ground}, global)
}
