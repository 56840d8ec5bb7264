package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgubler/BNForest/pkg/graph"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}
	return -1
}

func assertTopological(t *testing.T, d *graph.DAG, order []string) {
	t.Helper()
	assert.ElementsMatch(t, d.Nodes(), order)
	for _, e := range d.Edges() {
		assert.Less(t, position(order, e.From), position(order, e.To), "%s -> %s", e.From, e.To)
	}
}

func TestAddEdgeAddsNodes(t *testing.T) {
	d := graph.New()
	require.NoError(t, d.AddEdge("A", "B"))
	assert.Equal(t, []string{"A", "B"}, d.Nodes())
	assert.True(t, d.HasEdge("A", "B"))
	assert.False(t, d.HasEdge("B", "A"))
	assert.False(t, d.HasEdge("A", "Z"))
	assert.Equal(t, 2, d.Len())
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	d := graph.New()
	assert.ErrorIs(t, d.AddEdge("A", "A"), graph.ErrSelfLoop)
	assert.ErrorIs(t, d.AddEdge("", "A"), graph.ErrEmptyName)
	assert.ErrorIs(t, d.AddNode(""), graph.ErrEmptyName)
}

func TestPredecessorsFollowInsertionOrder(t *testing.T) {
	d := graph.New()
	for _, n := range []string{"z", "y", "x", "child"} {
		require.NoError(t, d.AddNode(n))
	}
	require.NoError(t, d.AddEdge("x", "child"))
	require.NoError(t, d.AddEdge("z", "child"))
	require.NoError(t, d.AddEdge("y", "child"))

	parents, err := d.Predecessors("child")
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x"}, parents)

	kids, err := d.Successors("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"child"}, kids)

	root, err := d.Predecessors("z")
	require.NoError(t, err)
	assert.Empty(t, root)

	_, err = d.Predecessors("nope")
	assert.ErrorIs(t, err, graph.ErrUnknownNode)
	_, err = d.Successors("nope")
	assert.ErrorIs(t, err, graph.ErrUnknownNode)
}

func TestTopologicalSortChain(t *testing.T) {
	d := graph.New()
	require.NoError(t, d.AddEdge("C", "D"))
	require.NoError(t, d.AddEdge("B", "C"))
	require.NoError(t, d.AddEdge("A", "B"))

	order, err := d.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)
}

func TestTopologicalSortDiamondAndIsolated(t *testing.T) {
	d := graph.New()
	require.NoError(t, d.AddNode("lonely"))
	require.NoError(t, d.AddEdge("A", "B"))
	require.NoError(t, d.AddEdge("A", "C"))
	require.NoError(t, d.AddEdge("B", "D"))
	require.NoError(t, d.AddEdge("C", "D"))

	order, err := d.TopologicalSort()
	require.NoError(t, err)
	assertTopological(t, d, order)
}

func TestTopologicalSortIsDeterministic(t *testing.T) {
	build := func() *graph.DAG {
		return graph.FromTiers([][]string{{"a", "b", "c"}, {"d", "e"}, {"f"}})
	}
	first, err := build().TopologicalSort()
	require.NoError(t, err)
	for range 10 {
		again, err := build().TopologicalSort()
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTopologicalSortCycle(t *testing.T) {
	d := graph.New()
	require.NoError(t, d.AddEdge("A", "B"))
	require.NoError(t, d.AddEdge("B", "C"))
	require.NoError(t, d.AddEdge("C", "A"))

	order, err := d.TopologicalSort()
	assert.Nil(t, order)
	require.ErrorIs(t, err, graph.ErrCycle)
	assert.Contains(t, err.Error(), "[A B C]")
}

func TestTopologicalSortEmpty(t *testing.T) {
	order, err := graph.New().TopologicalSort()
	require.NoError(t, err)
	assert.Empty(t, order)
}
