package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphModelAddEdgeAutoInsertsOnce(t *testing.T) {
	gm := NewEmptyGraphModel[string]()
	gm.AddEdge("a", "b")
	gm.AddEdge("b", "c")
	gm.AddEdge("a", "c")
	gm.AddEdge("c", "a")

	assert.Equal(t, []string{"a", "b", "c"}, gm.Nodes())
	assert.Equal(t, 4, gm.NumberOfEdges())
	assert.Equal(t, NewLabelEdge("b", "c"), gm.Edges()[1])
}

func TestGraphModelAddNodeIdempotent(t *testing.T) {
	gm := NewEmptyGraphModel[int]()
	gm.AddNode(3)
	gm.AddNode(1)
	rev := gm.Revision()
	gm.AddNode(3)

	assert.Equal(t, []int{3, 1}, gm.Nodes())
	assert.Equal(t, rev, gm.Revision(), "re-adding a node must not count as a mutation")
	assert.True(t, gm.HasNode(1))
	assert.False(t, gm.HasNode(2))
}

func TestGraphModelKeepsSelfLoopsAndDuplicates(t *testing.T) {
	gm := NewEmptyGraphModel[string]()
	gm.AddEdge("x", "x")
	gm.AddEdge("x", "y")
	gm.AddEdge("x", "y")

	assert.Equal(t, []string{"x", "y"}, gm.Nodes())
	assert.Equal(t, 3, gm.NumberOfEdges())
}

func TestGraphModelUndirectedEdge(t *testing.T) {
	gm := NewEmptyGraphModel[string]()
	gm.AddUndirectedEdge("u", "v")

	assert.Equal(t, []LabelEdge[string]{NewLabelEdge("u", "v"), NewLabelEdge("v", "u")}, gm.Edges())
}

func TestNewGraphModelDoesNotShareContainers(t *testing.T) {
	seedNodes := []string{"a", "b", "a"}
	seedEdges := [][2]string{{"a", "c"}}

	g1 := NewGraphModel(seedNodes, seedEdges)
	g2 := NewGraphModel(seedNodes, seedEdges)
	g1.AddNode("z")

	assert.Equal(t, []string{"a", "b", "c", "z"}, g1.Nodes())
	assert.Equal(t, []string{"a", "b", "c"}, g2.Nodes())
	assert.Equal(t, []string{"a", "b", "a"}, seedNodes)

	e1 := NewEmptyGraphModel[string]()
	e2 := NewEmptyGraphModel[string]()
	e1.AddEdge("p", "q")
	assert.Equal(t, 0, e2.NumberOfVertices())
	assert.Equal(t, 0, e2.NumberOfEdges())
}

func TestGraphModelZeroValueUsable(t *testing.T) {
	var gm GraphModel[string]
	gm.AddEdge("a", "b")
	assert.Equal(t, []string{"a", "b"}, gm.Nodes())
}

func TestGraphModelNodesReturnsCopy(t *testing.T) {
	gm := NewGraphModel([]string{"a", "b"}, nil)
	nodes := gm.Nodes()
	nodes[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, gm.Nodes())
}
