package datastructure

import (
	"fmt"
	"math"
)

type Index uint32

const INVALID_INDEX Index = math.MaxUint32

// CompactEdge is a directed edge between two dense node ids. weight is 1 unless
// the graph was read from a weighted file.
type CompactEdge struct {
	u      Index
	v      Index
	weight int
}

func NewCompactEdge(u, v Index) CompactEdge {
	return CompactEdge{u: u, v: v, weight: 1}
}

func NewWeightedCompactEdge(u, v Index, weight int) CompactEdge {
	return CompactEdge{u: u, v: v, weight: weight}
}

func (e CompactEdge) GetTail() Index {
	return e.u
}

func (e CompactEdge) GetHead() Index {
	return e.v
}

func (e CompactEdge) GetWeight() int {
	return e.weight
}

// CompactGraph is the engine-facing graph: nodes 0..n-1 and directed edges
// between them, in the order they were given.
type CompactGraph struct {
	nodeIDs []Index
	edges   []CompactEdge
}

// NewCompactGraph checks that nodeIDs is exactly 0..n-1 and that every edge
// endpoint lies in that range.
func NewCompactGraph(nodeIDs []Index, edges []CompactEdge) (*CompactGraph, error) {
	n := len(nodeIDs)
	for i, id := range nodeIDs {
		if id != Index(i) {
			return nil, fmt.Errorf("%w: node id %d at position %d", ErrIndexOutOfRange, id, i)
		}
	}
	for eId, e := range edges {
		if int(e.u) >= n || int(e.v) >= n {
			return nil, fmt.Errorf("%w: edge %d (%d, %d) with %d nodes", ErrIndexOutOfRange, eId, e.u, e.v, n)
		}
		if e.weight < 0 {
			return nil, fmt.Errorf("%w: edge %d has negative weight %d", ErrMalformedGraphFile, eId, e.weight)
		}
	}

	ids := make([]Index, n)
	copy(ids, nodeIDs)
	es := make([]CompactEdge, len(edges))
	copy(es, edges)
	return &CompactGraph{nodeIDs: ids, edges: es}, nil
}

// NewCompactGraphWithNodes is NewCompactGraph with node ids 0..n-1 generated.
func NewCompactGraphWithNodes(n int, edges []CompactEdge) (*CompactGraph, error) {
	return NewCompactGraph(NodeRange(n), edges)
}

func NodeRange(n int) []Index {
	ids := make([]Index, n)
	for i := range ids {
		ids[i] = Index(i)
	}
	return ids
}

func (g *CompactGraph) NumberOfVertices() int {
	return len(g.nodeIDs)
}

func (g *CompactGraph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *CompactGraph) GetNodeIDs() []Index {
	ids := make([]Index, len(g.nodeIDs))
	copy(ids, g.nodeIDs)
	return ids
}

func (g *CompactGraph) GetEdges() []CompactEdge {
	es := make([]CompactEdge, len(g.edges))
	copy(es, g.edges)
	return es
}

func (g *CompactGraph) GetEdge(eId int) CompactEdge {
	return g.edges[eId]
}

func (g *CompactGraph) ForEachEdge(handle func(e CompactEdge, eId int)) {
	for eId, e := range g.edges {
		handle(e, eId)
	}
}

func (g *CompactGraph) TotalWeight() int {
	total := 0
	for _, e := range g.edges {
		total += e.weight
	}
	return total
}
