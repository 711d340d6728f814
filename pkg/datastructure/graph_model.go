package datastructure

// LabelEdge is a directed edge between two caller labels.
type LabelEdge[L comparable] struct {
	from L
	to   L
}

func NewLabelEdge[L comparable](from, to L) LabelEdge[L] {
	return LabelEdge[L]{from: from, to: to}
}

func (e LabelEdge[L]) GetFrom() L {
	return e.from
}

func (e LabelEdge[L]) GetTo() L {
	return e.to
}

/*
GraphModel is the caller-facing graph: an ordered sequence of unique node labels
and an ordered sequence of directed label pairs.

Edges are directed. Callers that want an undirected graph must insert both
(u, v) and (v, u), or use AddUndirectedEdge. Self-loops and duplicate edges are
stored as given; their meaning is up to the min-cut engine.

A GraphModel is not safe for concurrent use. It must not be mutated while a
mincut call on it is running.
*/
type GraphModel[L comparable] struct {
	nodes    []L
	nodeSet  map[L]struct{}
	edges    []LabelEdge[L]
	revision uint64
}

// NewGraphModel builds a model seeded with nodes and edges. The seed slices are
// copied, never aliased, and duplicate seed nodes are dropped.
func NewGraphModel[L comparable](nodes []L, edges [][2]L) *GraphModel[L] {
	gm := &GraphModel[L]{
		nodes:   make([]L, 0, len(nodes)),
		nodeSet: make(map[L]struct{}, len(nodes)),
		edges:   make([]LabelEdge[L], 0, len(edges)),
	}
	for _, n := range nodes {
		gm.AddNode(n)
	}
	for _, e := range edges {
		gm.AddEdge(e[0], e[1])
	}
	return gm
}

func NewEmptyGraphModel[L comparable]() *GraphModel[L] {
	return NewGraphModel[L](nil, nil)
}

// AddNode appends label if it is not already present.
func (gm *GraphModel[L]) AddNode(label L) {
	if gm.nodeSet == nil {
		gm.nodeSet = make(map[L]struct{})
	}
	if _, ok := gm.nodeSet[label]; ok {
		return
	}
	gm.nodeSet[label] = struct{}{}
	gm.nodes = append(gm.nodes, label)
	gm.revision++
}

// AddEdge inserts u and v as nodes if missing, then appends the directed pair (u, v).
func (gm *GraphModel[L]) AddEdge(u, v L) {
	gm.AddNode(u)
	gm.AddNode(v)
	gm.edges = append(gm.edges, NewLabelEdge(u, v))
	gm.revision++
}

// AddUndirectedEdge appends both (u, v) and (v, u).
func (gm *GraphModel[L]) AddUndirectedEdge(u, v L) {
	gm.AddEdge(u, v)
	gm.AddEdge(v, u)
}

func (gm *GraphModel[L]) HasNode(label L) bool {
	_, ok := gm.nodeSet[label]
	return ok
}

// Nodes returns a copy of the node labels in insertion order.
func (gm *GraphModel[L]) Nodes() []L {
	nodes := make([]L, len(gm.nodes))
	copy(nodes, gm.nodes)
	return nodes
}

// Edges returns a copy of the directed edges in insertion order.
func (gm *GraphModel[L]) Edges() []LabelEdge[L] {
	edges := make([]LabelEdge[L], len(gm.edges))
	copy(edges, gm.edges)
	return edges
}

func (gm *GraphModel[L]) ForEachEdge(handle func(e LabelEdge[L], eId int)) {
	for eId, e := range gm.edges {
		handle(e, eId)
	}
}

func (gm *GraphModel[L]) NumberOfVertices() int {
	return len(gm.nodes)
}

func (gm *GraphModel[L]) NumberOfEdges() int {
	return len(gm.edges)
}

// Revision changes every time the model is mutated.
func (gm *GraphModel[L]) Revision() uint64 {
	return gm.revision
}
