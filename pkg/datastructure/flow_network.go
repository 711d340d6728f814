package datastructure

// MaxFlowEdge is one arc of a FlowNetwork. Arcs are stored in pairs, so the
// reverse of arc i is arc i^1.
type MaxFlowEdge struct {
	id       int
	u        Index
	v        Index
	capacity int
	flow     int
}

func NewMaxFlowEdge(id int, u, v Index, capacity int) *MaxFlowEdge {
	return &MaxFlowEdge{
		id:       id,
		u:        u,
		v:        v,
		capacity: capacity,
		flow:     0,
	}
}

func (e *MaxFlowEdge) GetID() int {
	return e.id
}

func (e *MaxFlowEdge) GetCapacity() int {
	return e.capacity
}

func (e *MaxFlowEdge) GetFlow() int {
	return e.flow
}

func (e *MaxFlowEdge) GetFrom() Index {
	return e.u
}

func (e *MaxFlowEdge) GetTo() Index {
	return e.v
}

func (e *MaxFlowEdge) AddFlow(f int) {
	e.flow += f
}

func (e *MaxFlowEdge) Residual() int {
	return e.capacity - e.flow
}

// FlowNetwork is an undirected capacitated graph with per-vertex Dinic state
// (level and current-arc pointer).
type FlowNetwork struct {
	adjacencyList [][]int
	edgeList      []*MaxFlowEdge
	level         []int
	last          []int
}

func NewFlowNetwork(numberOfVertices int) *FlowNetwork {
	adjacencyList := make([][]int, numberOfVertices)
	for i := range adjacencyList {
		adjacencyList[i] = make([]int, 0)
	}
	return &FlowNetwork{
		adjacencyList: adjacencyList,
		edgeList:      make([]*MaxFlowEdge, 0),
		level:         make([]int, numberOfVertices),
		last:          make([]int, numberOfVertices),
	}
}

func (g *FlowNetwork) NumberOfVertices() int {
	return len(g.adjacencyList)
}

func (g *FlowNetwork) NumberOfArcs() int {
	return len(g.edgeList)
}

// AddEdge adds the undirected edge {u, v} as two arcs of the given capacity.
// Self-loops are dropped.
func (g *FlowNetwork) AddEdge(u, v Index, capacity int) {
	if u == v {
		return
	}

	edge := NewMaxFlowEdge(len(g.edgeList), u, v, capacity)
	g.edgeList = append(g.edgeList, edge)
	g.adjacencyList[u] = append(g.adjacencyList[u], len(g.edgeList)-1)

	reverseEdge := NewMaxFlowEdge(len(g.edgeList), v, u, capacity)
	g.edgeList = append(g.edgeList, reverseEdge)
	g.adjacencyList[v] = append(g.adjacencyList[v], len(g.edgeList)-1)
}

func (g *FlowNetwork) GetVertexLevel(u Index) int {
	return g.level[u]
}

func (g *FlowNetwork) SetVertexLevel(u Index, level int) {
	g.level[u] = level
}

func (g *FlowNetwork) GetLastEdgeIndex(u Index) int {
	return g.last[u]
}

func (g *FlowNetwork) SetLastEdgeIndex(u Index, idx int) {
	g.last[u] = idx
}

func (g *FlowNetwork) IncrementLastEdgeIndex(u Index) {
	g.last[u]++
}

func (g *FlowNetwork) GetVertexEdgesSize(u Index) int {
	return len(g.adjacencyList[u])
}

func (g *FlowNetwork) GetEdgeOfVertex(u Index, idx int) *MaxFlowEdge {
	edgeIndex := g.adjacencyList[u][idx]
	return g.edgeList[edgeIndex]
}

func (g *FlowNetwork) GetReversedEdgeOfVertex(u Index, idx int) *MaxFlowEdge {
	edgeIndex := g.adjacencyList[u][idx] ^ 1
	return g.edgeList[edgeIndex]
}

func (g *FlowNetwork) ForEachVertexEdges(u Index, handle func(e *MaxFlowEdge)) {
	for _, edgeIdx := range g.adjacencyList[u] {
		handle(g.edgeList[edgeIdx])
	}
}

// ResetFlow zeroes every arc's flow and the Dinic state.
func (g *FlowNetwork) ResetFlow() {
	for _, edge := range g.edgeList {
		edge.flow = 0
	}
	for i := range g.level {
		g.level[i] = 0
		g.last[i] = 0
	}
}

// Clone copies the topology and capacities with zero flow.
func (g *FlowNetwork) Clone() *FlowNetwork {
	newG := NewFlowNetwork(g.NumberOfVertices())

	for i, adj := range g.adjacencyList {
		newAdj := make([]int, len(adj))
		copy(newAdj, adj)
		newG.adjacencyList[i] = newAdj
	}
	newG.edgeList = make([]*MaxFlowEdge, len(g.edgeList))
	for i, e := range g.edgeList {
		newG.edgeList[i] = NewMaxFlowEdge(e.id, e.u, e.v, e.capacity)
	}

	return newG
}
