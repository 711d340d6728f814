package viecut

import (
	"container/list"
	"math"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/util"
)

type DinicMaxFlow struct {
	graph *da.FlowNetwork
}

func NewDinicMaxFlow(graph *da.FlowNetwork) *DinicMaxFlow {
	return &DinicMaxFlow{graph: graph}
}

func (dmf *DinicMaxFlow) bfsLevelGraph(
	source, target da.Index) bool {

	for v := 0; v < dmf.graph.NumberOfVertices(); v++ {
		dmf.graph.SetVertexLevel(da.Index(v), INVALID_LEVEL)
	}

	levelQueue := list.New()
	levelQueue.PushBack(source)
	dmf.graph.SetVertexLevel(source, 0)

	for levelQueue.Len() > 0 {
		u := levelQueue.Front().Value.(da.Index)
		levelQueue.Remove(levelQueue.Front())

		level := dmf.graph.GetVertexLevel(u) + 1
		if u == target {
			break
		}

		dmf.graph.ForEachVertexEdges(u, func(edge *da.MaxFlowEdge) {
			v := edge.GetTo()
			if edge.Residual() > 0 && dmf.graph.GetVertexLevel(v) == INVALID_LEVEL {
				dmf.graph.SetVertexLevel(v, level)
				levelQueue.PushBack(v)
			}
		})
	}
	return dmf.graph.GetVertexLevel(target) != INVALID_LEVEL
}

func (dmf *DinicMaxFlow) dfsAugmentPath(u da.Index, t da.Index, f int) int {
	if u == t || f == 0 {
		return f
	}

	for ; dmf.graph.GetLastEdgeIndex(u) < dmf.graph.GetVertexEdgesSize(u); dmf.graph.IncrementLastEdgeIndex(u) {
		j := dmf.graph.GetLastEdgeIndex(u)
		edge := dmf.graph.GetEdgeOfVertex(u, j)
		v := edge.GetTo()
		residual := edge.Residual()
		if residual <= 0 || dmf.graph.GetVertexLevel(v) != dmf.graph.GetVertexLevel(u)+1 {
			continue
		}

		if pushed := dmf.dfsAugmentPath(v, t, util.MinInt(residual, f)); pushed > 0 {
			edge.AddFlow(pushed)
			revEdge := dmf.graph.GetReversedEdgeOfVertex(u, j)
			revEdge.AddFlow(-pushed)
			return pushed
		}
	}

	return 0
}

func (dmf *DinicMaxFlow) resetCurrentEdges() {
	for i := 0; i < dmf.graph.NumberOfVertices(); i++ {
		dmf.graph.SetLastEdgeIndex(da.Index(i), 0)
	}
}

/*
ComputeMaxflowMinCut returns the minimum s-t cut whose source side is the set
of vertices reachable from s in the final residual graph.

time complexity: O(N^2 * M)
*/
func (dmf *DinicMaxFlow) ComputeMaxflowMinCut(s da.Index, t da.Index) *MinCut {
	minCut := NewMinCut(dmf.graph.NumberOfVertices())
	maxFlow := 0

	for dmf.bfsLevelGraph(s, t) {
		dmf.resetCurrentEdges()

		for {
			flow := dmf.dfsAugmentPath(s, t, math.MaxInt)
			if flow == 0 {
				break
			}
			maxFlow += flow
		}
	}
	dmf.makeMinCutFlags(minCut, maxFlow)
	return minCut
}

func (dmf *DinicMaxFlow) makeMinCutFlags(minCut *MinCut, maxflow int) {
	for u := da.Index(0); u < da.Index(dmf.graph.NumberOfVertices()); u++ {
		if dmf.graph.GetVertexLevel(u) != INVALID_LEVEL {
			minCut.SetFlag(u, true)
		} else {
			minCut.incrementNumNodesInPartitionTwo()
		}
	}
	minCut.setMinCut(maxflow)
}

// SinkSideMinCut must run after ComputeMaxflowMinCut. It returns the other
// extreme minimum s-t cut, whose partition two is every vertex that can still
// reach t in the residual graph.
func (dmf *DinicMaxFlow) SinkSideMinCut(t da.Index, maxflow int) *MinCut {
	n := dmf.graph.NumberOfVertices()
	reachesSink := make([]bool, n)
	reachesSink[t] = true

	queue := list.New()
	queue.PushBack(t)
	for queue.Len() > 0 {
		y := queue.Remove(queue.Front()).(da.Index)
		for j := 0; j < dmf.graph.GetVertexEdgesSize(y); j++ {
			x := dmf.graph.GetEdgeOfVertex(y, j).GetTo()
			// arc x -> y is the reverse of arc y -> x
			if !reachesSink[x] && dmf.graph.GetReversedEdgeOfVertex(y, j).Residual() > 0 {
				reachesSink[x] = true
				queue.PushBack(x)
			}
		}
	}

	minCut := NewMinCut(n)
	for v := 0; v < n; v++ {
		if reachesSink[v] {
			minCut.incrementNumNodesInPartitionTwo()
		} else {
			minCut.SetFlag(da.Index(v), true)
		}
	}
	minCut.setMinCut(maxflow)
	return minCut
}
