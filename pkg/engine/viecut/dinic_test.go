package viecut

import (
	"testing"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
)

func flags(mc *MinCut) []bool {
	out := make([]bool, mc.NumberOfVertices())
	for v := range out {
		out[v] = mc.GetFlag(da.Index(v))
	}
	return out
}

func TestDinicExtremeMinCuts(t *testing.T) {
	// s = 0, t = 3; {0,2} and {0,1,2} are both minimum cuts of value 4
	network := da.NewFlowNetwork(4)
	network.AddEdge(0, 1, 2)
	network.AddEdge(1, 3, 3)
	network.AddEdge(0, 2, 4)
	network.AddEdge(2, 3, 1)
	network.AddEdge(1, 2, 1)

	dn := NewDinicMaxFlow(network.Clone())
	sourceSide := dn.ComputeMaxflowMinCut(0, 3)
	assert.Equal(t, 4, sourceSide.GetMinCut())
	assert.Equal(t, []bool{true, false, true, false}, flags(sourceSide))
	assert.Equal(t, 2, sourceSide.GetNumNodesInPartitionTwo())

	sinkSide := dn.SinkSideMinCut(3, sourceSide.GetMinCut())
	assert.Equal(t, 4, sinkSide.GetMinCut())
	assert.Equal(t, []bool{true, true, true, false}, flags(sinkSide))
	assert.Equal(t, 1, sinkSide.GetNumNodesInPartitionTwo())

	// the clone keeps the original network untouched
	for v := da.Index(0); v < 4; v++ {
		network.ForEachVertexEdges(v, func(e *da.MaxFlowEdge) {
			assert.Equal(t, 0, e.GetFlow())
		})
	}
}

func TestDinicDisconnectedSink(t *testing.T) {
	network := da.NewFlowNetwork(3)
	network.AddEdge(0, 1, 5)

	dn := NewDinicMaxFlow(network)
	cut := dn.ComputeMaxflowMinCut(0, 2)
	assert.Equal(t, 0, cut.GetMinCut())
	assert.Equal(t, []bool{true, true, false}, flags(cut))
}
