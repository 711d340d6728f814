package viecut

import (
	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/util"
)

type MinCut struct {
	flags                  []bool // true if the vertex is on the source side (partition one), else partition two
	numNodesInPartitionTwo int
	minCut                 int
}

func NewMinCut(numberOfVertices int) *MinCut {
	return &MinCut{
		flags: make([]bool, numberOfVertices),
	}
}

// newMinCutFromSide builds a cut whose partition one is side.
func newMinCutFromSide(numberOfVertices int, side []da.Index, value int) *MinCut {
	mc := NewMinCut(numberOfVertices)
	for _, v := range side {
		mc.flags[v] = true
	}
	mc.numNodesInPartitionTwo = numberOfVertices - len(side)
	mc.minCut = value
	return mc
}

func (mc *MinCut) SetFlag(u da.Index, flag bool) {
	mc.flags[u] = flag
}

func (mc *MinCut) GetFlag(u da.Index) bool {
	return mc.flags[u]
}

func (mc *MinCut) GetNumNodesInPartitionTwo() int {
	return mc.numNodesInPartitionTwo
}

func (mc *MinCut) incrementNumNodesInPartitionTwo() {
	mc.numNodesInPartitionTwo++
}

func (mc *MinCut) GetMinCut() int {
	return mc.minCut
}

func (mc *MinCut) setMinCut(maxflow int) {
	mc.minCut = maxflow
}

func (mc *MinCut) NumberOfVertices() int {
	return len(mc.flags)
}

// balanceDelta is |n - 2*|partition two||, zero for a perfectly balanced cut.
func (mc *MinCut) balanceDelta() int {
	return util.AbsInt(len(mc.flags) - 2*mc.numNodesInPartitionTwo)
}

// betterThan prefers the smaller cut, then, when balanced is set, the more
// balanced one.
func (mc *MinCut) betterThan(other *MinCut, balanced bool) bool {
	if other == nil {
		return true
	}
	if mc.minCut != other.minCut {
		return mc.minCut < other.minCut
	}
	return balanced && mc.balanceDelta() < other.balanceDelta()
}

// partitions splits the vertices into heavy (larger side) and light (smaller
// side), both ascending. On a tie the side holding vertex 0 is heavy.
func (mc *MinCut) partitions() ([]da.Index, []da.Index) {
	one := make([]da.Index, 0, len(mc.flags)-mc.numNodesInPartitionTwo)
	two := make([]da.Index, 0, mc.numNodesInPartitionTwo)
	for v, flag := range mc.flags {
		if flag {
			one = append(one, da.Index(v))
		} else {
			two = append(two, da.Index(v))
		}
	}

	switch {
	case len(one) > len(two):
		return one, two
	case len(two) > len(one):
		return two, one
	case len(mc.flags) > 0 && mc.flags[0]:
		return one, two
	default:
		return two, one
	}
}
