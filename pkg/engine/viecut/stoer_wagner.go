package viecut

import (
	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/engine"
)

// contractionGraph is the undirected weighted graph contracted by the maximum
// adjacency phases. Every active supervertex remembers the original vertices
// merged into it.
type contractionGraph struct {
	adj     []map[da.Index]int
	members [][]da.Index
	active  []da.Index
	total   int
}

func newContractionGraph(g *da.CompactGraph) *contractionGraph {
	n := g.NumberOfVertices()
	cg := &contractionGraph{
		adj:     make([]map[da.Index]int, n),
		members: make([][]da.Index, n),
		active:  da.NodeRange(n),
	}
	for v := 0; v < n; v++ {
		cg.adj[v] = make(map[da.Index]int)
		cg.members[v] = []da.Index{da.Index(v)}
	}
	for _, e := range da.CollapseUndirected(g) {
		cg.adj[e.GetU()][e.GetV()] += e.GetWeight()
		cg.adj[e.GetV()][e.GetU()] += e.GetWeight()
		cg.total += e.GetWeight()
	}
	return cg
}

// merge contracts t into s.
func (cg *contractionGraph) merge(s, t da.Index) {
	for x, w := range cg.adj[t] {
		delete(cg.adj[x], t)
		if x == s {
			continue
		}
		cg.adj[s][x] += w
		cg.adj[x][s] += w
	}
	cg.adj[t] = nil
	cg.members[s] = append(cg.members[s], cg.members[t]...)
	cg.members[t] = nil

	for i, v := range cg.active {
		if v == t {
			cg.active = append(cg.active[:i], cg.active[i+1:]...)
			break
		}
	}
}

/*
maximumAdjacencyPhase orders the active supervertices by maximum adjacency
(Nagamochi, Ibaraki / Stoer, Wagner) and returns the last two vertices of the
order and the cut-of-the-phase, the connectivity of the last vertex to all
others.
*/
func (cg *contractionGraph) maximumAdjacencyPhase(queueImpl engine.QueueImpl) (da.Index, da.Index, int, error) {
	pq, err := newMaxPriorityQueue(queueImpl, len(cg.adj), cg.total)
	if err != nil {
		return 0, 0, 0, err
	}
	key := make(map[da.Index]int, len(cg.active))
	for _, v := range cg.active {
		pq.Insert(v, 0)
		key[v] = 0
	}

	scanned := make(map[da.Index]bool, len(cg.active))
	s, t := da.INVALID_INDEX, da.INVALID_INDEX
	cutOfPhase := 0
	for !pq.IsEmpty() {
		u, k := pq.ExtractMax()
		scanned[u] = true
		s, t = t, u
		cutOfPhase = k

		for x, w := range cg.adj[u] {
			if scanned[x] {
				continue
			}
			key[x] += w
			pq.IncreaseKey(x, key[x])
		}
	}
	return s, t, cutOfPhase, nil
}

// stoerWagner computes a global minimum cut. With balanced set, phases of equal
// value are compared by balance and the most balanced one wins.
func stoerWagner(g *da.CompactGraph, queueImpl engine.QueueImpl, balanced bool) (*MinCut, error) {
	n := g.NumberOfVertices()
	if n < 2 {
		return newMinCutFromSide(n, da.NodeRange(n), 0), nil
	}

	cg := newContractionGraph(g)
	var best *MinCut
	for len(cg.active) > 1 {
		s, t, cutOfPhase, err := cg.maximumAdjacencyPhase(queueImpl)
		if err != nil {
			return nil, err
		}

		candidate := newMinCutFromSide(n, cg.members[t], cutOfPhase)
		if candidate.betterThan(best, balanced) {
			best = candidate
		}
		cg.merge(s, t)
	}
	return best, nil
}
