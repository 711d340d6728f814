package datastructure

import "sort"

// UndirectedEdge is an unordered node pair {u, v} with u < v.
type UndirectedEdge struct {
	u      Index
	v      Index
	weight int
}

func (e UndirectedEdge) GetU() Index {
	return e.u
}

func (e UndirectedEdge) GetV() Index {
	return e.v
}

func (e UndirectedEdge) GetWeight() int {
	return e.weight
}

/*
CollapseUndirected turns the directed edge list of g into unordered pairs. The
weight of {u, v} is max(w(u->v), w(v->u)) where w sums the weights of repeated
arcs, so an undirected edge entered in both directions counts once while a
repeated arc keeps its multiplicity. Self-loops never cross a cut and are
dropped. The result is sorted by (u, v).
*/
func CollapseUndirected(g *CompactGraph) []UndirectedEdge {
	type arc struct {
		u, v Index
	}
	arcWeight := make(map[arc]int, g.NumberOfEdges())
	g.ForEachEdge(func(e CompactEdge, _ int) {
		if e.u == e.v {
			return
		}
		arcWeight[arc{e.u, e.v}] += e.weight
	})

	pairs := make(map[arc]int, len(arcWeight))
	for a, w := range arcWeight {
		key := a
		if key.u > key.v {
			key.u, key.v = key.v, key.u
		}
		if w > pairs[key] {
			pairs[key] = w
		}
	}

	undirected := make([]UndirectedEdge, 0, len(pairs))
	for key, w := range pairs {
		if w == 0 {
			continue
		}
		undirected = append(undirected, UndirectedEdge{u: key.u, v: key.v, weight: w})
	}
	sort.Slice(undirected, func(i, j int) bool {
		if undirected[i].u != undirected[j].u {
			return undirected[i].u < undirected[j].u
		}
		return undirected[i].v < undirected[j].v
	})
	return undirected
}

// CutWeight sums the collapsed weight of every edge with exactly one endpoint in side.
func CutWeight(g *CompactGraph, side []Index) int {
	inSide := make([]bool, g.NumberOfVertices())
	for _, v := range side {
		inSide[v] = true
	}
	cut := 0
	for _, e := range CollapseUndirected(g) {
		if inSide[e.u] != inSide[e.v] {
			cut += e.weight
		}
	}
	return cut
}
