package datastructure

import (
	"sort"

	"github.com/lintang-b-s/Mincutx/pkg/util"
)

/*
StronglyConnectedComponents runs Kosaraju's algorithm on the directed edges of
g. Components are ordered by their smallest node id and the ids inside a
component are sorted ascending. The condensation adjacency lists, for every
component, the components its edges lead into.
*/
func StronglyConnectedComponents(g *CompactGraph) ([][]Index, [][]Index) {
	n := g.NumberOfVertices()
	adj := make([][]Index, n)
	radj := make([][]Index, n)
	g.ForEachEdge(func(e CompactEdge, _ int) {
		adj[e.u] = append(adj[e.u], e.v)
		radj[e.v] = append(radj[e.v], e.u)
	})

	order := make([]Index, 0, n)
	visited := make([]bool, n)
	for v := Index(0); v < Index(n); v++ {
		if !visited[v] {
			dfs(v, adj, &order, visited)
		}
	}

	order = util.ReverseG(order)

	// reset visited
	visited = make([]bool, n)
	components := make([][]Index, 0)
	for _, v := range order {
		if !visited[v] {
			component := make([]Index, 0, 1)
			dfs(v, radj, &component, visited)
			sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
			components = append(components, component)
		}
	}
	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })

	sccs := make([]int, n)
	for i, component := range components {
		for _, v := range component {
			sccs[v] = i
		}
	}

	condAdj := make([][]Index, len(components))
	seen := make(map[[2]int]struct{})
	g.ForEachEdge(func(e CompactEdge, _ int) {
		from, to := sccs[e.u], sccs[e.v]
		if from == to {
			return
		}
		if _, ok := seen[[2]int{from, to}]; ok {
			return
		}
		seen[[2]int{from, to}] = struct{}{}
		condAdj[from] = append(condAdj[from], Index(to))
	})

	return components, condAdj
}

func dfs(v Index, adj [][]Index, output *[]Index, visited []bool) {
	visited[v] = true
	for _, w := range adj[v] {
		if !visited[w] {
			dfs(w, adj, output, visited)
		}
	}
	*output = append(*output, v)
}
