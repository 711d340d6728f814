package datastructure

import (
	"container/list"
	"sort"
)

// ConnectedComponents returns the weakly connected components of g, i.e. edge
// direction is ignored. Components are ordered by their smallest node id and the
// ids inside a component are sorted ascending.
func ConnectedComponents(g *CompactGraph) [][]Index {
	n := g.NumberOfVertices()
	adj := make([][]Index, n)
	g.ForEachEdge(func(e CompactEdge, _ int) {
		if e.u == e.v {
			return
		}
		adj[e.u] = append(adj[e.u], e.v)
		adj[e.v] = append(adj[e.v], e.u)
	})

	visited := make([]bool, n)
	components := make([][]Index, 0)

	for s := Index(0); s < Index(n); s++ {
		if visited[s] {
			continue
		}
		component := make([]Index, 0, 1)
		queue := list.New()
		queue.PushBack(s)
		visited[s] = true

		for queue.Len() > 0 {
			u := queue.Remove(queue.Front()).(Index)
			component = append(component, u)
			for _, v := range adj[u] {
				if !visited[v] {
					visited[v] = true
					queue.PushBack(v)
				}
			}
		}

		sort.Slice(component, func(i, j int) bool {
			return component[i] < component[j]
		})
		components = append(components, component)
	}

	return components
}
