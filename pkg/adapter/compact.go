// Package adapter turns a label-space GraphModel into the dense CompactGraph the
// min-cut engine works on.
package adapter

import (
	"fmt"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
)

// Compact rebuilds a LabelRegistry from the model's current node sequence and
// maps every model edge through it, preserving edge order. The registry is
// never cached, so a mutated model always gets a consistent mapping.
func Compact[L comparable](model *da.GraphModel[L]) (*da.CompactGraph, *da.LabelRegistry[L], error) {
	registry, err := da.BuildLabelRegistryFromModel(model)
	if err != nil {
		return nil, nil, err
	}

	edges := make([]da.CompactEdge, 0, model.NumberOfEdges())
	var edgeErr error
	model.ForEachEdge(func(e da.LabelEdge[L], eId int) {
		if edgeErr != nil {
			return
		}
		var ce da.CompactEdge
		ce, edgeErr = compactEdge(registry, e.GetFrom(), e.GetTo(), eId)
		edges = append(edges, ce)
	})
	if edgeErr != nil {
		return nil, nil, edgeErr
	}

	graph, err := da.NewCompactGraphWithNodes(registry.Len(), edges)
	if err != nil {
		return nil, nil, err
	}
	return graph, registry, nil
}

// CompactEdges is Compact over raw node and edge slices that did not go through
// GraphModel.AddEdge, so an edge endpoint may be missing from nodes. That case
// fails with ErrUnknownLabel.
func CompactEdges[L comparable](nodes []L, edges [][2]L) (*da.CompactGraph, *da.LabelRegistry[L], error) {
	registry, err := da.BuildLabelRegistry(nodes)
	if err != nil {
		return nil, nil, err
	}

	compactEdges := make([]da.CompactEdge, 0, len(edges))
	for eId, e := range edges {
		ce, err := compactEdge(registry, e[0], e[1], eId)
		if err != nil {
			return nil, nil, err
		}
		compactEdges = append(compactEdges, ce)
	}

	graph, err := da.NewCompactGraphWithNodes(registry.Len(), compactEdges)
	if err != nil {
		return nil, nil, err
	}
	return graph, registry, nil
}

func compactEdge[L comparable](registry *da.LabelRegistry[L], from, to L, eId int) (da.CompactEdge, error) {
	u, err := registry.ToIndex(from)
	if err != nil {
		return da.CompactEdge{}, fmt.Errorf("edge %d tail: %w", eId, err)
	}
	v, err := registry.ToIndex(to)
	if err != nil {
		return da.CompactEdge{}, fmt.Errorf("edge %d head: %w", eId, err)
	}
	return da.NewCompactEdge(u, v), nil
}
