// Package translator maps a raw engine answer from index space back to labels.
package translator

import (
	"fmt"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/engine"
)

// Translate maps raw through registry. A zero cut from a balanced cactus run is
// reported as the graph's connected components instead of a bipartition; finder
// computes them when the engine has that capability, otherwise they come from
// a local BFS over graph.
func Translate[L comparable](raw engine.MincutResult, registry *da.LabelRegistry[L], algorithm engine.Algorithm,
	balanced bool, graph *da.CompactGraph, finder engine.ComponentFinder) (*Result[L], error) {

	if isComponentFallback(raw, algorithm, balanced) {
		var (
			components [][]da.Index
			err        error
		)
		if finder != nil {
			components, err = finder.ConnectedComponents(graph)
			if err != nil {
				return nil, err
			}
		} else {
			components = da.ConnectedComponents(graph)
		}

		labeled := make([][]L, 0, len(components))
		for i, c := range components {
			labels, err := registry.ToLabels(c)
			if err != nil {
				return nil, fmt.Errorf("component %d: %w", i, err)
			}
			labeled = append(labeled, labels)
		}
		return NewComponents(labeled), nil
	}

	heavy, err := registry.ToLabels(raw.GetHeavyPartition())
	if err != nil {
		return nil, fmt.Errorf("heavy partition: %w", err)
	}
	light, err := registry.ToLabels(raw.GetLightPartition())
	if err != nil {
		return nil, fmt.Errorf("light partition: %w", err)
	}
	return NewBipartition(heavy, light, raw.GetCutSize()), nil
}

func isComponentFallback(raw engine.MincutResult, algorithm engine.Algorithm, balanced bool) bool {
	return raw.GetCutSize() == 0 && balanced && algorithm == engine.ALGORITHM_CACTUS
}
