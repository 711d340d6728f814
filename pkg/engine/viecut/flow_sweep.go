package viecut

import (
	"github.com/lintang-b-s/Mincutx/pkg/concurrent"
	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
)

type sweepJob struct {
	sink da.Index
}

type sweepResult struct {
	sink       da.Index
	sourceSide *MinCut
	sinkSide   *MinCut
}

func newFlowNetwork(g *da.CompactGraph) *da.FlowNetwork {
	network := da.NewFlowNetwork(g.NumberOfVertices())
	for _, e := range da.CollapseUndirected(g) {
		network.AddEdge(e.GetU(), e.GetV(), e.GetWeight())
	}
	return network
}

/*
flowSweep computes a minimum s-t cut between SWEEP_SOURCE and every other vertex
on a worker pool. Some s-t pair is separated by any global minimum cut, so the
smallest of these cuts is a global minimum cut. Both extreme cuts of each pair
are kept so balanced requests have more candidates. Results are ordered by sink.
*/
func flowSweep(g *da.CompactGraph, workers int) []sweepResult {
	n := g.NumberOfVertices()
	if n < 2 {
		return []sweepResult{}
	}
	network := newFlowNetwork(g)

	wp := concurrent.NewWorkerPool[sweepJob, sweepResult](workers, n-1)
	for t := 1; t < n; t++ {
		wp.AddJob(sweepJob{sink: da.Index(t)})
	}

	computeMinCut := func(job sweepJob) sweepResult {
		dn := NewDinicMaxFlow(network.Clone())
		sourceSide := dn.ComputeMaxflowMinCut(SWEEP_SOURCE, job.sink)
		sinkSide := dn.SinkSideMinCut(job.sink, sourceSide.GetMinCut())
		return sweepResult{sink: job.sink, sourceSide: sourceSide, sinkSide: sinkSide}
	}

	wp.Close()
	wp.Start(computeMinCut)
	wp.Wait()

	results := make([]sweepResult, n-1)
	for res := range wp.CollectResults() {
		results[res.sink-1] = res
	}
	return results
}

// bestSweepCut picks the best cut of the sweep, optionally restricted to cuts
// of value target (target < 0 means no restriction).
func bestSweepCut(results []sweepResult, balanced bool, target int) *MinCut {
	var best *MinCut
	for _, res := range results {
		for _, candidate := range []*MinCut{res.sourceSide, res.sinkSide} {
			if target >= 0 && candidate.GetMinCut() != target {
				continue
			}
			if candidate.betterThan(best, balanced) {
				best = candidate
			}
		}
	}
	return best
}
