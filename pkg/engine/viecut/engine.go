/*
Package viecut is an in-process min-cut engine. It implements the engine
contract (mincut, connected components, METIS loading) with exact algorithms:

  - noi: maximum adjacency contraction (Stoer-Wagner) driven by a bucket queue
    (bqueue, bstack) or a d-ary heap (heap).
  - vc: the smallest of the Dinic minimum s-t cuts between vertex 0 and every
    other vertex.
  - cactus: the noi cut value, and with balanced set the most balanced cut of
    that value found by the Dinic sweep.

Directed input arcs are collapsed into undirected weighted edges, see
datastructure.CollapseUndirected.
*/
package viecut

import (
	"fmt"
	"runtime"
	"time"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/engine"
	"go.uber.org/zap"
)

type Engine struct {
	workers int
	logger  *zap.Logger
}

// NewEngine returns an engine running flow sweeps on workers goroutines.
// workers <= 0 uses runtime.NumCPU().
func NewEngine(workers int, logger *zap.Logger) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{workers: workers, logger: logger}
}

func parseConfig(algorithm, queueImpl string) (engine.Algorithm, engine.QueueImpl, error) {
	algo := engine.Algorithm(algorithm)
	switch algo {
	case engine.ALGORITHM_NOI, engine.ALGORITHM_CACTUS, engine.ALGORITHM_VIECUT:
	default:
		return "", "", fmt.Errorf("%w: algorithm %q", engine.ErrUnsupportedConfiguration, algorithm)
	}

	queue := engine.QueueImpl(queueImpl)
	switch queue {
	case engine.QUEUE_BQUEUE, engine.QUEUE_BSTACK, engine.QUEUE_HEAP:
	default:
		return "", "", fmt.Errorf("%w: queue implementation %q", engine.ErrUnsupportedConfiguration, queueImpl)
	}
	return algo, queue, nil
}

func (e *Engine) Mincut(g *da.CompactGraph, algorithm, queueImpl string, balanced bool) (res engine.MincutResult, err error) {
	algo, queue, err := parseConfig(algorithm, queueImpl)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", engine.ErrEngine)
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: %v", engine.ErrEngine, r)
		}
	}()

	start := time.Now()
	var cut *MinCut
	switch algo {
	case engine.ALGORITHM_NOI:
		cut, err = stoerWagner(g, queue, balanced)
	case engine.ALGORITHM_VIECUT:
		cut, err = e.viecut(g, balanced)
	case engine.ALGORITHM_CACTUS:
		cut, err = e.cactus(g, queue, balanced)
	}
	if err != nil {
		return nil, err
	}

	heavy, light := cut.partitions()
	e.logger.Debug("mincut computed",
		zap.String("algorithm", string(algo)),
		zap.String("queue", string(queue)),
		zap.Bool("balanced", balanced),
		zap.Int("vertices", g.NumberOfVertices()),
		zap.Int("edges", g.NumberOfEdges()),
		zap.Int("cut", cut.GetMinCut()),
		zap.Duration("took", time.Since(start)))

	return engine.NewRawResult(heavy, light, cut.GetMinCut()), nil
}

func (e *Engine) viecut(g *da.CompactGraph, balanced bool) (*MinCut, error) {
	n := g.NumberOfVertices()
	if n < 2 {
		return newMinCutFromSide(n, da.NodeRange(n), 0), nil
	}
	return bestSweepCut(flowSweep(g, e.workers), balanced, -1), nil
}

func (e *Engine) cactus(g *da.CompactGraph, queue engine.QueueImpl, balanced bool) (*MinCut, error) {
	best, err := stoerWagner(g, queue, balanced)
	if err != nil || !balanced || g.NumberOfVertices() < 3 {
		return best, err
	}

	sweepBest := bestSweepCut(flowSweep(g, e.workers), true, best.GetMinCut())
	if sweepBest != nil && sweepBest.betterThan(best, true) {
		best = sweepBest
	}
	return best, nil
}

func (e *Engine) ConnectedComponents(g *da.CompactGraph) ([][]da.Index, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", engine.ErrEngine)
	}
	return da.ConnectedComponents(g), nil
}

// LoadGraph reads a METIS graph, bzip2 compressed when the path ends in .bz2.
func (e *Engine) LoadGraph(path string) (*da.CompactGraph, error) {
	g, err := da.ReadMetisGraph(path)
	if err != nil {
		return nil, err
	}
	e.logger.Info("graph loaded", zap.String("path", path),
		zap.Int("vertices", g.NumberOfVertices()), zap.Int("edges", g.NumberOfEdges()))
	return g, nil
}
