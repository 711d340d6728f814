// Package mincut runs one min-cut call end to end: compact the label graph,
// invoke the engine and translate the answer back to labels.
package mincut

import (
	"fmt"
	"time"

	"github.com/lintang-b-s/Mincutx/pkg/adapter"
	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/engine"
	"github.com/lintang-b-s/Mincutx/pkg/translator"
	"go.uber.org/zap"
)

type stage int

const (
	BUILT stage = iota
	COMPACTED
	INVOKED
	TRANSLATED
)

func (s stage) String() string {
	return [...]string{"built", "compacted", "invoked", "translated"}[s]
}

type Solver[L comparable] struct {
	invoker *engine.Invoker
	logger  *zap.Logger
}

func NewSolver[L comparable](e engine.Engine, logger *zap.Logger) *Solver[L] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver[L]{invoker: engine.NewInvoker(e), logger: logger}
}

/*
Solve computes a min cut of model under cfg. Nothing is cached between calls:
the label registry is rebuilt from the model every time, so nodes added since
the previous call are always part of the answer.

The model must not be mutated while Solve runs. A failing stage aborts the call
and no partial result is returned.
*/
func (s *Solver[L]) Solve(model *da.GraphModel[L], cfg Config) (*translator.Result[L], error) {
	log := s.logger.With(zap.String("config", cfg.String()))
	log.Debug("mincut stage", zap.Stringer("stage", BUILT),
		zap.Int("nodes", model.NumberOfVertices()), zap.Int("edges", model.NumberOfEdges()))

	graph, registry, err := adapter.Compact(model)
	if err != nil {
		return nil, fmt.Errorf("compact graph: %w", err)
	}
	log.Debug("mincut stage", zap.Stringer("stage", COMPACTED))

	return s.solveCompact(log, graph, registry, cfg, func() error {
		return registry.CheckFresh(model)
	})
}

// SolveCompact solves an already compacted graph whose vertex i is labelled
// by registry.ToLabel(i). Edge weights are passed to the engine unchanged.
func (s *Solver[L]) SolveCompact(graph *da.CompactGraph, registry *da.LabelRegistry[L], cfg Config) (*translator.Result[L], error) {
	if graph == nil || registry == nil {
		return nil, fmt.Errorf("%w: missing graph or registry", engine.ErrEngine)
	}
	if graph.NumberOfVertices() != registry.Len() {
		return nil, fmt.Errorf("%w: graph has %d vertices, registry %d labels",
			da.ErrStaleMapping, graph.NumberOfVertices(), registry.Len())
	}

	log := s.logger.With(zap.String("config", cfg.String()))
	log.Debug("mincut stage", zap.Stringer("stage", COMPACTED),
		zap.Int("nodes", graph.NumberOfVertices()), zap.Int("edges", graph.NumberOfEdges()))
	return s.solveCompact(log, graph, registry, cfg, nil)
}

func (s *Solver[L]) solveCompact(log *zap.Logger, graph *da.CompactGraph, registry *da.LabelRegistry[L],
	cfg Config, checkFresh func() error) (*translator.Result[L], error) {
	start := time.Now()
	raw, err := s.invoker.Invoke(graph, cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("mincut stage", zap.Stringer("stage", INVOKED),
		zap.Int("cut", raw.GetCutSize()), zap.Duration("took", time.Since(start)))

	if checkFresh != nil {
		if err := checkFresh(); err != nil {
			return nil, err
		}
	}

	var finder engine.ComponentFinder
	if cf, ok := s.invoker.ComponentFinder(); ok {
		finder = cf
	}
	res, err := translator.Translate(raw, registry, cfg.Algorithm, cfg.Balanced, graph, finder)
	if err != nil {
		return nil, fmt.Errorf("translate result: %w", err)
	}
	log.Debug("mincut stage", zap.Stringer("stage", TRANSLATED), zap.Stringer("kind", res.GetKind()))
	return res, nil
}
