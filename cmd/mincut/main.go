package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/lintang-b-s/Mincutx/pkg/adapter"
	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/lintang-b-s/Mincutx/pkg/engine"
	"github.com/lintang-b-s/Mincutx/pkg/engine/viecut"
	"github.com/lintang-b-s/Mincutx/pkg/logger"
	"github.com/lintang-b-s/Mincutx/pkg/mincut"
	"github.com/lintang-b-s/Mincutx/pkg/osmparser"
	"github.com/lintang-b-s/Mincutx/pkg/translator"
	"github.com/lintang-b-s/Mincutx/pkg/util"
	"go.uber.org/zap"
)

var (
	graphFile  = flag.String("graph", "", "graph file (METIS, optionally .bz2; edge list; or .osm.pbf)")
	format     = flag.String("format", "metis", "graph file format: metis, edges or osm")
	algorithm  = flag.String("algorithm", "", "mincut algorithm: noi, cactus or vc (default MINCUT_ALGORITHM or noi)")
	queue      = flag.String("queue", "", "priority queue: bqueue, bstack or heap (default MINCUT_QUEUE or bqueue)")
	balanced   = flag.Bool("balanced", false, "prefer the most balanced minimum cut")
	undirected = flag.Bool("undirected", false, "edge list: add every edge in both directions")
	oneway     = flag.Bool("oneway", false, "osm: keep oneway roads directed")
	scc        = flag.Bool("scc", false, "print the strongly connected components instead of a mincut")
)

type output[L comparable] struct {
	Kind           string `json:"kind"`
	HeavyPartition []L    `json:"heavy_partition,omitempty"`
	LightPartition []L    `json:"light_partition,omitempty"`
	Components     [][]L  `json:"components,omitempty"`
	CutSize        int    `json:"cut_size"`
	Legacy         []any  `json:"legacy"`
}

func newOutput[L comparable](res *translator.Result[L]) output[L] {
	return output[L]{
		Kind:           res.GetKind().String(),
		HeavyPartition: res.GetHeavyPartition(),
		LightPartition: res.GetLightPartition(),
		Components:     res.GetComponents(),
		CutSize:        res.GetCutSize(),
		Legacy:         res.Legacy(),
	}
}

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if *graphFile == "" {
		logger.Fatal("missing -graph")
	}

	cfg := mincut.ConfigFromViper()
	if *algorithm != "" {
		cfg.Algorithm = engine.Algorithm(*algorithm)
	}
	if *queue != "" {
		cfg.QueueImpl = engine.QueueImpl(*queue)
	}
	cfg.Balanced = cfg.Balanced || *balanced

	e := viecut.NewEngine(mincut.WorkersFromViper(), logger)

	var out any
	switch *format {
	case "metis":
		out, err = solveMetis(*graphFile, *scc, e, cfg, logger)
	case "edges":
		var model *da.GraphModel[string]
		model, err = da.ReadEdgeListModel(*graphFile, *undirected)
		if err == nil {
			out, err = solve(model, *scc, e, cfg, logger)
		}
	case "osm":
		var model *da.GraphModel[int64]
		model, err = osmparser.NewOSMParser(*oneway, logger).Parse(context.Background(), *graphFile)
		if err == nil {
			out, err = solve(model, *scc, e, cfg, logger)
		}
	default:
		logger.Fatal("unknown graph format", zap.String("format", *format))
	}
	if err != nil {
		logger.Fatal("mincut failed", zap.Error(err))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		logger.Fatal("write result", zap.Error(err))
	}
}

func solve[L comparable](model *da.GraphModel[L], sccOnly bool, e engine.Engine, cfg mincut.Config, logger *zap.Logger) (any, error) {
	if sccOnly {
		g, registry, err := adapter.Compact(model)
		if err != nil {
			return nil, err
		}
		return stronglyConnected(g, registry)
	}
	res, err := mincut.NewSolver[L](e, logger).Solve(model, cfg)
	if err != nil {
		return nil, err
	}
	return newOutput(res), nil
}

// solveMetis labels every vertex with its 1-based METIS number and hands the
// loaded weighted graph to the engine as is.
func solveMetis(path string, sccOnly bool, e engine.Engine, cfg mincut.Config, logger *zap.Logger) (any, error) {
	g, err := engine.NewInvoker(e).LoadGraph(path)
	if err != nil {
		return nil, err
	}

	labels := make([]int, g.NumberOfVertices())
	for i := range labels {
		labels[i] = i + 1
	}
	registry, err := da.BuildLabelRegistry(labels)
	if err != nil {
		return nil, err
	}
	if sccOnly {
		return stronglyConnected(g, registry)
	}

	res, err := mincut.NewSolver[int](e, logger).SolveCompact(g, registry, cfg)
	if err != nil {
		return nil, err
	}
	return newOutput(res), nil
}

type sccOutput[L comparable] struct {
	Components   [][]L   `json:"components"`
	Condensation [][]int `json:"condensation"`
}

func stronglyConnected[L comparable](g *da.CompactGraph, registry *da.LabelRegistry[L]) (any, error) {
	components, condAdj := da.StronglyConnectedComponents(g)

	out := sccOutput[L]{
		Components:   make([][]L, 0, len(components)),
		Condensation: make([][]int, len(condAdj)),
	}
	for _, c := range components {
		labels, err := registry.ToLabels(c)
		if err != nil {
			return nil, err
		}
		out.Components = append(out.Components, labels)
	}
	for i, adj := range condAdj {
		out.Condensation[i] = make([]int, 0, len(adj))
		for _, c := range adj {
			out.Condensation[i] = append(out.Condensation[i], int(c))
		}
	}
	return out, nil
}
