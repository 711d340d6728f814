package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

var (
	// https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
	acceptedHighway = map[string]struct{}{
		"motorway":         {},
		"motorway_link":    {},
		"trunk":            {},
		"trunk_link":       {},
		"primary":          {},
		"primary_link":     {},
		"secondary":        {},
		"secondary_link":   {},
		"residential":      {},
		"residential_link": {},
		"service":          {},
		"tertiary":         {},
		"tertiary_link":    {},
		"road":             {},
		"track":            {},
		"unclassified":     {},
		"undefined":        {},
		"unknown":          {},
		"living_street":    {},
		"private":          {},
		"motorroad":        {},
	}
)

/*
OsmParser turns the road network of an OpenStreetMap PBF extract into a label
graph whose labels are OSM node ids. Every accepted way contributes an edge per
pair of consecutive way nodes. Edges are undirected unless respectOneway is set,
in which case oneway roads only get the edge in their driving direction.
*/
type OsmParser struct {
	respectOneway bool
	logger        *zap.Logger
	countWays     int
}

func NewOSMParser(respectOneway bool, logger *zap.Logger) *OsmParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OsmParser{respectOneway: respectOneway, logger: logger}
}

func (p *OsmParser) Parse(ctx context.Context, mapFile string) (*da.GraphModel[int64], error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	model, err := p.ParseReader(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", mapFile, err)
	}
	return model, nil
}

func (p *OsmParser) ParseReader(ctx context.Context, r io.Reader) (*da.GraphModel[int64], error) {
	model := da.NewEmptyGraphModel[int64]()
	p.countWays = 0

	scanner := osmpbf.New(ctx, r, 0)
	// ways only, nodes and relations carry nothing the graph needs
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	defer scanner.Close()

	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		p.processWay(way, model)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	p.logger.Info("openstreetmap graph built", zap.Int("ways", p.countWays),
		zap.Int("nodes", model.NumberOfVertices()), zap.Int("edges", model.NumberOfEdges()))
	return model, nil
}

func (p *OsmParser) processWay(way *osm.Way, model *da.GraphModel[int64]) {
	if len(way.Nodes) < 2 || !acceptOsmWay(way) {
		return
	}
	if (p.countWays+1)%50000 == 0 {
		p.logger.Sugar().Infof("scanning openstreetmap ways: %d...", p.countWays+1)
	}
	p.countWays++

	forward, backward := true, true
	if p.respectOneway {
		switch way.Tags.Find("oneway") {
		case "yes", "true", "1":
			backward = false
		case "-1", "reverse":
			forward = false
		}
	}

	for i := 0; i+1 < len(way.Nodes); i++ {
		u, v := int64(way.Nodes[i].ID), int64(way.Nodes[i+1].ID)
		if u == v {
			continue
		}
		if forward {
			model.AddEdge(u, v)
		}
		if backward {
			model.AddEdge(v, u)
		}
	}
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := acceptedHighway[highway]; ok {
			return true
		}
	} else if junction != "" {
		return true
	}
	return false
}
