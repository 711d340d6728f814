package osmparser

import (
	"testing"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func newWay(id int64, tags map[string]string, nodes ...int64) *osm.Way {
	way := &osm.Way{ID: osm.WayID(id)}
	for k, v := range tags {
		way.Tags = append(way.Tags, osm.Tag{Key: k, Value: v})
	}
	for _, n := range nodes {
		way.Nodes = append(way.Nodes, osm.WayNode{ID: osm.NodeID(n)})
	}
	return way
}

func edgePairs(model *da.GraphModel[int64]) [][2]int64 {
	pairs := make([][2]int64, 0, model.NumberOfEdges())
	for _, e := range model.Edges() {
		pairs = append(pairs, [2]int64{e.GetFrom(), e.GetTo()})
	}
	return pairs
}

func TestAcceptOsmWay(t *testing.T) {
	testCases := []struct {
		name     string
		tags     map[string]string
		expected bool
	}{
		{name: "residential", tags: map[string]string{"highway": "residential"}, expected: true},
		{name: "footway", tags: map[string]string{"highway": "footway"}, expected: false},
		{name: "junction only", tags: map[string]string{"junction": "roundabout"}, expected: true},
		{name: "building", tags: map[string]string{"building": "yes"}, expected: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, acceptOsmWay(newWay(1, tt.tags, 1, 2)))
		})
	}
}

func TestProcessWayUndirected(t *testing.T) {
	p := NewOSMParser(false, nil)
	model := da.NewEmptyGraphModel[int64]()

	p.processWay(newWay(1, map[string]string{"highway": "primary", "oneway": "yes"}, 10, 20, 30), model)
	p.processWay(newWay(2, map[string]string{"highway": "footway"}, 30, 40), model)
	p.processWay(newWay(3, map[string]string{"highway": "service"}, 50), model)

	assert.Equal(t, []int64{10, 20, 30}, model.Nodes())
	assert.Equal(t, [][2]int64{{10, 20}, {20, 10}, {20, 30}, {30, 20}}, edgePairs(model))
	assert.Equal(t, 1, p.countWays)
}

func TestProcessWayRespectsOneway(t *testing.T) {
	p := NewOSMParser(true, nil)
	model := da.NewEmptyGraphModel[int64]()

	p.processWay(newWay(1, map[string]string{"highway": "primary", "oneway": "yes"}, 1, 2), model)
	p.processWay(newWay(2, map[string]string{"highway": "primary", "oneway": "-1"}, 3, 4), model)
	p.processWay(newWay(3, map[string]string{"highway": "primary"}, 5, 6, 6), model)

	assert.Equal(t, [][2]int64{{1, 2}, {4, 3}, {5, 6}, {6, 5}}, edgePairs(model))
}
