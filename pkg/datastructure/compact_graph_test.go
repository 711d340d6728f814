package datastructure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompactGraph(t *testing.T) {
	testCases := []struct {
		name    string
		nodes   []Index
		edges   []CompactEdge
		wantErr error
	}{
		{
			name:  "valid",
			nodes: []Index{0, 1, 2},
			edges: []CompactEdge{NewCompactEdge(0, 1), NewCompactEdge(2, 2)},
		},
		{
			name:  "empty",
			nodes: []Index{},
		},
		{
			name:    "non dense ids",
			nodes:   []Index{0, 2},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "edge endpoint out of range",
			nodes:   []Index{0, 1},
			edges:   []CompactEdge{NewCompactEdge(0, 2)},
			wantErr: ErrIndexOutOfRange,
		},
		{
			name:    "negative weight",
			nodes:   []Index{0, 1},
			edges:   []CompactEdge{NewWeightedCompactEdge(0, 1, -3)},
			wantErr: ErrMalformedGraphFile,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewCompactGraph(tt.nodes, tt.edges)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.nodes), g.NumberOfVertices())
			assert.Equal(t, len(tt.edges), g.NumberOfEdges())
		})
	}
}

func TestCompactGraphCopiesInput(t *testing.T) {
	edges := []CompactEdge{NewCompactEdge(0, 1)}
	g, err := NewCompactGraphWithNodes(2, edges)
	require.NoError(t, err)

	edges[0] = NewCompactEdge(1, 0)
	assert.Equal(t, Index(0), g.GetEdge(0).GetTail())
	assert.Equal(t, []Index{0, 1}, g.GetNodeIDs())
	assert.Equal(t, 1, g.TotalWeight())
}

func TestCollapseUndirected(t *testing.T) {
	g, err := NewCompactGraphWithNodes(4, []CompactEdge{
		NewCompactEdge(0, 1), NewCompactEdge(1, 0), // one undirected edge
		NewCompactEdge(1, 2), NewCompactEdge(1, 2), // repeated arc, multiplicity 2
		NewCompactEdge(3, 3), // self-loop
		NewWeightedCompactEdge(3, 2, 5),
	})
	require.NoError(t, err)

	collapsed := CollapseUndirected(g)
	require.Len(t, collapsed, 3)
	assert.Equal(t, UndirectedEdge{u: 0, v: 1, weight: 1}, collapsed[0])
	assert.Equal(t, UndirectedEdge{u: 1, v: 2, weight: 2}, collapsed[1])
	assert.Equal(t, UndirectedEdge{u: 2, v: 3, weight: 5}, collapsed[2])

	assert.Equal(t, 2, CutWeight(g, []Index{0, 1}))
	assert.Equal(t, 1, CutWeight(g, []Index{0}))
	assert.Equal(t, 0, CutWeight(g, []Index{0, 1, 2, 3}))
}
