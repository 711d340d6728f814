package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectedComponents(t *testing.T) {
	testCases := []struct {
		name     string
		n        int
		edges    []CompactEdge
		expected [][]Index
	}{
		{
			name: "three triangles",
			n:    9,
			edges: []CompactEdge{
				NewCompactEdge(0, 1), NewCompactEdge(1, 2), NewCompactEdge(0, 2),
				NewCompactEdge(3, 4), NewCompactEdge(4, 5), NewCompactEdge(3, 5),
				NewCompactEdge(6, 7), NewCompactEdge(7, 8), NewCompactEdge(6, 8),
			},
			expected: [][]Index{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}},
		},
		{
			name:     "direction is ignored",
			n:        3,
			edges:    []CompactEdge{NewCompactEdge(2, 0), NewCompactEdge(2, 1)},
			expected: [][]Index{{0, 1, 2}},
		},
		{
			name:     "isolated and self-loop",
			n:        3,
			edges:    []CompactEdge{NewCompactEdge(1, 1)},
			expected: [][]Index{{0}, {1}, {2}},
		},
		{
			name:     "empty",
			n:        0,
			expected: [][]Index{},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewCompactGraphWithNodes(tt.n, tt.edges)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ConnectedComponents(g))
		})
	}
}
