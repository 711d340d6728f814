package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeap(t *testing.T) {
	testCases := []struct {
		name string
		d    int
	}{
		{name: "binary", d: 2},
		{name: "four-ary", d: 4},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			h := NewdAryHeap[Index, int](tt.d)
			nodes := make([]*PriorityQueueNode[Index, int], 0)
			for i, rank := range []int{5, 3, 8, 1, 9, 7} {
				node := NewPriorityQueueNode(rank, Index(i))
				nodes = append(nodes, node)
				h.Insert(node)
			}

			require.NoError(t, h.DecreaseKey(nodes[4], 0))
			assert.Error(t, h.DecreaseKey(nodes[0], 100))

			got := make([]Index, 0)
			for !h.IsEmpty() {
				min, err := h.ExtractMin()
				require.NoError(t, err)
				got = append(got, min.GetItem())
			}
			assert.Equal(t, []Index{4, 3, 1, 0, 5, 2}, got)

			_, err := h.ExtractMin()
			assert.ErrorIs(t, err, ErrHeapEmpty)
		})
	}
}
