package datastructure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tupleLabel struct {
	city string
	zone int
}

func TestLabelRegistryBijection(t *testing.T) {
	labels := []tupleLabel{{"jogja", 1}, {"solo", 2}, {"semarang", 3}}
	lr, err := BuildLabelRegistry(labels)
	require.NoError(t, err)

	assert.Equal(t, 3, lr.Len())
	for i, label := range labels {
		idx, err := lr.ToIndex(label)
		require.NoError(t, err)
		assert.Equal(t, Index(i), idx)

		back, err := lr.ToLabel(idx)
		require.NoError(t, err)
		assert.Equal(t, label, back)
	}
	assert.Equal(t, labels, lr.Labels())
}

func TestLabelRegistryErrors(t *testing.T) {
	lr, err := BuildLabelRegistry([]string{"a", "b"})
	require.NoError(t, err)

	_, err = lr.ToIndex("c")
	assert.True(t, errors.Is(err, ErrUnknownLabel))

	_, err = lr.ToLabel(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = lr.ToLabels([]Index{0, 5})
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	_, err = BuildLabelRegistry([]string{"a", "b", "a"})
	assert.True(t, errors.Is(err, ErrDuplicateLabel))
}

func TestLabelRegistryToLabels(t *testing.T) {
	lr, err := BuildLabelRegistry([]string{"a", "b", "c"})
	require.NoError(t, err)

	labels, err := lr.ToLabels([]Index{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, labels)

	labels, err = lr.ToLabels(nil)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestLabelRegistryCheckFresh(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(gm *GraphModel[string])
		stale  bool
	}{
		{name: "untouched", mutate: func(gm *GraphModel[string]) {}},
		{name: "existing node re-added", mutate: func(gm *GraphModel[string]) { gm.AddNode("a") }},
		{name: "new node", mutate: func(gm *GraphModel[string]) { gm.AddNode("d") }, stale: true},
		{name: "new edge between known nodes", mutate: func(gm *GraphModel[string]) { gm.AddEdge("a", "b") }, stale: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			gm := NewGraphModel([]string{"a", "b", "c"}, nil)
			lr, err := BuildLabelRegistryFromModel(gm)
			require.NoError(t, err)

			tt.mutate(gm)
			err = lr.CheckFresh(gm)
			if tt.stale {
				assert.True(t, errors.Is(err, ErrStaleMapping))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLabelRegistryCheckFreshByContent(t *testing.T) {
	gm := NewGraphModel([]string{"a", "b"}, nil)
	lr, err := BuildLabelRegistry([]string{"a", "b"})
	require.NoError(t, err)
	assert.NoError(t, lr.CheckFresh(gm))

	gm.AddNode("c")
	assert.True(t, errors.Is(lr.CheckFresh(gm), ErrStaleMapping))

	reordered, err := BuildLabelRegistry([]string{"b", "a", "c"})
	require.NoError(t, err)
	assert.True(t, errors.Is(reordered.CheckFresh(gm), ErrStaleMapping))
}
