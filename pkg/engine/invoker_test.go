package engine

import (
	"errors"
	"testing"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEngine struct {
	calls     int
	algorithm string
	queueImpl string
	balanced  bool
	err       error
}

func (e *recordingEngine) Mincut(g *da.CompactGraph, algorithm, queueImpl string, balanced bool) (MincutResult, error) {
	e.calls++
	e.algorithm, e.queueImpl, e.balanced = algorithm, queueImpl, balanced
	if e.err != nil {
		return nil, e.err
	}
	return NewRawResult(da.NodeRange(g.NumberOfVertices()), []da.Index{}, 0), nil
}

func TestInvokerDelegates(t *testing.T) {
	eng := &recordingEngine{}
	inv := NewInvoker(eng)
	g, err := da.NewCompactGraphWithNodes(2, []da.CompactEdge{da.NewCompactEdge(0, 1)})
	require.NoError(t, err)

	res, err := inv.Invoke(g, NewConfig("cactus", "bstack", true))
	require.NoError(t, err)
	assert.Equal(t, []da.Index{0, 1}, res.GetHeavyPartition())
	assert.Equal(t, "cactus", eng.algorithm)
	assert.Equal(t, "bstack", eng.queueImpl)
	assert.True(t, eng.balanced)
}

func TestInvokerPropagatesErrorsWithoutRetry(t *testing.T) {
	engineErr := errors.New("boom")
	eng := &recordingEngine{err: engineErr}
	inv := NewInvoker(eng)
	g, err := da.NewCompactGraphWithNodes(1, nil)
	require.NoError(t, err)

	_, err = inv.Invoke(g, NewConfig("noi", "bqueue", false))
	assert.Same(t, engineErr, err)
	assert.Equal(t, 1, eng.calls)
}

func TestInvokerOptionalCapabilities(t *testing.T) {
	inv := NewInvoker(&recordingEngine{})
	_, ok := inv.ComponentFinder()
	assert.False(t, ok)

	_, err := inv.LoadGraph("graph.metis")
	assert.True(t, errors.Is(err, ErrUnsupportedConfiguration))
}
