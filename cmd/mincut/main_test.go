package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/Mincutx/pkg/engine/viecut"
	"github.com/lintang-b-s/Mincutx/pkg/mincut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weighted.graph")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolveMetisWeightedFile(t *testing.T) {
	// two heavy triangles joined by one light edge
	path := writeGraph(t, "% weighted\n6 7 1\n"+
		"2 1000000000 3 1000000000\n"+
		"1 1000000000 3 1000000000\n"+
		"1 1000000000 2 1000000000 4 5\n"+
		"3 5 5 1000000000 6 1000000000\n"+
		"4 1000000000 6 1000000000\n"+
		"4 1000000000 5 1000000000\n")
	e := viecut.NewEngine(2, zap.NewNop())

	out, err := solveMetis(path, false, e, mincut.NewConfig("noi", "bqueue", false), zap.NewNop())
	require.NoError(t, err)
	res, ok := out.(output[int])
	require.True(t, ok)
	assert.Equal(t, "bipartition", res.Kind)
	assert.Equal(t, 5, res.CutSize)
	assert.Equal(t, []int{1, 2, 3}, res.HeavyPartition)
	assert.Equal(t, []int{4, 5, 6}, res.LightPartition)
}

func TestSolveMetisStronglyConnected(t *testing.T) {
	path := writeGraph(t, "3 2\n2\n1 3\n2\n")
	e := viecut.NewEngine(1, zap.NewNop())

	out, err := solveMetis(path, true, e, mincut.NewConfig("noi", "heap", false), zap.NewNop())
	require.NoError(t, err)
	res, ok := out.(sccOutput[int])
	require.True(t, ok)
	require.Len(t, res.Components, 1)
	assert.ElementsMatch(t, []int{1, 2, 3}, res.Components[0])
}
