package engine

import (
	"errors"

	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
)

var (
	// ErrUnsupportedConfiguration is returned by an engine for an algorithm or
	// queue implementation it does not know.
	ErrUnsupportedConfiguration = errors.New("engine: unsupported configuration")

	// ErrEngine wraps every other engine-reported failure.
	ErrEngine = errors.New("engine: mincut failed")
)

/*
Engine is the min-cut collaborator. Mincut receives a compact graph plus the raw
configuration strings and answers in index space. Implementations own the
validation of algorithm and queueImpl and must fail with
ErrUnsupportedConfiguration for values they do not know.
*/
type Engine interface {
	Mincut(g *da.CompactGraph, algorithm, queueImpl string, balanced bool) (MincutResult, error)
}

// ComponentFinder is an optional engine capability. When an engine lacks it,
// callers compute components with datastructure.ConnectedComponents.
type ComponentFinder interface {
	ConnectedComponents(g *da.CompactGraph) ([][]da.Index, error)
}

// GraphLoader is an optional engine capability that reads a compact graph from
// a file in the engine's own format.
type GraphLoader interface {
	LoadGraph(path string) (*da.CompactGraph, error)
}

// MincutResult is the raw engine answer in index space.
type MincutResult interface {
	GetHeavyPartition() []da.Index
	GetLightPartition() []da.Index
	GetCutSize() int
}

type RawResult struct {
	heavy   []da.Index
	light   []da.Index
	cutSize int
}

func NewRawResult(heavy, light []da.Index, cutSize int) *RawResult {
	return &RawResult{heavy: heavy, light: light, cutSize: cutSize}
}

func (r *RawResult) GetHeavyPartition() []da.Index {
	return r.heavy
}

func (r *RawResult) GetLightPartition() []da.Index {
	return r.light
}

func (r *RawResult) GetCutSize() int {
	return r.cutSize
}
