package engine

import (
	da "github.com/lintang-b-s/Mincutx/pkg/datastructure"
)

// Invoker is the single point where control crosses into the engine. It holds
// no state besides the engine, never retries and returns engine errors as is.
type Invoker struct {
	engine Engine
}

func NewInvoker(engine Engine) *Invoker {
	return &Invoker{engine: engine}
}

func (inv *Invoker) Invoke(g *da.CompactGraph, cfg Config) (MincutResult, error) {
	return inv.engine.Mincut(g, string(cfg.Algorithm), string(cfg.QueueImpl), cfg.Balanced)
}

// ComponentFinder returns the engine's component capability, if it has one.
func (inv *Invoker) ComponentFinder() (ComponentFinder, bool) {
	cf, ok := inv.engine.(ComponentFinder)
	return cf, ok
}

// LoadGraph delegates to the engine's loader capability.
func (inv *Invoker) LoadGraph(path string) (*da.CompactGraph, error) {
	loader, ok := inv.engine.(GraphLoader)
	if !ok {
		return nil, ErrUnsupportedConfiguration
	}
	return loader.LoadGraph(path)
}
